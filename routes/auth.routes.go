package routes

import (
	"github.com/gin-gonic/gin"

	"stayease-backend/handlers"
	"stayease-backend/services"
)

type AuthRouteHandler struct {
	authHandler handlers.AuthHandler
	authService services.AuthService
}

func NewAuthRouteHandler(authHandler handlers.AuthHandler, authService services.AuthService) AuthRouteHandler {
	return AuthRouteHandler{authHandler, authService}
}

func (rc *AuthRouteHandler) AuthRoute(rg *gin.RouterGroup) {
	router := rg.Group("/auth")

	router.POST("/login", rc.authHandler.Login)
	router.POST("/register", rc.authHandler.Registration)
	router.POST("/logout", rc.authHandler.Logout)

	router.GET("/currentUser", handlers.DeserializeUser(rc.authService), rc.authHandler.CurrentUser)

	rg.PATCH("/profile", handlers.DeserializeUser(rc.authService), rc.authHandler.UpdateProfile)
}
