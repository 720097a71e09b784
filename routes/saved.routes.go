package routes

import (
	"github.com/gin-gonic/gin"

	"stayease-backend/handlers"
	"stayease-backend/services"
)

type SavedItemRouteHandler struct {
	savedHandler handlers.SavedItemHandler
	authService  services.AuthService
}

func NewSavedItemRouteHandler(savedHandler handlers.SavedItemHandler, authService services.AuthService) SavedItemRouteHandler {
	return SavedItemRouteHandler{savedHandler, authService}
}

func (rc *SavedItemRouteHandler) SavedItemRoute(rg *gin.RouterGroup) {
	router := rg.Group("/saved")
	router.Use(handlers.DeserializeUser(rc.authService))

	router.POST("/toggle", rc.savedHandler.ToggleSave)
	router.GET("", rc.savedHandler.ListSaved)
	router.GET("/count", rc.savedHandler.CountSaved)
	router.DELETE("/:entityId", rc.savedHandler.RemoveSaved)
}
