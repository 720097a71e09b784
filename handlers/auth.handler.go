package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayease-backend/domain"
	"stayease-backend/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) AuthHandler {
	return AuthHandler{authService}
}

func (ac *AuthHandler) Registration(ctx *gin.Context) {
	var input *services.RegisterInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	user, accessToken, err := ac.authService.Register(input)
	if err != nil {
		if err == domain.ErrEmailTaken() {
			ctx.JSON(http.StatusConflict, gin.H{"status": "fail", "message": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "accessToken": accessToken, "user": user.ToResponse()})
}

func (ac *AuthHandler) Login(ctx *gin.Context) {
	var credentials struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	user, accessToken, err := ac.authService.Login(credentials.Email, credentials.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials() {
			ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "accessToken": accessToken, "user": user.ToResponse()})
}

func (ac *AuthHandler) Logout(ctx *gin.Context) {
	if err := ac.authService.Logout(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (ac *AuthHandler) CurrentUser(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "user": user.ToResponse()})
}

func (ac *AuthHandler) UpdateProfile(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	var update *services.ProfileUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	updated, err := ac.authService.UpdateProfile(user.ID, update)
	if err != nil {
		if err == domain.ErrUserNotFound() {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "user": updated.ToResponse()})
}
