package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stayease-backend/domain"
	"stayease-backend/services"
)

// DeserializeUser resolves the access token into the current user and makes
// it available to downstream handlers.
func DeserializeUser(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var accessToken string
		cookie, err := ctx.Cookie("access_token")

		authorizationHeader := ctx.Request.Header.Get("Authorization")
		fields := strings.Fields(authorizationHeader)

		if len(fields) >= 2 && fields[0] == "Bearer" {
			accessToken = fields[1]
		} else if err == nil {
			accessToken = cookie
		}

		if accessToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
			return
		}

		user, err := authService.UserFromToken(accessToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "The user belonging to this token no longer exists"})
			return
		}

		ctx.Set("currentUser", user)
		ctx.Next()
	}
}

func currentUser(ctx *gin.Context) *domain.User {
	value, ok := ctx.Get("currentUser")
	if !ok {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}
