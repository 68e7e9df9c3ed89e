package controller

import (
	"friidrett/auth"
	"friidrett/config"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func setupAuthController() []RouteInfo {
	e := &AuthController{}
	return []RouteInfo{
		{Method: "POST", Path: "/auth/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/auth/logout", HandlerFunc: e.logoutHandler()},
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @ID login
// @Summary Admin login
// @Description Exchange admin credentials for an auth cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200
// @Router /auth/login [post]
func (c *AuthController) loginHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var request LoginRequest
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid request body"})
			return
		}
		cfg := config.Env()
		if cfg.AdminPassword == "" || request.Username != cfg.AdminUser || request.Password != cfg.AdminPassword {
			ctx.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}
		token, err := auth.CreateToken(request.Username, []string{auth.PermissionAdmin})
		if err != nil {
			ctx.JSON(500, gin.H{"error": "Failed to create token"})
			return
		}
		ctx.SetCookie("auth", token, 60*60*24*7, "/", "", config.IsProduction(), true)
		ctx.Status(200)
	}
}

// @ID logout
// @Summary Logout
// @Description Clear the auth cookie.
// @Tags Auth
// @Success 204
// @Router /auth/logout [post]
func (c *AuthController) logoutHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.SetCookie("auth", "", -1, "/", "", config.IsProduction(), true)
		ctx.Status(204)
	}
}
