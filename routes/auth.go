package routes

import (
	authControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/auth"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/middleware"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints. Login and
// register are guest-only: an authenticated caller is pointed back to
// their dashboard.
func SetupAuthRoutes(api *gin.RouterGroup, store storage.Store) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", middleware.RedirectAuthenticated(), authControllers.Register(store))
		authGroup.POST("/login", middleware.RedirectAuthenticated(), authControllers.Login(store))
		authGroup.POST("/forgot-password", authControllers.ForgotPassword(store))

		account := authGroup.Group("")
		account.Use(middleware.ValidateToken)
		{
			account.GET("/me", authControllers.GetProfile(store))
			account.PUT("/me", authControllers.UpdateProfile(store))
			account.POST("/change-password", authControllers.ChangePassword(store))
		}
	}
}
