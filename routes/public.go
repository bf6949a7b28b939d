package routes

import (
	enquiryControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/enquiry"
	foodControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/food"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the unauthenticated surface: guests can
// browse the menu and submit contact enquiries.
func SetupPublicRoutes(api *gin.RouterGroup, store storage.Store) {
	api.GET("/food", foodControllers.GetFoodItems(store))
	api.GET("/food/:id", foodControllers.GetFoodItemByID(store))

	api.POST("/enquiries", enquiryControllers.SubmitEnquiry(store))
}
