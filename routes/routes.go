package routes

import (
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// SetupRoutes is the single entry-point that wires up the public, auth,
// customer, delivery and admin route groups under /api.
func SetupRoutes(r *gin.Engine, store storage.Store) {
	api := r.Group("/api")

	// 1️⃣ Public surface (no middleware): menu browsing, contact form
	SetupPublicRoutes(api, store)

	// 2️⃣ Auth: register/login plus the JWT-protected account endpoints
	SetupAuthRoutes(api, store)

	// 3️⃣ Customer routes (JWT + customer role)
	SetupCustomerRoutes(api, store)

	// 4️⃣ Delivery-staff routes (JWT + delivery role)
	SetupDeliveryRoutes(api, store)

	// 5️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(api, store)

	// shared order surface (role checks per handler)
	SetupOrderRoutes(api, store)
}
