package routes

import (
	"storefront/constants"
	"storefront/controllers"
	middlewares "storefront/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {

	v1 := router.Group("/api/v1")

	// Trang storefront công khai, không cần auth
	v1.GET("/tenants/:id", controllers.GetTenantDetail)
	v1.GET("/zones", controllers.GetZones)
	v1.POST("/order", controllers.CreateOrder)
	v1.POST("/discountValidate", controllers.ValidateDiscount)

	// Quản trị hệ thống
	v1.POST("/tenants", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.CreateTenant)

	// Quản trị cửa hàng
	v1.POST("/zones", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleTenantAdmin), controllers.CreateZone)
	v1.GET("/order", middlewares.AuthMiddleware(constants.RoleTenantAdmin, constants.RoleStaff), controllers.GetOrders)
	v1.GET("/order/:id", middlewares.AuthMiddleware(constants.RoleTenantAdmin, constants.RoleStaff), controllers.GetOrderDetail)
	v1.PUT("/orderUpdate", middlewares.AuthMiddleware(constants.RoleTenantAdmin, constants.RoleStaff), controllers.ChangeOrderStatus)

	v1.GET("/discount", middlewares.AuthMiddleware(constants.RoleTenantAdmin), controllers.GetDiscounts)
	v1.GET("/discount/:id", middlewares.AuthMiddleware(constants.RoleTenantAdmin), controllers.GetDiscountDetail)
	v1.POST("/discount", middlewares.AuthMiddleware(constants.RoleTenantAdmin), controllers.CreateDiscount)
	v1.PUT("/discountUpdate", middlewares.AuthMiddleware(constants.RoleTenantAdmin), controllers.UpdateDiscount)
	v1.DELETE("/discount/:id", middlewares.AuthMiddleware(constants.RoleTenantAdmin), controllers.DeleteDiscount)
	v1.PUT("/discountStatus", middlewares.AuthMiddleware(constants.RoleTenantAdmin), controllers.ChangeDiscountStatus)

	//doanh thu
	v1.GET("/revenue", middlewares.AuthMiddleware(constants.RoleTenantAdmin), controllers.GetTenantRevenue)
	v1.GET("/revenue/summary", middlewares.AuthMiddleware(constants.RoleTenantAdmin), controllers.GetRevenueSummary)

	v1.GET("/notifications", middlewares.AuthMiddleware(constants.RoleTenantAdmin, constants.RoleStaff), controllers.GetNotifications)
}
