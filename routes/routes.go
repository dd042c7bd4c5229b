package routes

import (
	"kitchenpos/handlers"
	"kitchenpos/middleware"
	"kitchenpos/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/health", handlers.Health)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		public.GET("/products", h.ListProducts)
		public.GET("/menu-groups", h.ListMenuGroups)
		public.GET("/menus", h.ListMenus)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(h.Auth.AuthRequired())
	{
		auth.GET("/auth/me", h.Me)
	}

	// ── Catalog and staff management (managers) ────────────────────
	catalog := r.Group("/api")
	catalog.Use(h.Auth.AuthRequired(), middleware.RoleRequired(models.RoleManager))
	{
		catalog.POST("/products", h.CreateProduct)
		catalog.POST("/menu-groups", h.CreateMenuGroup)
		catalog.POST("/menus", h.CreateMenu)

		catalog.POST("/staff", h.CreateStaff)
	}

	// ── Floor management (managers and servers) ────────────────────
	floor := r.Group("/api")
	floor.Use(h.Auth.AuthRequired(), middleware.RoleRequired(models.RoleManager, models.RoleServer))
	{
		floor.GET("/tables", h.ListTables)
		floor.POST("/tables", h.CreateTable)

		floor.POST("/table-groups", h.CreateTableGroup)
		floor.GET("/table-groups/:id", h.GetTableGroup)
		floor.DELETE("/table-groups/:id", h.Ungroup)
	}
}
