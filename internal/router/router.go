package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-menu/internal/config"
	"github.com/iliyamo/restaurant-menu/internal/handler"
	"github.com/iliyamo/restaurant-menu/internal/middleware"
	"github.com/iliyamo/restaurant-menu/internal/model"
)

// Register wires every route of the service onto the Echo instance.
//
// Layout:
//
//	/healthz                 – liveness, no auth
//	/v1/auth/*               – register and login, no auth
//	/v1/* (reads)            – any authenticated role
//	/v1/* (catalog writes)   – admin only
//	/v1/users*               – admin only
//
// The rdb client may be nil, in which case the login rate limiter becomes a
// pass-through.
func Register(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, cat *handler.CatalogHandler, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	// Unauthenticated identity operations.  Login carries the optional
	// Redis-backed limiter to slow credential stuffing; the identity
	// service itself performs no lockout.
	auth := e.Group("/v1/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login, middleware.LoginRateLimit(config.LoadRateLimitConfig(), rdb))

	// Reads: any authenticated role.
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(cfg.JWTSecret))
	v1.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	v1.GET("/me", a.Me)
	v1.GET("/categories", cat.ListCategories)
	v1.GET("/categories/:id", cat.GetCategory)
	v1.GET("/categories/:id/items", cat.ListCategoryItems)
	v1.GET("/items", cat.ListItems)
	v1.GET("/items/search", cat.SearchItems)
	v1.GET("/items/:id", cat.GetItem)
	v1.GET("/stats", cat.Stats)

	// Mutations and user administration: admin only.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/categories", cat.CreateCategory)
	admin.POST("/items", cat.CreateItem)
	admin.PATCH("/items/:id", cat.UpdateItem)
	admin.DELETE("/items/:id", cat.DeleteItem)
	admin.GET("/users", a.ListUsers)
	admin.GET("/users/:id", a.GetUser)
}
