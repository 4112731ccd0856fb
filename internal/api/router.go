package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nexospark/website-api/internal/api/handler"
	"github.com/nexospark/website-api/internal/api/middleware"
	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

// Services bundles the use-case implementations the router depends on.
type Services struct {
	Auth         ports.AuthService
	Blogs        ports.BlogService
	Catalog      ports.CatalogService
	Applications ports.ApplicationService
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(svc Services, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echoprometheus.NewMiddleware("nexospark"))

	// --- Operational endpoints (no auth required) ---
	health := handler.NewHealthHandler(db, rdb)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	requireAuth := middleware.Auth(svc.Auth)
	optionalAuth := middleware.OptionalAuth(svc.Auth)
	staffOnly := middleware.RBAC(domain.RoleEmployee, domain.RoleAdmin)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	api := e.Group("/api")

	// --- Auth ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Blogs ---
	blogHandler := handler.NewBlogHandler(svc.Blogs)
	blogs := api.Group("/blogs")
	blogs.GET("", blogHandler.List, optionalAuth)
	blogs.GET("/admin/all", blogHandler.ListAdmin, requireAuth, staffOnly)
	blogs.GET("/:slug", blogHandler.Get, optionalAuth)
	blogs.POST("", blogHandler.Create, requireAuth, staffOnly)
	blogs.PATCH("/:id", blogHandler.Update, requireAuth, staffOnly)
	blogs.DELETE("/:id", blogHandler.Delete, requireAuth, staffOnly)

	// --- Courses ---
	courseHandler := handler.NewCourseHandler(svc.Catalog)
	courses := api.Group("/courses")
	courses.GET("", courseHandler.List)
	courses.GET("/admin/all", courseHandler.ListAdmin, requireAuth, adminOnly)
	courses.GET("/:slug", courseHandler.Get)
	courses.POST("", courseHandler.Create, requireAuth, adminOnly)
	courses.PATCH("/:id", courseHandler.Update, requireAuth, adminOnly)
	courses.PATCH("/:id/toggle-status", courseHandler.ToggleStatus, requireAuth, adminOnly)
	courses.DELETE("/:id", courseHandler.Delete, requireAuth, adminOnly)

	// --- Products ---
	productHandler := handler.NewProductHandler(svc.Catalog)
	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/featured", productHandler.ListFeatured)
	products.GET("/:slug", productHandler.Get)
	products.POST("", productHandler.Create, requireAuth, adminOnly)
	products.PATCH("/:id", productHandler.Update, requireAuth, adminOnly)
	products.DELETE("/:id", productHandler.Delete, requireAuth, adminOnly)

	// --- Services ---
	serviceHandler := handler.NewServiceHandler(svc.Catalog)
	services := api.Group("/services")
	services.GET("", serviceHandler.List)
	services.GET("/admin/all", serviceHandler.ListAdmin, requireAuth, adminOnly)
	services.GET("/:slug", serviceHandler.Get)
	services.POST("", serviceHandler.Create, requireAuth, adminOnly)
	services.PATCH("/:id", serviceHandler.Update, requireAuth, adminOnly)
	services.PATCH("/:id/toggle-status", serviceHandler.ToggleStatus, requireAuth, adminOnly)
	services.DELETE("/:id", serviceHandler.Delete, requireAuth, adminOnly)

	// --- Job applications (all authenticated) ---
	applicationHandler := handler.NewApplicationHandler(svc.Applications)
	applications := api.Group("/applications", requireAuth)
	applications.POST("", applicationHandler.Submit)
	applications.GET("", applicationHandler.ListAll, adminOnly)
	applications.GET("/my-applications", applicationHandler.ListMine)
	applications.GET("/:id", applicationHandler.Get)
	applications.PATCH("/:id/status", applicationHandler.UpdateStatus, adminOnly)
	applications.DELETE("/:id", applicationHandler.Delete)

	return e
}
