package router

import (
	"net/http"
	"time"

	"ecomarket/internal/auth"
	"ecomarket/internal/config"
	"ecomarket/internal/handler"
	"ecomarket/internal/middleware"
	"ecomarket/internal/repository"
	"ecomarket/internal/service"
	"ecomarket/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	codec := auth.NewTokenCodec(cfg.JWTSecret)
	authSvc := service.NewAuthService(userRepo, codec, dispatcher, cfg)
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo, categoryRepo, rdb)
	reviewSvc := service.NewReviewService(reviewRepo, productRepo, rdb)
	permissionSvc := service.NewPermissionService(userRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	reviewsH := handler.NewReviewsHandler(reviewSvc)
	permissionsH := handler.NewPermissionsHandler(permissionSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	bearer := middleware.BearerAuth(codec)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "My e-commerce app"})
	})
	r.GET("/health", handler.Health(db, rdb))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/token", middleware.LoginRateLimiter(), authH.Token)
		authGroup.POST("/", authH.Register)
		authGroup.GET("/read_current_user", bearer, authH.CurrentUser)
	}

	categories := r.Group("/categories")
	{
		categories.GET("/", categoriesH.List)
		categories.POST("/", bearer, categoriesH.Create)
		categories.PUT("/:slug", bearer, categoriesH.Update)
		categories.DELETE("/:slug", bearer, categoriesH.Delete)
	}

	products := r.Group("/products")
	{
		products.GET("/", productsH.List)
		products.GET("/detail/:slug", productsH.Detail)
		products.GET("/:category_slug", productsH.ByCategory)
		products.POST("/", bearer, productsH.Create)
		products.PUT("/:slug", bearer, productsH.Update)
		products.DELETE("/:slug", bearer, productsH.Delete)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("/", reviewsH.List)
		reviews.GET("/:product_slug", reviewsH.ByProduct)
		reviews.POST("/:product_slug", bearer, reviewsH.Create)
		reviews.DELETE("/", bearer, reviewsH.Delete)
	}

	permission := r.Group("/permission", bearer)
	{
		permission.PATCH("/supplier", permissionsH.ToggleSupplier)
		permission.PATCH("/customer", permissionsH.ToggleCustomer)
		permission.DELETE("/delete", permissionsH.DeleteUser)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
