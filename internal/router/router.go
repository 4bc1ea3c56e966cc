package router

import (
	"github.com/pcshop-next/internal/authz"
	"github.com/pcshop-next/internal/cache"
	"github.com/pcshop-next/internal/config"
	"github.com/pcshop-next/internal/http/handlers"
	"github.com/pcshop-next/internal/logger"
	"github.com/pcshop-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// New 构建路由
func New(cfg *config.Config, h *handlers.Handler, userRepo repository.UserRepository, authzService *authz.Service) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestIDMiddleware())
	engine.Use(LoggerMiddleware(logger.Z()))
	engine.Use(CORSMiddleware(cfg.CORS))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	secret := cfg.JWT.SecretKey
	requireAuth := JWTAuthMiddleware(secret, userRepo)
	optionalAuth := OptionalJWTAuthMiddleware(secret, userRepo)
	requireSuperuser := RequireSuperuserMiddleware()
	enforce := AuthzMiddleware(authzService)

	v1 := engine.Group("/api/v1")

	// 认证
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login",
			RateLimitMiddleware(cache.Client(), RateLimitRule{
				Prefix:        "login_rate",
				WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
				MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
			}, KeyByIPAndJSONField("email")),
			h.Login,
		)
		auth.GET("/me", requireAuth, enforce, h.Me)
	}

	// 商品读取对匿名开放，写入仅超级用户
	products := v1.Group("/products")
	{
		products.GET("", optionalAuth, enforce, h.ListProducts)
		products.GET("/:id", optionalAuth, enforce, h.GetProduct)
		products.POST("", requireAuth, requireSuperuser, h.CreateProduct)
		products.PATCH("/:id", requireAuth, requireSuperuser, h.UpdateProduct)
		products.DELETE("/:id", requireAuth, requireSuperuser, h.DeleteProduct)

		// 互动
		products.POST("/:id/rating", requireAuth, enforce, h.RateProduct)
		products.DELETE("/:id/rating", requireAuth, enforce, h.RemoveRating)
		products.POST("/:id/favorite", requireAuth, enforce, h.AddFavorite)
		products.DELETE("/:id/favorite", requireAuth, enforce, h.RemoveFavorite)
		products.POST("/:id/shopping-cart", requireAuth, enforce, h.AddToShoppingCart)
		products.DELETE("/:id/shopping-cart", requireAuth, enforce, h.RemoveFromShoppingCart)
	}

	// 目录维护
	categories := v1.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", requireAuth, requireSuperuser, h.CreateCategory)
		categories.PATCH("/:id", requireAuth, requireSuperuser, h.UpdateCategory)
		categories.DELETE("/:id", requireAuth, requireSuperuser, h.DeleteCategory)
	}
	subCategories := v1.Group("/sub-categories")
	{
		subCategories.GET("", h.ListSubCategories)
		subCategories.POST("", requireAuth, requireSuperuser, h.CreateSubCategory)
		subCategories.PATCH("/:id", requireAuth, requireSuperuser, h.UpdateSubCategory)
		subCategories.DELETE("/:id", requireAuth, requireSuperuser, h.DeleteSubCategory)
	}
	productTypes := v1.Group("/product-types")
	{
		productTypes.GET("", h.ListProductTypes)
		productTypes.POST("", requireAuth, requireSuperuser, h.CreateProductType)
		productTypes.PATCH("/:id", requireAuth, requireSuperuser, h.UpdateProductType)
		productTypes.DELETE("/:id", requireAuth, requireSuperuser, h.DeleteProductType)
	}
	properties := v1.Group("/properties")
	{
		properties.GET("", h.ListProperties)
		properties.POST("", requireAuth, requireSuperuser, h.CreateProperty)
		properties.PATCH("/:id", requireAuth, requireSuperuser, h.UpdateProperty)
		properties.DELETE("/:id", requireAuth, requireSuperuser, h.DeleteProperty)
	}

	// 订单
	orders := v1.Group("/orders", requireAuth, enforce)
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
	}

	// 装机方案；创建权限策略在 handler 内按配置判定
	pcBuilds := v1.Group("/pc-builds")
	{
		pcBuilds.GET("", optionalAuth, enforce, h.ListPcBuilds)
		pcBuilds.GET("/:id", optionalAuth, enforce, h.GetPcBuild)
		pcBuilds.POST("", optionalAuth, enforce, h.CreatePcBuild)
		pcBuilds.DELETE("/:id", requireAuth, requireSuperuser, h.DeletePcBuild)
	}

	return engine
}
