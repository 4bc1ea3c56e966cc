package provider

import (
	"github.com/pcshop-next/internal/authz"
	"github.com/pcshop-next/internal/cache"
	"github.com/pcshop-next/internal/config"
	"github.com/pcshop-next/internal/logger"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"
	"github.com/pcshop-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo        repository.UserRepository
	CategoryRepo    repository.CategoryRepository
	SubCategoryRepo repository.SubCategoryRepository
	ProductTypeRepo repository.ProductTypeRepository
	PropertyRepo    repository.PropertyRepository
	ProductRepo     repository.ProductRepository
	ArticleRepo     repository.ArticleRepository
	EngagementRepo  repository.EngagementRepository
	OrderRepo       repository.OrderRepository
	PcBuildRepo     repository.PcBuildRepository

	// Services
	AuthzService      *authz.Service
	UserAuthService   *service.UserAuthService
	ProductService    *service.ProductService
	ViewService       *service.ProductViewService
	EngagementService *service.EngagementService
	PcBuildService    *service.PcBuildService
	CatalogService    *service.CatalogService
	OrderService      *service.OrderService

	PropertyCache *cache.PropertyCache
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.SubCategoryRepo = repository.NewSubCategoryRepository(db)
	c.ProductTypeRepo = repository.NewProductTypeRepository(db)
	c.PropertyRepo = repository.NewPropertyRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ArticleRepo = repository.NewArticleRepository(db)
	c.EngagementRepo = repository.NewEngagementRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PcBuildRepo = repository.NewPcBuildRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := authz.Bootstrap(c.AuthzService); err != nil {
		logger.Errorw("provider_bootstrap_authz_failed", "error", err)
		panic(err)
	}

	c.PropertyCache = cache.NewPropertyCache(c.Config.Catalog.PropertyCacheTTLSeconds)

	allocator := service.NewArticleAllocator(c.ArticleRepo)

	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(
		c.ProductRepo,
		c.CategoryRepo,
		c.SubCategoryRepo,
		c.ProductTypeRepo,
		c.PropertyRepo,
		allocator,
		c.PropertyCache,
	)
	c.ViewService = service.NewProductViewService(c.ProductRepo, c.EngagementRepo, c.PropertyCache)
	c.EngagementService = service.NewEngagementService(c.EngagementRepo, c.ProductRepo)
	c.PcBuildService = service.NewPcBuildService(c.PcBuildRepo, c.ProductRepo, c.ViewService)
	c.CatalogService = service.NewCatalogService(c.CategoryRepo, c.SubCategoryRepo, c.ProductTypeRepo, c.PropertyRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.EngagementRepo)
}
