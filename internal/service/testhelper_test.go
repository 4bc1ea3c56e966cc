package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/pcshop-next/internal/cache"
	"github.com/pcshop-next/internal/config"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// newTestDB 每个测试独立的内存库
// 单连接串行化访问，配合 cache=shared 保证事务与并发用例可复现。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

type testEnv struct {
	db *gorm.DB

	userRepo        repository.UserRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	typeRepo        repository.ProductTypeRepository
	propertyRepo    repository.PropertyRepository
	productRepo     repository.ProductRepository
	articleRepo     repository.ArticleRepository
	engagementRepo  repository.EngagementRepository
	orderRepo       repository.OrderRepository
	pcBuildRepo     repository.PcBuildRepository

	productService    *ProductService
	viewService       *ProductViewService
	engagementService *EngagementService
	pcBuildService    *PcBuildService
	catalogService    *CatalogService
	orderService      *OrderService
	authService       *UserAuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	env := &testEnv{
		db:              db,
		userRepo:        repository.NewUserRepository(db),
		categoryRepo:    repository.NewCategoryRepository(db),
		subCategoryRepo: repository.NewSubCategoryRepository(db),
		typeRepo:        repository.NewProductTypeRepository(db),
		propertyRepo:    repository.NewPropertyRepository(db),
		productRepo:     repository.NewProductRepository(db),
		articleRepo:     repository.NewArticleRepository(db),
		engagementRepo:  repository.NewEngagementRepository(db),
		orderRepo:       repository.NewOrderRepository(db),
		pcBuildRepo:     repository.NewPcBuildRepository(db),
	}

	// Redis 未启用时特性缓存直接回源
	propertyCache := cache.NewPropertyCache(0)
	allocator := NewArticleAllocator(env.articleRepo)

	env.productService = NewProductService(
		env.productRepo,
		env.categoryRepo,
		env.subCategoryRepo,
		env.typeRepo,
		env.propertyRepo,
		allocator,
		propertyCache,
	)
	env.viewService = NewProductViewService(env.productRepo, env.engagementRepo, propertyCache)
	env.engagementService = NewEngagementService(env.engagementRepo, env.productRepo)
	env.pcBuildService = NewPcBuildService(env.pcBuildRepo, env.productRepo, env.viewService)
	env.catalogService = NewCatalogService(env.categoryRepo, env.subCategoryRepo, env.typeRepo, env.propertyRepo)
	env.orderService = NewOrderService(env.orderRepo, env.productRepo, env.engagementRepo)
	env.authService = NewUserAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret-key-0123456789abcdef", ExpireHours: 1},
	}, env.userRepo)

	return env
}

var testUserSeq int64

func (env *testEnv) createUser(t *testing.T, superuser bool) *models.User {
	t.Helper()

	n := atomic.AddInt64(&testUserSeq, 1)
	user := &models.User{
		Email:        fmt.Sprintf("user%d@example.com", n),
		Username:     fmt.Sprintf("user%d", n),
		PhoneNumber:  fmt.Sprintf("+3598900%05d", n),
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "x",
		IsActive:     true,
		IsSuperuser:  superuser,
	}
	if err := env.userRepo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

type catalogFixture struct {
	Category    *models.Category
	SubCategory *models.SubCategory
	Type        *models.ProductType
	Property    *models.Property
}

func (env *testEnv) createCatalog(t *testing.T, typeName string) catalogFixture {
	t.Helper()

	n := atomic.AddInt64(&testUserSeq, 1)
	category := &models.Category{Name: fmt.Sprintf("Components %d", n), Slug: fmt.Sprintf("components-%d", n)}
	if err := env.categoryRepo.Create(category); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	subCategory := &models.SubCategory{Name: fmt.Sprintf("Processors %d", n), Slug: fmt.Sprintf("processors-%d", n)}
	if err := env.subCategoryRepo.Create(subCategory); err != nil {
		t.Fatalf("create sub category failed: %v", err)
	}
	productType, err := env.typeRepo.GetByName(typeName)
	if err != nil {
		t.Fatalf("get product type failed: %v", err)
	}
	if productType == nil {
		productType = &models.ProductType{Name: typeName}
		if err := env.typeRepo.Create(productType); err != nil {
			t.Fatalf("create product type failed: %v", err)
		}
	}
	property := &models.Property{Name: fmt.Sprintf("Capacity %d", n)}
	if err := env.propertyRepo.Create(property); err != nil {
		t.Fatalf("create property failed: %v", err)
	}
	return catalogFixture{Category: category, SubCategory: subCategory, Type: productType, Property: property}
}

func (env *testEnv) createProduct(t *testing.T, creator *models.User, typeName string) *models.Product {
	t.Helper()

	fixture := env.createCatalog(t, typeName)
	n := atomic.AddInt64(&testUserSeq, 1)
	product, err := env.productService.Create(CreateProductInput{
		Name:          fmt.Sprintf("Test Product %d", n),
		Description:   "A reliable test product",
		Price:         1000,
		CategoryID:    fixture.Category.ID,
		SubCategoryID: fixture.SubCategory.ID,
		ProductTypeID: fixture.Type.ID,
		CreatorID:     creator.ID,
		Properties: []PropertyValueInput{
			{PropertyID: fixture.Property.ID, Value: "16GB"},
		},
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}
