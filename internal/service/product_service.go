package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pcshop-next/internal/cache"
	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"

	"gorm.io/gorm"
)

// ProductService 商品业务服务
type ProductService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	subCatRepo    repository.SubCategoryRepository
	typeRepo      repository.ProductTypeRepository
	propertyRepo  repository.PropertyRepository
	allocator     *ArticleAllocator
	propertyCache *cache.PropertyCache
}

// NewProductService 创建商品服务
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	subCatRepo repository.SubCategoryRepository,
	typeRepo repository.ProductTypeRepository,
	propertyRepo repository.PropertyRepository,
	allocator *ArticleAllocator,
	propertyCache *cache.PropertyCache,
) *ProductService {
	return &ProductService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		subCatRepo:    subCatRepo,
		typeRepo:      typeRepo,
		propertyRepo:  propertyRepo,
		allocator:     allocator,
		propertyCache: propertyCache,
	}
}

// PropertyValueInput 商品特性值输入
type PropertyValueInput struct {
	PropertyID uint
	Value      string
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name          string
	Description   string
	Price         int64
	CategoryID    uint
	SubCategoryID uint
	ProductTypeID uint
	CreatorID     uint
	Properties    []PropertyValueInput
}

// UpdateProductInput 更新商品输入（nil 字段保持不变）
type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *int64
	CategoryID    *uint
	SubCategoryID *uint
	ProductTypeID *uint
	Properties    *[]PropertyValueInput
}

// Create 创建商品
// 校验阶段收齐全部字段错误；通过后在事务内写入商品、特性值与文章编码。
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	verr := &ValidationError{}

	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	validateName(verr, name)
	validateDescription(verr, description)
	validatePrice(verr, input.Price)

	category, subCategory, err := s.validateRefs(verr, input.CategoryID, input.SubCategoryID, input.ProductTypeID)
	if err != nil {
		return nil, err
	}
	if err := s.validateProperties(verr, input.Properties); err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		return nil, verr
	}

	count, err := s.productRepo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProductNameExists
	}

	product := models.Product{
		Name:          name,
		Description:   description,
		Price:         input.Price,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		ProductTypeID: input.ProductTypeID,
		CreatorID:     input.CreatorID,
	}

	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.productRepo.WithTx(tx)
		if err := txRepo.Create(&product); err != nil {
			return err
		}
		if err := txRepo.ReplaceProperties(product.ID, propertyRows(input.Properties)); err != nil {
			return err
		}
		article, err := s.allocator.Allocate(tx, product.ID, category.Name, subCategory.Name)
		if err != nil {
			return err
		}
		product.Article = article
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProductNameExists
		}
		return nil, err
	}

	return s.productRepo.GetByID(product.ID)
}

// Update 更新商品
// 分类变动不会重新分配文章编码，编码在创建时定格。
func (s *ProductService) Update(ctx context.Context, id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	verr := &ValidationError{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		validateName(verr, name)
		if !verr.HasErrors() && name != product.Name {
			count, err := s.productRepo.CountByName(name, &id)
			if err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrProductNameExists
			}
		}
		product.Name = name
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		validateDescription(verr, description)
		product.Description = description
	}
	if input.Price != nil {
		validatePrice(verr, *input.Price)
		product.Price = *input.Price
	}

	categoryID := product.CategoryID
	if input.CategoryID != nil {
		categoryID = *input.CategoryID
	}
	subCategoryID := product.SubCategoryID
	if input.SubCategoryID != nil {
		subCategoryID = *input.SubCategoryID
	}
	productTypeID := product.ProductTypeID
	if input.ProductTypeID != nil {
		productTypeID = *input.ProductTypeID
	}
	if _, _, err := s.validateRefs(verr, categoryID, subCategoryID, productTypeID); err != nil {
		return nil, err
	}
	if input.Properties != nil {
		if err := s.validateProperties(verr, *input.Properties); err != nil {
			return nil, err
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	product.CategoryID = categoryID
	product.SubCategoryID = subCategoryID
	product.ProductTypeID = productTypeID

	// GetByID 预加载了关联结构，Save 会按旧关联反推外键，保存前必须清空
	product.Category = models.Category{}
	product.SubCategory = models.SubCategory{}
	product.ProductType = models.ProductType{}
	product.Creator = models.User{}
	product.Article = nil
	product.Properties = nil

	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.productRepo.WithTx(tx)
		if err := txRepo.Save(product); err != nil {
			return err
		}
		if input.Properties != nil {
			return txRepo.ReplaceProperties(product.ID, propertyRows(*input.Properties))
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProductNameExists
		}
		return nil, err
	}

	if input.Properties != nil {
		s.propertyCache.InvalidateProduct(ctx, product.ID)
	}
	return s.productRepo.GetByID(product.ID)
}

// Delete 删除商品
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.propertyCache.InvalidateProduct(ctx, id)
	return nil
}

func (s *ProductService) validateRefs(verr *ValidationError, categoryID, subCategoryID, productTypeID uint) (*models.Category, *models.SubCategory, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		verr.Add("category_id", "category not found")
	}
	subCategory, err := s.subCatRepo.GetByID(subCategoryID)
	if err != nil {
		return nil, nil, err
	}
	if subCategory == nil {
		verr.Add("sub_category_id", "sub category not found")
	}
	productType, err := s.typeRepo.GetByID(productTypeID)
	if err != nil {
		return nil, nil, err
	}
	if productType == nil {
		verr.Add("product_type_id", "product type not found")
	}
	return category, subCategory, nil
}

func (s *ProductService) validateProperties(verr *ValidationError, properties []PropertyValueInput) error {
	if len(properties) == 0 {
		return nil
	}
	seen := make(map[uint]bool, len(properties))
	ids := make([]uint, 0, len(properties))
	for _, p := range properties {
		if seen[p.PropertyID] {
			verr.Addf("properties", "property %d listed more than once", p.PropertyID)
			continue
		}
		seen[p.PropertyID] = true
		ids = append(ids, p.PropertyID)
		if value := strings.TrimSpace(p.Value); value == "" || len(value) > constants.MaxValueLength {
			verr.Addf("properties", "property %d value must be 1 to %d characters", p.PropertyID, constants.MaxValueLength)
		}
	}
	known, err := s.propertyRepo.ListByIDs(ids)
	if err != nil {
		return err
	}
	knownSet := make(map[uint]bool, len(known))
	for _, p := range known {
		knownSet[p.ID] = true
	}
	for _, id := range ids {
		if !knownSet[id] {
			verr.Addf("properties", "property %d not found", id)
		}
	}
	return nil
}

func validateName(verr *ValidationError, name string) {
	if len(name) < constants.MinNameLength || len(name) > constants.MaxNameLength {
		verr.Addf("name", "must be %d to %d characters", constants.MinNameLength, constants.MaxNameLength)
	}
}

func validateDescription(verr *ValidationError, description string) {
	if len(description) < constants.MinDescriptionLength || len(description) > constants.MaxDescriptionLength {
		verr.Addf("description", "must be %d to %d characters", constants.MinDescriptionLength, constants.MaxDescriptionLength)
	}
}

func validatePrice(verr *ValidationError, price int64) {
	if price < constants.MinPriceValue || price > constants.MaxPriceValue {
		verr.Addf("price", "must be between %d and %d", constants.MinPriceValue, constants.MaxPriceValue)
	}
}

func propertyRows(inputs []PropertyValueInput) []models.ProductProperty {
	rows := make([]models.ProductProperty, 0, len(inputs))
	for _, p := range inputs {
		rows = append(rows, models.ProductProperty{
			PropertyID: p.PropertyID,
			Value:      strings.TrimSpace(p.Value),
		})
	}
	return rows
}
