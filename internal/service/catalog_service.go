package service

import (
	"errors"
	"strings"
	"unicode"

	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"

	"gorm.io/gorm"
)

// CatalogService 目录维护服务（分类 / 子分类 / 类型 / 特性键）
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	subCatRepo   repository.SubCategoryRepository
	typeRepo     repository.ProductTypeRepository
	propertyRepo repository.PropertyRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	subCatRepo repository.SubCategoryRepository,
	typeRepo repository.ProductTypeRepository,
	propertyRepo repository.PropertyRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		subCatRepo:   subCatRepo,
		typeRepo:     typeRepo,
		propertyRepo: propertyRepo,
	}
}

// CreateCategoryInput 创建分类 / 子分类输入
type CreateCategoryInput struct {
	Name string
	Slug string
}

// validateCategoryName 名称须含至少 3 个字母（文章编码前缀依赖）
func validateCategoryName(verr *ValidationError, name string) {
	if name == "" || len(name) > constants.CategoryNameMaxLength {
		verr.Addf("name", "must be 1 to %d characters", constants.CategoryNameMaxLength)
		return
	}
	letters := 0
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < constants.CategoryNameMinLetters {
		verr.Addf("name", "must contain at least %d letters", constants.CategoryNameMinLetters)
	}
}

func validateSlug(verr *ValidationError, slug string) {
	if slug == "" || len(slug) > constants.CategorySlugMaxLength {
		verr.Addf("slug", "must be 1 to %d characters", constants.CategorySlugMaxLength)
	}
}

// ListCategories 分类列表
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// CreateCategory 创建分类
func (s *CatalogService) CreateCategory(input CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)

	verr := &ValidationError{}
	validateCategoryName(verr, name)
	validateSlug(verr, slug)
	if verr.HasErrors() {
		return nil, verr
	}

	category := &models.Category{Name: name, Slug: slug}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategorySlugExists
		}
		return nil, err
	}
	return category, nil
}

// UpdateCategory 更新分类
func (s *CatalogService) UpdateCategory(id uint, input CreateCategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)
	verr := &ValidationError{}
	validateCategoryName(verr, name)
	validateSlug(verr, slug)
	if verr.HasErrors() {
		return nil, verr
	}

	category.Name = name
	category.Slug = slug
	if err := s.categoryRepo.Save(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategorySlugExists
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory 删除分类（仍被商品引用时拒绝）
func (s *CatalogService) DeleteCategory(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	count, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}

// ListSubCategories 子分类列表
func (s *CatalogService) ListSubCategories() ([]models.SubCategory, error) {
	return s.subCatRepo.List()
}

// CreateSubCategory 创建子分类
func (s *CatalogService) CreateSubCategory(input CreateCategoryInput) (*models.SubCategory, error) {
	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)

	verr := &ValidationError{}
	validateCategoryName(verr, name)
	validateSlug(verr, slug)
	if verr.HasErrors() {
		return nil, verr
	}

	subCategory := &models.SubCategory{Name: name, Slug: slug}
	if err := s.subCatRepo.Create(subCategory); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategorySlugExists
		}
		return nil, err
	}
	return subCategory, nil
}

// UpdateSubCategory 更新子分类
func (s *CatalogService) UpdateSubCategory(id uint, input CreateCategoryInput) (*models.SubCategory, error) {
	subCategory, err := s.subCatRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subCategory == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)
	verr := &ValidationError{}
	validateCategoryName(verr, name)
	validateSlug(verr, slug)
	if verr.HasErrors() {
		return nil, verr
	}

	subCategory.Name = name
	subCategory.Slug = slug
	if err := s.subCatRepo.Save(subCategory); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategorySlugExists
		}
		return nil, err
	}
	return subCategory, nil
}

// DeleteSubCategory 删除子分类（仍被商品引用时拒绝）
func (s *CatalogService) DeleteSubCategory(id uint) error {
	subCategory, err := s.subCatRepo.GetByID(id)
	if err != nil {
		return err
	}
	if subCategory == nil {
		return ErrNotFound
	}
	count, err := s.subCatRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.subCatRepo.Delete(id)
}

// ListProductTypes 商品类型列表
func (s *CatalogService) ListProductTypes() ([]models.ProductType, error) {
	return s.typeRepo.List()
}

// CreateProductType 创建商品类型
func (s *CatalogService) CreateProductType(name string) (*models.ProductType, error) {
	name = strings.TrimSpace(name)
	verr := &ValidationError{}
	if name == "" || len(name) > constants.CategoryNameMaxLength {
		verr.Addf("name", "must be 1 to %d characters", constants.CategoryNameMaxLength)
	}
	if verr.HasErrors() {
		return nil, verr
	}

	productType := &models.ProductType{Name: name}
	if err := s.typeRepo.Create(productType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTypeNameExists
		}
		return nil, err
	}
	return productType, nil
}

// UpdateProductType 更新商品类型
func (s *CatalogService) UpdateProductType(id uint, name string) (*models.ProductType, error) {
	productType, err := s.typeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if productType == nil {
		return nil, ErrNotFound
	}

	name = strings.TrimSpace(name)
	verr := &ValidationError{}
	if name == "" || len(name) > constants.CategoryNameMaxLength {
		verr.Addf("name", "must be 1 to %d characters", constants.CategoryNameMaxLength)
	}
	if verr.HasErrors() {
		return nil, verr
	}

	productType.Name = name
	if err := s.typeRepo.Save(productType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTypeNameExists
		}
		return nil, err
	}
	return productType, nil
}

// DeleteProductType 删除商品类型（仍被商品引用时拒绝）
func (s *CatalogService) DeleteProductType(id uint) error {
	productType, err := s.typeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if productType == nil {
		return ErrNotFound
	}
	count, err := s.typeRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.typeRepo.Delete(id)
}

// ListProperties 特性键列表
func (s *CatalogService) ListProperties() ([]models.Property, error) {
	return s.propertyRepo.List()
}

// CreateProperty 创建特性键
func (s *CatalogService) CreateProperty(name string) (*models.Property, error) {
	name = strings.TrimSpace(name)
	verr := &ValidationError{}
	if name == "" || len(name) > constants.MaxNameLength {
		verr.Addf("name", "must be 1 to %d characters", constants.MaxNameLength)
	}
	if verr.HasErrors() {
		return nil, verr
	}

	property := &models.Property{Name: name}
	if err := s.propertyRepo.Create(property); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPropertyNameExists
		}
		return nil, err
	}
	return property, nil
}

// UpdateProperty 更新特性键
func (s *CatalogService) UpdateProperty(id uint, name string) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrNotFound
	}

	name = strings.TrimSpace(name)
	verr := &ValidationError{}
	if name == "" || len(name) > constants.MaxNameLength {
		verr.Addf("name", "must be 1 to %d characters", constants.MaxNameLength)
	}
	if verr.HasErrors() {
		return nil, verr
	}

	property.Name = name
	if err := s.propertyRepo.Save(property); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPropertyNameExists
		}
		return nil, err
	}
	return property, nil
}

// DeleteProperty 删除特性键（仍被商品引用时拒绝）
func (s *CatalogService) DeleteProperty(id uint) error {
	property, err := s.propertyRepo.GetByID(id)
	if err != nil {
		return err
	}
	if property == nil {
		return ErrNotFound
	}
	count, err := s.propertyRepo.CountUsages(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.propertyRepo.Delete(id)
}
