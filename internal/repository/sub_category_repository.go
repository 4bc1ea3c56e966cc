package repository

import (
	"errors"

	"github.com/pcshop-next/internal/models"

	"gorm.io/gorm"
)

// SubCategoryRepository 子分类数据访问接口
type SubCategoryRepository interface {
	List() ([]models.SubCategory, error)
	GetByID(id uint) (*models.SubCategory, error)
	GetBySlug(slug string) (*models.SubCategory, error)
	Create(subCategory *models.SubCategory) error
	Save(subCategory *models.SubCategory) error
	Delete(id uint) error
	CountProducts(id uint) (int64, error)
}

// GormSubCategoryRepository GORM 实现
type GormSubCategoryRepository struct {
	db *gorm.DB
}

// NewSubCategoryRepository 创建子分类仓库
func NewSubCategoryRepository(db *gorm.DB) *GormSubCategoryRepository {
	return &GormSubCategoryRepository{db: db}
}

// List 子分类列表
func (r *GormSubCategoryRepository) List() ([]models.SubCategory, error) {
	var subCategories []models.SubCategory
	if err := r.db.Order("id ASC").Find(&subCategories).Error; err != nil {
		return nil, err
	}
	return subCategories, nil
}

// GetByID 根据 ID 获取子分类，不存在返回 nil
func (r *GormSubCategoryRepository) GetByID(id uint) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	if err := r.db.First(&subCategory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subCategory, nil
}

// GetBySlug 根据 slug 获取子分类，不存在返回 nil
func (r *GormSubCategoryRepository) GetBySlug(slug string) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	if err := r.db.Where("slug = ?", slug).First(&subCategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subCategory, nil
}

// Create 创建子分类
func (r *GormSubCategoryRepository) Create(subCategory *models.SubCategory) error {
	return r.db.Create(subCategory).Error
}

// Save 保存子分类
func (r *GormSubCategoryRepository) Save(subCategory *models.SubCategory) error {
	return r.db.Save(subCategory).Error
}

// Delete 删除子分类
func (r *GormSubCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.SubCategory{}, id).Error
}

// CountProducts 统计子分类下商品数量
func (r *GormSubCategoryRepository) CountProducts(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("sub_category_id = ?", id).Count(&count).Error
	return count, err
}
