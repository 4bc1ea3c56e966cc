package repository

import (
	"errors"

	"github.com/pcshop-next/internal/models"

	"gorm.io/gorm"
)

// ProductTypeRepository 商品类型数据访问接口
type ProductTypeRepository interface {
	List() ([]models.ProductType, error)
	GetByID(id uint) (*models.ProductType, error)
	GetByName(name string) (*models.ProductType, error)
	Create(productType *models.ProductType) error
	Save(productType *models.ProductType) error
	Delete(id uint) error
	CountProducts(id uint) (int64, error)
}

// GormProductTypeRepository GORM 实现
type GormProductTypeRepository struct {
	db *gorm.DB
}

// NewProductTypeRepository 创建商品类型仓库
func NewProductTypeRepository(db *gorm.DB) *GormProductTypeRepository {
	return &GormProductTypeRepository{db: db}
}

// List 商品类型列表
func (r *GormProductTypeRepository) List() ([]models.ProductType, error) {
	var types []models.ProductType
	if err := r.db.Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetByID 根据 ID 获取商品类型，不存在返回 nil
func (r *GormProductTypeRepository) GetByID(id uint) (*models.ProductType, error) {
	var productType models.ProductType
	if err := r.db.First(&productType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &productType, nil
}

// GetByName 根据名称获取商品类型，不存在返回 nil
func (r *GormProductTypeRepository) GetByName(name string) (*models.ProductType, error) {
	var productType models.ProductType
	if err := r.db.Where("name = ?", name).First(&productType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &productType, nil
}

// Create 创建商品类型
func (r *GormProductTypeRepository) Create(productType *models.ProductType) error {
	return r.db.Create(productType).Error
}

// Save 保存商品类型
func (r *GormProductTypeRepository) Save(productType *models.ProductType) error {
	return r.db.Save(productType).Error
}

// Delete 删除商品类型
func (r *GormProductTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProductType{}, id).Error
}

// CountProducts 统计类型下商品数量
func (r *GormProductTypeRepository) CountProducts(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("product_type_id = ?", id).Count(&count).Error
	return count, err
}
