package repository

import (
	"errors"

	"github.com/pcshop-next/internal/models"

	"gorm.io/gorm"
)

// PropertyRepository 商品特性键数据访问接口
type PropertyRepository interface {
	List() ([]models.Property, error)
	GetByID(id uint) (*models.Property, error)
	ListByIDs(ids []uint) ([]models.Property, error)
	Create(property *models.Property) error
	Save(property *models.Property) error
	Delete(id uint) error
	CountUsages(id uint) (int64, error)
}

// GormPropertyRepository GORM 实现
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository 创建特性键仓库
func NewPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// List 特性键列表
func (r *GormPropertyRepository) List() ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.Order("id ASC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// GetByID 根据 ID 获取特性键，不存在返回 nil
func (r *GormPropertyRepository) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := r.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

// ListByIDs 批量获取特性键
func (r *GormPropertyRepository) ListByIDs(ids []uint) ([]models.Property, error) {
	if len(ids) == 0 {
		return []models.Property{}, nil
	}
	var properties []models.Property
	if err := r.db.Where("id IN ?", ids).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Create 创建特性键
func (r *GormPropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// Save 保存特性键
func (r *GormPropertyRepository) Save(property *models.Property) error {
	return r.db.Save(property).Error
}

// Delete 删除特性键
func (r *GormPropertyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Property{}, id).Error
}

// CountUsages 统计特性键被商品引用的次数
func (r *GormPropertyRepository) CountUsages(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductProperty{}).Where("property_id = ?", id).Count(&count).Error
	return count, err
}
