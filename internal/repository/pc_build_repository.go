package repository

import (
	"errors"

	"github.com/pcshop-next/internal/models"

	"gorm.io/gorm"
)

// PcBuildRepository 装机方案数据访问接口
type PcBuildRepository interface {
	List(filter PcBuildListFilter) ([]models.PcBuild, int64, error)
	GetByID(id uint) (*models.PcBuild, error)
	Create(build *models.PcBuild) error
	Delete(id uint) error
}

// GormPcBuildRepository GORM 实现
type GormPcBuildRepository struct {
	db *gorm.DB
}

// NewPcBuildRepository 创建装机方案仓库
func NewPcBuildRepository(db *gorm.DB) *GormPcBuildRepository {
	return &GormPcBuildRepository{db: db}
}

// List 装机方案列表
func (r *GormPcBuildRepository) List(filter PcBuildListFilter) ([]models.PcBuild, int64, error) {
	var builds []models.PcBuild

	query := r.db.Model(&models.PcBuild{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := applyPagination(filter.Page, filter.PageSize)
	if err := query.Offset(offset).Limit(limit).Order("id DESC").Find(&builds).Error; err != nil {
		return nil, 0, err
	}
	return builds, total, nil
}

// GetByID 根据 ID 获取装机方案，不存在返回 nil
func (r *GormPcBuildRepository) GetByID(id uint) (*models.PcBuild, error) {
	var build models.PcBuild
	if err := r.db.First(&build, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &build, nil
}

// Create 创建装机方案
func (r *GormPcBuildRepository) Create(build *models.PcBuild) error {
	return r.db.Create(build).Error
}

// Delete 删除装机方案
func (r *GormPcBuildRepository) Delete(id uint) error {
	return r.db.Delete(&models.PcBuild{}, id).Error
}
