package repository

import (
	"errors"
	"strings"

	"github.com/pcshop-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	ListPropertiesByProducts(productIDs []uint) (map[uint][]models.ProductProperty, error)
	Create(product *models.Product) error
	Save(product *models.Product) error
	Delete(id uint) error
	ReplaceProperties(productID uint, rows []models.ProductProperty) error
	CountByName(name string, excludeID *uint) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func (r *GormProductRepository) withAssociations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Category").
		Preload("SubCategory").
		Preload("ProductType").
		Preload("Creator").
		Preload("Article")
}

// List 商品列表
// 关联通过 Preload 批量加载，结果按 id, name, creator_id 稳定排序。
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SubCategoryID != 0 {
		query = query.Where("sub_category_id = ?", filter.SubCategoryID)
	}
	if filter.ProductTypeID != 0 {
		query = query.Where("product_type_id = ?", filter.ProductTypeID)
	}
	if typeName := strings.TrimSpace(filter.TypeName); typeName != "" {
		query = query.Where(
			"product_type_id IN (SELECT id FROM product_types WHERE name = ?)",
			typeName,
		)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := applyPagination(filter.Page, filter.PageSize)
	query = r.withAssociations(query).Offset(offset).Limit(limit)

	if err := query.Order("id ASC, name ASC, creator_id ASC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID 根据 ID 获取商品（含关联）
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.withAssociations(r.db).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs 批量获取商品（含关联）
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.withAssociations(r.db).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListPropertiesByProducts 批量获取商品特性值（含特性名）
func (r *GormProductRepository) ListPropertiesByProducts(productIDs []uint) (map[uint][]models.ProductProperty, error) {
	result := make(map[uint][]models.ProductProperty, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	var rows []models.ProductProperty
	if err := r.db.Preload("Property").
		Where("product_id IN ?", productIDs).
		Order("property_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ProductID] = append(result[row.ProductID], row)
	}
	return result, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Save 保存商品
func (r *GormProductRepository) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete 硬删除商品并级联清理依赖行
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductProperty{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Article{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Engagement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"pc_box_id = ? OR power_supply_id = ? OR motherboard_id = ? OR ram_memory_id = ?"+
				" OR ssd_storage_memory_id = ? OR hdd_storage_memory_id = ? OR cpu_id = ? OR gpu_id = ?",
			id, id, id, id, id, id, id, id,
		).Delete(&models.PcBuild{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

// ReplaceProperties 整体替换商品特性值（先删后插）
func (r *GormProductRepository) ReplaceProperties(productID uint, rows []models.ProductProperty) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&models.ProductProperty{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].ID = 0
		rows[i].ProductID = productID
	}
	return r.db.Create(&rows).Error
}

// CountByName 统计同名商品数量
func (r *GormProductRepository) CountByName(name string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
