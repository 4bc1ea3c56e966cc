package repository

import (
	"errors"

	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/models"

	"gorm.io/gorm"
)

// ArticleRepository 文章编码数据访问接口
type ArticleRepository interface {
	NextSequence(prefix string) (int64, error)
	Create(article *models.Article) error
	GetByProductID(productID uint) (*models.Article, error)
	WithTx(tx *gorm.DB) ArticleRepository
}

// GormArticleRepository GORM 实现
type GormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建文章编码仓库
func NewArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// WithTx 绑定事务
func (r *GormArticleRepository) WithTx(tx *gorm.DB) ArticleRepository {
	if tx == nil {
		return r
	}
	return &GormArticleRepository{db: tx}
}

// NextSequence 为前缀分配下一个序号
// 原子 UPDATE 自增后读回，首次使用的前缀插入起始行；
// 并发首插撞唯一键时退回到自增路径重试一次。
func (r *GormArticleRepository) NextSequence(prefix string) (int64, error) {
	value, err := r.incrementSequence(prefix)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	seq := models.ArticleSequence{
		Prefix:    prefix,
		NextValue: constants.ArticleSequenceStart,
	}
	if err := r.db.Create(&seq).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.incrementSequence(prefix)
		}
		return 0, err
	}
	return seq.NextValue, nil
}

func (r *GormArticleRepository) incrementSequence(prefix string) (int64, error) {
	result := r.db.Model(&models.ArticleSequence{}).
		Where("prefix = ?", prefix).
		Update("next_value", gorm.Expr("next_value + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var seq models.ArticleSequence
	if err := r.db.Where("prefix = ?", prefix).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.NextValue, nil
}

// Create 写入文章编码
func (r *GormArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByProductID 根据商品 ID 获取文章编码，不存在返回 nil
func (r *GormArticleRepository) GetByProductID(productID uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("product_id = ?", productID).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}
