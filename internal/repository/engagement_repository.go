package repository

import (
	"errors"

	"github.com/pcshop-next/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository 用户互动数据访问接口
type EngagementRepository interface {
	Create(engagement *models.Engagement) error
	Get(userID, productID uint, kind models.EngagementKind) (*models.Engagement, error)
	Delete(userID, productID uint, kind models.EngagementKind) (int64, error)
	MembershipSet(userID uint, kind models.EngagementKind, productIDs []uint) (map[uint]bool, error)
	ListProductIDs(userID uint, kind models.EngagementKind) ([]uint, error)
	AverageScores(productIDs []uint) (map[uint]float64, error)
	WithTx(tx *gorm.DB) EngagementRepository
}

// GormEngagementRepository GORM 实现
type GormEngagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository 创建互动仓库
func NewEngagementRepository(db *gorm.DB) *GormEngagementRepository {
	return &GormEngagementRepository{db: db}
}

// WithTx 绑定事务
func (r *GormEngagementRepository) WithTx(tx *gorm.DB) EngagementRepository {
	if tx == nil {
		return r
	}
	return &GormEngagementRepository{db: tx}
}

// Create 写入互动记录
// 不做先查后插，重复由唯一索引拦截并以 gorm.ErrDuplicatedKey 返回。
func (r *GormEngagementRepository) Create(engagement *models.Engagement) error {
	return r.db.Create(engagement).Error
}

// Get 获取单条互动记录，不存在返回 nil
func (r *GormEngagementRepository) Get(userID, productID uint, kind models.EngagementKind) (*models.Engagement, error) {
	var engagement models.Engagement
	err := r.db.Where("user_id = ? AND product_id = ? AND kind = ?", userID, productID, kind).
		First(&engagement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &engagement, nil
}

// Delete 删除互动记录，返回受影响行数
func (r *GormEngagementRepository) Delete(userID, productID uint, kind models.EngagementKind) (int64, error) {
	result := r.db.Where("user_id = ? AND product_id = ? AND kind = ?", userID, productID, kind).
		Delete(&models.Engagement{})
	return result.RowsAffected, result.Error
}

// MembershipSet 批量判断用户对哪些商品存在指定互动
func (r *GormEngagementRepository) MembershipSet(userID uint, kind models.EngagementKind, productIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(productIDs))
	if userID == 0 || len(productIDs) == 0 {
		return result, nil
	}
	var ids []uint
	err := r.db.Model(&models.Engagement{}).
		Where("user_id = ? AND kind = ? AND product_id IN ?", userID, kind, productIDs).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// ListProductIDs 列出用户指定互动涉及的全部商品 ID（按加入时间先后）
func (r *GormEngagementRepository) ListProductIDs(userID uint, kind models.EngagementKind) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Engagement{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("id ASC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

type productScoreRow struct {
	ProductID uint
	Avg       float64
}

// AverageScores 批量计算商品评分均值（无评分的商品不在结果中）
func (r *GormEngagementRepository) AverageScores(productIDs []uint) (map[uint]float64, error) {
	result := make(map[uint]float64, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	var rows []productScoreRow
	err := r.db.Model(&models.Engagement{}).
		Select("product_id, AVG(score) AS avg").
		Where("kind = ? AND product_id IN ?", models.KindRating, productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ProductID] = row.Avg
	}
	return result, nil
}
