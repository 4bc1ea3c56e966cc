package models

import "time"

// EngagementKind 互动类型（评分 / 收藏 / 购物车）
type EngagementKind string

const (
	KindRating       EngagementKind = "rating"
	KindFavorite     EngagementKind = "favorite"
	KindShoppingCart EngagementKind = "shopping_cart"
)

// Valid 判断互动类型是否合法
func (k EngagementKind) Valid() bool {
	switch k {
	case KindRating, KindFavorite, KindShoppingCart:
		return true
	}
	return false
}

// Engagement 用户商品互动表
// kind 作为判别字段，score 仅对 rating 有意义。
// 唯一索引 (user_id, product_id, kind) 是防重的最终依据。
type Engagement struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_engagement_user_product_kind" json:"user_id"`
	ProductID uint           `gorm:"not null;uniqueIndex:idx_engagement_user_product_kind" json:"product_id"`
	Kind      EngagementKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_engagement_user_product_kind" json:"kind"`
	Score     *int16         `json:"score,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (Engagement) TableName() string {
	return "engagements"
}
