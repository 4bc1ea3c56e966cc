package service

import (
	"errors"

	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"

	"gorm.io/gorm"
)

// EngagementService 用户互动业务服务（评分 / 收藏 / 购物车）
// 写入不做先查后插：直接插入，唯一索引冲突即视为已存在。
type EngagementService struct {
	engagementRepo repository.EngagementRepository
	productRepo    repository.ProductRepository
}

// NewEngagementService 创建互动服务
func NewEngagementService(
	engagementRepo repository.EngagementRepository,
	productRepo repository.ProductRepository,
) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		productRepo:    productRepo,
	}
}

// Rate 为商品评分
func (s *EngagementService) Rate(userID, productID uint, score int16) error {
	if score < constants.MinRatingScore || score > constants.MaxRatingScore {
		return ErrScoreInvalid
	}
	if err := s.ensureProduct(productID); err != nil {
		return err
	}
	engagement := &models.Engagement{
		UserID:    userID,
		ProductID: productID,
		Kind:      models.KindRating,
		Score:     &score,
	}
	if err := s.engagementRepo.Create(engagement); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRatingExists
		}
		return err
	}
	return nil
}

// Add 将商品加入收藏或购物车
func (s *EngagementService) Add(userID, productID uint, kind models.EngagementKind) error {
	if kind != models.KindFavorite && kind != models.KindShoppingCart {
		return ErrKindInvalid
	}
	if err := s.ensureProduct(productID); err != nil {
		return err
	}
	engagement := &models.Engagement{
		UserID:    userID,
		ProductID: productID,
		Kind:      kind,
	}
	if err := s.engagementRepo.Create(engagement); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return existsError(kind)
		}
		return err
	}
	return nil
}

// Remove 删除互动记录（评分 / 收藏 / 购物车）
// 删除以受影响行数为准，0 行即记录不存在。
func (s *EngagementService) Remove(userID, productID uint, kind models.EngagementKind) error {
	if !kind.Valid() {
		return ErrKindInvalid
	}
	if err := s.ensureProduct(productID); err != nil {
		return err
	}
	affected, err := s.engagementRepo.Delete(userID, productID, kind)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotInList
	}
	return nil
}

func (s *EngagementService) ensureProduct(productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return nil
}

func existsError(kind models.EngagementKind) error {
	switch kind {
	case models.KindRating:
		return ErrRatingExists
	case models.KindFavorite:
		return ErrFavoriteExists
	default:
		return ErrShoppingCartExists
	}
}
