package service

import (
	"context"

	"github.com/pcshop-next/internal/cache"
	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"

	"github.com/shopspring/decimal"
)

// PropertyView 特性展示项
type PropertyView struct {
	PropertyID uint   `json:"property_id"`
	Name       string `json:"name"`
	Value      string `json:"value"`
}

// CatalogRefView 目录引用展示项（分类 / 子分类 / 类型）
type CatalogRefView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// CreatorView 创建者公开信息
type CreatorView struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// ProductView 面向请求用户的商品读模型
// 同一商品对不同用户的 is_favorited / is_in_shopping_cart 不同。
type ProductView struct {
	ID               uint           `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Price            int64          `json:"price"`
	Category         CatalogRefView `json:"category"`
	SubCategory      CatalogRefView `json:"sub_category"`
	ProductType      CatalogRefView `json:"product_type"`
	Creator          CreatorView    `json:"creator"`
	Article          string         `json:"article"`
	Properties       []PropertyView `json:"properties"`
	Rating           float64        `json:"rating"`
	IsFavorited      bool           `json:"is_favorited"`
	IsInShoppingCart bool           `json:"is_in_shopping_cart"`
}

// ProductViewService 商品读模型组装服务
// 列表组装全程批量：互动标记、评分均值、特性值各一次往返，避免逐商品查询。
type ProductViewService struct {
	productRepo    repository.ProductRepository
	engagementRepo repository.EngagementRepository
	propertyCache  *cache.PropertyCache
}

// NewProductViewService 创建商品读模型服务
func NewProductViewService(
	productRepo repository.ProductRepository,
	engagementRepo repository.EngagementRepository,
	propertyCache *cache.PropertyCache,
) *ProductViewService {
	return &ProductViewService{
		productRepo:    productRepo,
		engagementRepo: engagementRepo,
		propertyCache:  propertyCache,
	}
}

// List 组装商品列表视图
// userID 为 0 表示匿名请求，互动标记全部为 false。
func (s *ProductViewService) List(ctx context.Context, userID uint, filter repository.ProductListFilter) ([]ProductView, int64, error) {
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.assemble(ctx, userID, products)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// Get 组装单个商品视图
func (s *ProductViewService) Get(ctx context.Context, userID, productID uint) (*ProductView, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	views, err := s.assemble(ctx, userID, []models.Product{*product})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// GetMany 组装一组商品的视图（装机方案嵌套使用）
func (s *ProductViewService) GetMany(ctx context.Context, userID uint, productIDs []uint) (map[uint]ProductView, error) {
	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	views, err := s.assemble(ctx, userID, products)
	if err != nil {
		return nil, err
	}
	result := make(map[uint]ProductView, len(views))
	for _, v := range views {
		result[v.ID] = v
	}
	return result, nil
}

func (s *ProductViewService) assemble(ctx context.Context, userID uint, products []models.Product) ([]ProductView, error) {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	favorites, err := s.engagementRepo.MembershipSet(userID, models.KindFavorite, ids)
	if err != nil {
		return nil, err
	}
	inCart, err := s.engagementRepo.MembershipSet(userID, models.KindShoppingCart, ids)
	if err != nil {
		return nil, err
	}
	averages, err := s.engagementRepo.AverageScores(ids)
	if err != nil {
		return nil, err
	}
	properties, err := s.propertyCache.Load(ctx, ids, s.productRepo.ListPropertiesByProducts)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		view := ProductView{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    CatalogRefView{ID: p.CategoryID, Name: p.Category.Name, Slug: p.Category.Slug},
			SubCategory: CatalogRefView{ID: p.SubCategoryID, Name: p.SubCategory.Name, Slug: p.SubCategory.Slug},
			ProductType: CatalogRefView{ID: p.ProductTypeID, Name: p.ProductType.Name},
			Creator: CreatorView{
				ID:          p.CreatorID,
				Username:    p.Creator.Username,
				Email:       p.Creator.Email,
				FirstName:   p.Creator.FirstName,
				LastName:    p.Creator.LastName,
				PhoneNumber: p.Creator.PhoneNumber,
			},
			Properties:       propertyViews(properties[p.ID]),
			Rating:           roundRating(averages[p.ID]),
			IsFavorited:      favorites[p.ID],
			IsInShoppingCart: inCart[p.ID],
		}
		if p.Article != nil {
			view.Article = p.Article.Code
		}
		views = append(views, view)
	}
	return views, nil
}

func propertyViews(rows []models.ProductProperty) []PropertyView {
	views := make([]PropertyView, 0, len(rows))
	for _, row := range rows {
		views = append(views, PropertyView{
			PropertyID: row.PropertyID,
			Name:       row.Property.Name,
			Value:      row.Value,
		})
	}
	return views
}

// roundRating 评分均值保留两位小数，无评分返回默认值
func roundRating(avg float64) float64 {
	if avg == 0 {
		return constants.DefaultRating
	}
	rounded, _ := decimal.NewFromFloat(avg).Round(2).Float64()
	return rounded
}
