package service

import (
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单业务服务
type OrderService struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	engagementRepo repository.EngagementRepository
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	engagementRepo repository.EngagementRepository,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		engagementRepo: engagementRepo,
	}
}

// CreateOrderInput 创建订单输入
// ProductIDs 为空时回退到用户购物车内容。
type CreateOrderInput struct {
	CustomerID uint
	ProductIDs []uint
}

// Create 创建订单
// 总价与单价在下单时定格为快照，之后不随商品价格变动。
// 由购物车下单时，事务内清空购物车。
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	fromCart := len(input.ProductIDs) == 0
	productIDs := input.ProductIDs
	if fromCart {
		ids, err := s.engagementRepo.ListProductIDs(input.CustomerID, models.KindShoppingCart)
		if err != nil {
			return nil, err
		}
		productIDs = ids
	}
	productIDs = uniqueIDs(productIDs)
	if len(productIDs) == 0 {
		return nil, ErrOrderEmpty
	}

	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	if len(products) != len(productIDs) {
		return nil, ErrProductNotFound
	}

	total := decimal.Zero
	items := make([]models.OrderProduct, 0, len(products))
	for _, p := range products {
		total = total.Add(decimal.NewFromInt(p.Price))
		items = append(items, models.OrderProduct{
			ProductID: p.ID,
			Price:     p.Price,
		})
	}

	order := &models.Order{
		CustomerID: input.CustomerID,
		TotalPrice: models.NewMoneyFromDecimal(total),
		Items:      items,
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		if fromCart {
			engagementTx := s.engagementRepo.WithTx(tx)
			for _, id := range productIDs {
				if _, err := engagementTx.Delete(input.CustomerID, id, models.KindShoppingCart); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// Get 获取订单
// 非超级用户只能查看自己的订单。
func (s *OrderService) Get(id, requesterID uint, isSuperuser bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !isSuperuser && order.CustomerID != requesterID {
		return nil, ErrPermissionDenied
	}
	return order, nil
}

// List 订单列表
// 非超级用户强制过滤到本人订单。
func (s *OrderService) List(requesterID uint, isSuperuser bool, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if !isSuperuser {
		filter.CustomerID = requesterID
	}
	return s.orderRepo.List(filter)
}
