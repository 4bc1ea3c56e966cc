package handlers

import (
	"github.com/pcshop-next/internal/http/response"
	"github.com/pcshop-next/internal/repository"
	"github.com/pcshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 创建订单请求
// product_ids 为空时按当前购物车内容下单。
type CreateOrderRequest struct {
	ProductIDs []uint `json:"product_ids"`
}

// CreateOrder 创建订单
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderService.Create(service.CreateOrderInput{
		CustomerID: uid,
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(id, uid, isSuperuser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, order)
}

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	filter := repository.OrderListFilter{
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "page_size"),
		CustomerID: queryUint(c, "customer_id"),
	}
	orders, total, err := h.OrderService.List(uid, isSuperuser(c), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKWithPage(c, orders, response.NewPagination(filter.Page, filter.PageSize, total))
}
