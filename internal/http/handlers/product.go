package handlers

import (
	"github.com/pcshop-next/internal/http/response"
	"github.com/pcshop-next/internal/repository"
	"github.com/pcshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyValueRequest 商品特性值请求项
type PropertyValueRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name          string                 `json:"name" binding:"required"`
	Description   string                 `json:"description" binding:"required"`
	Price         int64                  `json:"price" binding:"required"`
	CategoryID    uint                   `json:"category_id" binding:"required"`
	SubCategoryID uint                   `json:"sub_category_id" binding:"required"`
	ProductTypeID uint                   `json:"product_type_id" binding:"required"`
	Properties    []PropertyValueRequest `json:"properties"`
}

// UpdateProductRequest 更新商品请求（缺省字段不变）
type UpdateProductRequest struct {
	Name          *string                 `json:"name"`
	Description   *string                 `json:"description"`
	Price         *int64                  `json:"price"`
	CategoryID    *uint                   `json:"category_id"`
	SubCategoryID *uint                   `json:"sub_category_id"`
	ProductTypeID *uint                   `json:"product_type_id"`
	Properties    *[]PropertyValueRequest `json:"properties"`
}

// ListProducts 商品列表（面向当前用户的视图）
func (h *Handler) ListProducts(c *gin.Context) {
	filter := repository.ProductListFilter{
		Page:          queryInt(c, "page"),
		PageSize:      queryInt(c, "page_size"),
		CategoryID:    queryUint(c, "category_id"),
		SubCategoryID: queryUint(c, "sub_category_id"),
		ProductTypeID: queryUint(c, "product_type_id"),
		TypeName:      c.Query("type"),
		Search:        c.Query("search"),
	}

	views, total, err := h.ViewService.List(c.Request.Context(), optionalUserID(c), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKWithPage(c, views, response.NewPagination(filter.Page, filter.PageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := h.ViewService.Get(c.Request.Context(), optionalUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, view)
}

// CreateProduct 创建商品（超级用户）
func (h *Handler) CreateProduct(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	product, err := h.ProductService.Create(service.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		ProductTypeID: req.ProductTypeID,
		CreatorID:     uid,
		Properties:    propertyInputs(req.Properties),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	view, err := h.ViewService.Get(c.Request.Context(), uid, product.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, view)
}

// UpdateProduct 更新商品（超级用户）
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	input := service.UpdateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		ProductTypeID: req.ProductTypeID,
	}
	if req.Properties != nil {
		props := propertyInputs(*req.Properties)
		input.Properties = &props
	}

	product, err := h.ProductService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	view, err := h.ViewService.Get(c.Request.Context(), optionalUserID(c), product.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, view)
}

// DeleteProduct 删除商品（超级用户）
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func propertyInputs(reqs []PropertyValueRequest) []service.PropertyValueInput {
	inputs := make([]service.PropertyValueInput, 0, len(reqs))
	for _, p := range reqs {
		inputs = append(inputs, service.PropertyValueInput{
			PropertyID: p.PropertyID,
			Value:      p.Value,
		})
	}
	return inputs
}
