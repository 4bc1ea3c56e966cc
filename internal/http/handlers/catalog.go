package handlers

import (
	"github.com/pcshop-next/internal/http/response"
	"github.com/pcshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCategoryRequest 创建分类 / 子分类请求
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// NameRequest 仅名称的创建请求（类型 / 特性键）
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, categories)
}

// CreateCategory 创建分类（超级用户）
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category, err := h.CatalogService.CreateCategory(service.CreateCategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, category)
}

// UpdateCategory 更新分类（超级用户）
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category, err := h.CatalogService.UpdateCategory(id, service.CreateCategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, category)
}

// DeleteCategory 删除分类（超级用户）
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteCategory(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ListSubCategories 子分类列表
func (h *Handler) ListSubCategories(c *gin.Context) {
	subCategories, err := h.CatalogService.ListSubCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, subCategories)
}

// CreateSubCategory 创建子分类（超级用户）
func (h *Handler) CreateSubCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	subCategory, err := h.CatalogService.CreateSubCategory(service.CreateCategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, subCategory)
}

// UpdateSubCategory 更新子分类（超级用户）
func (h *Handler) UpdateSubCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	subCategory, err := h.CatalogService.UpdateSubCategory(id, service.CreateCategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, subCategory)
}

// DeleteSubCategory 删除子分类（超级用户）
func (h *Handler) DeleteSubCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteSubCategory(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ListProductTypes 商品类型列表
func (h *Handler) ListProductTypes(c *gin.Context) {
	types, err := h.CatalogService.ListProductTypes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, types)
}

// CreateProductType 创建商品类型（超级用户）
func (h *Handler) CreateProductType(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	productType, err := h.CatalogService.CreateProductType(req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, productType)
}

// UpdateProductType 更新商品类型（超级用户）
func (h *Handler) UpdateProductType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	productType, err := h.CatalogService.UpdateProductType(id, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, productType)
}

// DeleteProductType 删除商品类型（超级用户）
func (h *Handler) DeleteProductType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteProductType(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ListProperties 特性键列表
func (h *Handler) ListProperties(c *gin.Context) {
	properties, err := h.CatalogService.ListProperties()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, properties)
}

// CreateProperty 创建特性键（超级用户）
func (h *Handler) CreateProperty(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	property, err := h.CatalogService.CreateProperty(req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, property)
}

// UpdateProperty 更新特性键（超级用户）
func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	property, err := h.CatalogService.UpdateProperty(id, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, property)
}

// DeleteProperty 删除特性键（超级用户）
func (h *Handler) DeleteProperty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteProperty(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
