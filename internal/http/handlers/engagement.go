package handlers

import (
	"github.com/pcshop-next/internal/http/response"
	"github.com/pcshop-next/internal/models"

	"github.com/gin-gonic/gin"
)

// RateProductRequest 评分请求
type RateProductRequest struct {
	Score int16 `json:"score" binding:"required"`
}

// RateProduct 为商品评分
func (h *Handler) RateProduct(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req RateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.EngagementService.Rate(uid, productID, req.Score); err != nil {
		respondServiceError(c, err)
		return
	}
	view, err := h.ViewService.Get(c.Request.Context(), uid, productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, view)
}

// RemoveRating 删除评分
func (h *Handler) RemoveRating(c *gin.Context) {
	h.removeEngagement(c, models.KindRating)
}

// AddFavorite 收藏商品
func (h *Handler) AddFavorite(c *gin.Context) {
	h.addEngagement(c, models.KindFavorite)
}

// RemoveFavorite 取消收藏
func (h *Handler) RemoveFavorite(c *gin.Context) {
	h.removeEngagement(c, models.KindFavorite)
}

// AddToShoppingCart 加入购物车
func (h *Handler) AddToShoppingCart(c *gin.Context) {
	h.addEngagement(c, models.KindShoppingCart)
}

// RemoveFromShoppingCart 移出购物车
func (h *Handler) RemoveFromShoppingCart(c *gin.Context) {
	h.removeEngagement(c, models.KindShoppingCart)
}

func (h *Handler) addEngagement(c *gin.Context, kind models.EngagementKind) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.EngagementService.Add(uid, productID, kind); err != nil {
		respondServiceError(c, err)
		return
	}
	view, err := h.ViewService.Get(c.Request.Context(), uid, productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, view)
}

func (h *Handler) removeEngagement(c *gin.Context, kind models.EngagementKind) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.EngagementService.Remove(uid, productID, kind); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
