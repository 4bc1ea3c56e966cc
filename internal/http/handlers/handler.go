package handlers

import (
	"github.com/pcshop-next/internal/config"
	"github.com/pcshop-next/internal/service"
)

// Handler HTTP 处理器集合
type Handler struct {
	Config            *config.Config
	UserAuthService   *service.UserAuthService
	ProductService    *service.ProductService
	ViewService       *service.ProductViewService
	EngagementService *service.EngagementService
	PcBuildService    *service.PcBuildService
	CatalogService    *service.CatalogService
	OrderService      *service.OrderService
}
