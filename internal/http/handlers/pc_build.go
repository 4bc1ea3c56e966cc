package handlers

import (
	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/http/response"
	"github.com/pcshop-next/internal/repository"
	"github.com/pcshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreatePcBuildRequest 创建装机方案请求
type CreatePcBuildRequest struct {
	PcBoxID            uint `json:"pc_box_id" binding:"required"`
	PowerSupplyID      uint `json:"power_supply_id" binding:"required"`
	MotherboardID      uint `json:"motherboard_id" binding:"required"`
	RAMMemoryID        uint `json:"ram_memory_id" binding:"required"`
	SSDStorageMemoryID uint `json:"ssd_storage_memory_id" binding:"required"`
	HDDStorageMemoryID uint `json:"hdd_storage_memory_id" binding:"required"`
	CPUID              uint `json:"cpu_id" binding:"required"`
	GPUID              uint `json:"gpu_id" binding:"required"`
}

// CreatePcBuild 创建装机方案
// 写入权限由 catalog.pc_build_write_policy 决定。
func (h *Handler) CreatePcBuild(c *gin.Context) {
	switch h.Config.Catalog.NormalizedPcBuildWritePolicy() {
	case constants.PcBuildWriteAuthenticated:
		if _, ok := getUserID(c); !ok {
			return
		}
	case constants.PcBuildWriteSuperuser:
		if _, ok := getUserID(c); !ok {
			return
		}
		if !isSuperuser(c) {
			response.Forbidden(c, "superuser required")
			return
		}
	}

	var req CreatePcBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.PcBuildService.Create(c.Request.Context(), optionalUserID(c), service.CreatePcBuildInput{
		PcBoxID:            req.PcBoxID,
		PowerSupplyID:      req.PowerSupplyID,
		MotherboardID:      req.MotherboardID,
		RAMMemoryID:        req.RAMMemoryID,
		SSDStorageMemoryID: req.SSDStorageMemoryID,
		HDDStorageMemoryID: req.HDDStorageMemoryID,
		CPUID:              req.CPUID,
		GPUID:              req.GPUID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, view)
}

// GetPcBuild 装机方案详情
func (h *Handler) GetPcBuild(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := h.PcBuildService.Get(c.Request.Context(), optionalUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, view)
}

// ListPcBuilds 装机方案列表
func (h *Handler) ListPcBuilds(c *gin.Context) {
	filter := repository.PcBuildListFilter{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	views, total, err := h.PcBuildService.List(c.Request.Context(), optionalUserID(c), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKWithPage(c, views, response.NewPagination(filter.Page, filter.PageSize, total))
}

// DeletePcBuild 删除装机方案（超级用户）
func (h *Handler) DeletePcBuild(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.PcBuildService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
