package models

import (
	"time"

	"github.com/pcshop-next/internal/constants"
)

// PcBuild 装机方案表
// 八个槽位各引用一个商品，写入前校验商品类型与槽位要求一致。
// 创建后不可变更。
type PcBuild struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	PcBoxID              uint      `gorm:"not null;index" json:"pc_box_id"`
	PowerSupplyID        uint      `gorm:"not null;index" json:"power_supply_id"`
	MotherboardID        uint      `gorm:"not null;index" json:"motherboard_id"`
	RAMMemoryID          uint      `gorm:"not null;index" json:"ram_memory_id"`
	SSDStorageMemoryID   uint      `gorm:"not null;index" json:"ssd_storage_memory_id"`
	HDDStorageMemoryID   uint      `gorm:"not null;index" json:"hdd_storage_memory_id"`
	CPUID                uint      `gorm:"not null;index" json:"cpu_id"`
	GPUID                uint      `gorm:"column:gpu_id;not null;index" json:"gpu_id"`
	CreatedAt            time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (PcBuild) TableName() string {
	return "pc_builds"
}

// SlotProductIDs 返回槽位名到商品 ID 的映射
func (b *PcBuild) SlotProductIDs() map[string]uint {
	return map[string]uint{
		constants.SlotPcBox:            b.PcBoxID,
		constants.SlotPowerSupply:      b.PowerSupplyID,
		constants.SlotMotherboard:      b.MotherboardID,
		constants.SlotRAMMemory:        b.RAMMemoryID,
		constants.SlotSSDStorageMemory: b.SSDStorageMemoryID,
		constants.SlotHDDStorageMemory: b.HDDStorageMemoryID,
		constants.SlotCPU:              b.CPUID,
		constants.SlotGPU:              b.GPUID,
	}
}
