package main

import (
	"github.com/pcshop-next/internal/config"
	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/logger"
	"github.com/pcshop-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 开发环境种子数据：装机所需的八个商品类型、基础目录与常用特性键。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	if err := seed(models.DB); err != nil {
		stdLog.Fatalf("seed failed: %v", err)
	}
	logger.Infow("seed_completed")
}

func seed(db *gorm.DB) error {
	types := []models.ProductType{
		{Name: constants.TypePcBox},
		{Name: constants.TypePowerSupply},
		{Name: constants.TypeMotherboard},
		{Name: constants.TypeRAM},
		{Name: constants.TypeSSD},
		{Name: constants.TypeHDD},
		{Name: constants.TypeCPU},
		{Name: constants.TypeGPU},
		{Name: "MONITOR"},
		{Name: "KEYBOARD"},
		{Name: "MOUSE"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&types).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Components", Slug: "components"},
		{Name: "Peripherals", Slug: "peripherals"},
		{Name: "Storage", Slug: "storage"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return err
	}

	subCategories := []models.SubCategory{
		{Name: "Processors", Slug: "processors"},
		{Name: "Graphics Cards", Slug: "graphics-cards"},
		{Name: "Memory", Slug: "memory"},
		{Name: "Cases", Slug: "cases"},
		{Name: "Drives", Slug: "drives"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&subCategories).Error; err != nil {
		return err
	}

	properties := []models.Property{
		{Name: "Capacity"},
		{Name: "Clock Speed"},
		{Name: "Cores"},
		{Name: "Wattage"},
		{Name: "Form Factor"},
		{Name: "Warranty"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&properties).Error
}
