package models

import "time"

// Category 商品分类表
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                 // 主键
	Name      string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"name"`    // 名称
	Slug      string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"slug"`    // 唯一标识
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// SubCategory 商品子分类表
type SubCategory struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (SubCategory) TableName() string {
	return "sub_categories"
}

// ProductType 商品类型表（装机槽位按类型名称匹配，如 CPU / GPU / RAM）
type ProductType struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(32);uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (ProductType) TableName() string {
	return "product_types"
}

// Property 商品特性键表（可跨商品复用，如「容量」）
type Property struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (Property) TableName() string {
	return "properties"
}
