package models

import "time"

// Product 商品表
// 删除为硬删除，事务内级联清理特性值、文章编码与互动记录。
type Product struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                     // 主键
	Name          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`       // 名称（全局唯一）
	Description   string    `gorm:"type:varchar(1000);not null" json:"description"`           // 描述
	Price         int64     `gorm:"not null" json:"price"`                                    // 价格（正整数）
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`                        // 分类ID
	SubCategoryID uint      `gorm:"not null;index" json:"sub_category_id"`                    // 子分类ID
	ProductTypeID uint      `gorm:"not null;index" json:"product_type_id"`                    // 类型ID
	CreatorID     uint      `gorm:"not null;index" json:"creator_id"`                         // 创建者ID
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// 关联
	Category    Category          `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategory SubCategory       `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
	ProductType ProductType       `gorm:"foreignKey:ProductTypeID" json:"product_type,omitempty"`
	Creator     User              `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Article     *Article          `gorm:"foreignKey:ProductID" json:"article,omitempty"`
	Properties  []ProductProperty `gorm:"foreignKey:ProductID" json:"properties,omitempty"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// ProductProperty 商品特性值表
// 同一商品同一特性只允许一条记录，更新商品时整体替换。
type ProductProperty struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	ProductID  uint   `gorm:"not null;uniqueIndex:idx_product_property" json:"product_id"`
	PropertyID uint   `gorm:"not null;uniqueIndex:idx_product_property" json:"property_id"`
	Value      string `gorm:"type:varchar(255);not null" json:"value"`

	Property Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// TableName 指定表名
func (ProductProperty) TableName() string {
	return "product_properties"
}

// Article 商品文章编码表（商品创建时生成一次，之后不再变更）
type Article struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"not null;uniqueIndex" json:"product_id"`
	Code      string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"code"` // 形如 PHO-SMA:100001
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}

// ArticleSequence 文章编码序号表
// 每个前缀一行，事务内以原子自增分配序号，并发创建不会产生重复编码。
type ArticleSequence struct {
	Prefix    string `gorm:"type:varchar(8);primarykey" json:"prefix"`
	NextValue int64  `gorm:"not null" json:"next_value"`
}

// TableName 指定表名
func (ArticleSequence) TableName() string {
	return "article_sequences"
}
