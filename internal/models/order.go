package models

import "time"

// Order 订单表
// total_price 为下单时各商品价格之和的快照，之后不随商品价格变动。
type Order struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	TotalPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Customer User           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderProduct `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderProduct 订单商品关联表
type OrderProduct struct {
	ID        uint  `gorm:"primarykey" json:"id"`
	OrderID   uint  `gorm:"not null;index" json:"order_id"`
	ProductID uint  `gorm:"not null;index" json:"product_id"`
	Price     int64 `gorm:"not null" json:"price"` // 下单时的商品单价快照

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 指定表名
func (OrderProduct) TableName() string {
	return "order_products"
}
