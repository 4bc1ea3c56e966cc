package models

import "time"

// User 商城用户表
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`                                // 主键
	Email        string     `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"` // 邮箱（登录名）
	Username     string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	PhoneNumber  string     `gorm:"type:varchar(15);uniqueIndex;not null" json:"phone_number"`
	FirstName    string     `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(150);not null" json:"last_name"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	IsSuperuser  bool       `gorm:"default:false" json:"is_superuser"` // 超级用户可维护目录数据
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
