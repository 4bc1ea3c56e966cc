package models

import (
	"strings"

	"github.com/pcshop-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultSuperuser 初始化默认超级用户
// 已存在任意超级用户时跳过。
func InitDefaultSuperuser(email, password string) error {
	var count int64
	DB.Model(&User{}).Where("is_superuser = ?", true).Count(&count)
	if count > 0 {
		return nil
	}

	if email == "" {
		email = "admin@pcshop.local"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	username := strings.SplitN(email, "@", 2)[0]
	user := User{
		Email:        email,
		Username:     username,
		PhoneNumber:  "+70000000000",
		FirstName:    "Admin",
		LastName:     "Admin",
		PasswordHash: string(hash),
		IsActive:     true,
		IsSuperuser:  true,
	}

	if err := DB.Create(&user).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_superuser_created_with_default_password", "email", email)
		logger.Warnw("default_superuser_password_change_required", "email", email)
	} else {
		logger.Warnw("default_superuser_created", "email", email, "password_hidden", true)
	}

	return nil
}
