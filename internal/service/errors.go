package service

import "errors"

// 业务哨兵错误，handler 层用 errors.Is 映射到 HTTP 状态码。
var (
	ErrNotFound        = errors.New("record not found")
	ErrProductNotFound = errors.New("product not found")

	// 互动：重复写入由唯一索引拦截后转换
	ErrRatingExists       = errors.New("product already rated by user")
	ErrFavoriteExists     = errors.New("product already in favorites")
	ErrShoppingCartExists = errors.New("product already in shopping cart")
	ErrNotInList          = errors.New("product not in list")
	ErrScoreInvalid       = errors.New("score out of range")
	ErrKindInvalid        = errors.New("unknown engagement kind")

	// 目录
	ErrProductNameExists  = errors.New("product name already exists")
	ErrCategoryNameExists = errors.New("category name already exists")
	ErrCategorySlugExists = errors.New("category slug already exists")
	ErrTypeNameExists     = errors.New("product type name already exists")
	ErrPropertyNameExists = errors.New("property name already exists")
	ErrCategoryInUse      = errors.New("category still referenced by products")

	// 用户
	ErrEmailExists        = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already taken")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDisabled       = errors.New("user account disabled")
	ErrPermissionDenied   = errors.New("permission denied")

	// 订单
	ErrOrderEmpty = errors.New("order has no products")
)
