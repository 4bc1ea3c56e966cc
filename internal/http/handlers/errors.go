package handlers

import (
	"errors"

	"github.com/pcshop-next/internal/http/response"
	"github.com/pcshop-next/internal/logger"
	"github.com/pcshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError 将业务错误映射为 HTTP 状态码
// 校验错误带字段明细返回 400，唯一约束冲突统一 409。
func respondServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		response.ErrorWithData(c, 400, "validation failed", gin.H{"fields": verr.Fields})
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrProductNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrRatingExists),
		errors.Is(err, service.ErrFavoriteExists),
		errors.Is(err, service.ErrShoppingCartExists),
		errors.Is(err, service.ErrProductNameExists),
		errors.Is(err, service.ErrCategoryNameExists),
		errors.Is(err, service.ErrCategorySlugExists),
		errors.Is(err, service.ErrTypeNameExists),
		errors.Is(err, service.ErrPropertyNameExists),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrPhoneExists),
		errors.Is(err, service.ErrCategoryInUse):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrNotInList),
		errors.Is(err, service.ErrScoreInvalid),
		errors.Is(err, service.ErrKindInvalid),
		errors.Is(err, service.ErrOrderEmpty):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUserDisabled),
		errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, err.Error())
	default:
		logger.Errorw("request_failed",
			"path", c.FullPath(),
			"method", c.Request.Method,
			"error", err,
		)
		response.InternalError(c, "internal error")
	}
}
