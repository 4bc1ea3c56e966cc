package handlers

import (
	"strconv"

	"github.com/pcshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 上下文键，由认证中间件写入
const (
	ContextUserID      = "user_id"
	ContextIsSuperuser = "is_superuser"
)

// getUserID 读取当前用户 ID，未登录时直接返回 401
func getUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		response.Unauthorized(c, "authentication required")
		return 0, false
	}
	uid, ok := value.(uint)
	if !ok || uid == 0 {
		response.Unauthorized(c, "authentication required")
		return 0, false
	}
	return uid, true
}

// optionalUserID 读取当前用户 ID，匿名返回 0
func optionalUserID(c *gin.Context) uint {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0
	}
	if uid, ok := value.(uint); ok {
		return uid
	}
	return 0
}

// isSuperuser 当前用户是否为超级用户
func isSuperuser(c *gin.Context) bool {
	value, exists := c.Get(ContextIsSuperuser)
	if !exists {
		return false
	}
	flag, ok := value.(bool)
	return ok && flag
}

// paramID 解析路径中的数字 ID
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// queryInt 解析查询参数中的整数
func queryInt(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// queryUint 解析查询参数中的无符号整数
func queryUint(c *gin.Context, name string) uint {
	return uint(queryInt(c, name))
}
