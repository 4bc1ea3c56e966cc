package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/pcshop-next/internal/authz"
	"github.com/pcshop-next/internal/config"
	"github.com/pcshop-next/internal/http/handlers"
	"github.com/pcshop-next/internal/http/response"
	"github.com/pcshop-next/internal/logger"
	"github.com/pcshop-next/internal/repository"
	"github.com/pcshop-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// parseBearerClaims 解析 Authorization 头中的 JWT，失败返回 nil
func parseBearerClaims(c *gin.Context, secretKey string) *service.JWTClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || secretKey == "" {
		return nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return nil
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &service.JWTClaims{}
	token, err := parser.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil
	}
	return claims
}

// JWTAuthMiddleware 强制 JWT 鉴权
// 解析成功后回查用户，禁用账户直接拒绝。
func JWTAuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := parseBearerClaims(c, secretKey)
		if claims == nil {
			response.Unauthorized(c, "invalid or missing token")
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil || user == nil {
			response.Unauthorized(c, "invalid or missing token")
			c.Abort()
			return
		}
		if !user.IsActive {
			response.Forbidden(c, "user account disabled")
			c.Abort()
			return
		}

		c.Set(handlers.ContextUserID, user.ID)
		c.Set(handlers.ContextIsSuperuser, user.IsSuperuser)
		c.Next()
	}
}

// OptionalJWTAuthMiddleware 可选 JWT 鉴权
// 带合法 token 的请求注入用户身份，匿名请求照常放行。
// 商品视图的 is_favorited / is_in_shopping_cart 依赖这里注入的身份。
func OptionalJWTAuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := parseBearerClaims(c, secretKey)
		if claims == nil {
			c.Next()
			return
		}
		user, err := userRepo.GetByID(claims.UserID)
		if err != nil || user == nil || !user.IsActive {
			c.Next()
			return
		}
		c.Set(handlers.ContextUserID, user.ID)
		c.Set(handlers.ContextIsSuperuser, user.IsSuperuser)
		c.Next()
	}
}

// AuthzMiddleware 基于角色策略的访问控制
// 匿名请求直接放行，身份由前置的 JWT 中间件注入。
func AuthzMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(handlers.ContextUserID)
		if !exists {
			c.Next()
			return
		}
		if _, ok := value.(uint); !ok {
			c.Next()
			return
		}

		role := authz.RoleCustomer
		if flag, ok := c.Get(handlers.ContextIsSuperuser); ok {
			if isSuper, ok := flag.(bool); ok && isSuper {
				role = authz.RoleSuperuser
			}
		}

		allowed, err := authzService.Enforce(role, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			logger.Errorw("authz_enforce_failed",
				"request_id", getRequestID(c),
				"path", c.Request.URL.Path,
				"error", err,
			)
			response.InternalError(c, "authorization check failed")
			c.Abort()
			return
		}
		if !allowed {
			response.Forbidden(c, "permission denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperuserMiddleware 仅超级用户可访问
func RequireSuperuserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(handlers.ContextIsSuperuser)
		flag, ok := value.(bool)
		if !exists || !ok || !flag {
			response.Forbidden(c, "superuser required")
			c.Abort()
			return
		}
		c.Next()
	}
}
