package middleware

import (
	"strings"

	"admin-panel-server/internal/modules/common/httpx"
	"admin-panel-server/internal/platform/service"
	"admin-panel-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth 校验 Bearer 运维令牌，并把 subject 与 admin 标记写入上下文
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpx.WriteServiceError(c, service.NewUnauthorizedError("需要认证才能访问"), "")
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.WriteServiceError(c, service.NewUnauthorizedError("Token 格式错误"), "")
			c.Abort()
			return
		}

		claims, err := utils.ParseOperatorToken(secret, parts[1])
		if err != nil {
			httpx.WriteServiceError(c, service.NewUnauthorizedError("Token 无效或已过期"), "")
			c.Abort()
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("admin", claims.Admin)
		c.Next()
	}
}

func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get("admin")
		isAdmin, ok := value.(bool)
		if !exist || !ok || !isAdmin {
			httpx.WriteServiceError(c, service.NewForbiddenError("需要管理员权限才能访问"), "")
			c.Abort()
			return
		}
		c.Next()
	}
}
