package middleware

import (
	"github.com/cnmd-sb-git/paicoding/pkg/ginx"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"strings"
	"time"
)

// VisitorMiddlewareBuilder 解析访问者身份的中间件。
// 阅读侧的接口不要求登录，没带 token 或者 token 不合法
// 都当成匿名访问放行，uid 是 0
type VisitorMiddlewareBuilder struct {
	key []byte
}

func NewVisitorMiddlewareBuilder(key []byte) *VisitorMiddlewareBuilder {
	return &VisitorMiddlewareBuilder{
		key: key,
	}
}

func (v *VisitorMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr := extractToken(ctx)
		if tokenStr == "" {
			ctx.Set("user", ginx.UserClaims{})
			return
		}
		uc := ginx.UserClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, &uc, func(token *jwt.Token) (interface{}, error) {
			return v.key, nil
		})
		if err != nil || !token.Valid {
			ctx.Set("user", ginx.UserClaims{})
			return
		}
		expireTime, err := uc.GetExpirationTime()
		if err != nil || expireTime.Before(time.Now()) {
			ctx.Set("user", ginx.UserClaims{})
			return
		}
		if ctx.GetHeader("User-Agent") != uc.UserAgent {
			// 换了一个 User-Agent，可能是攻击者，当匿名处理
			ctx.Set("user", ginx.UserClaims{})
			return
		}
		ctx.Set("user", uc)
	}
}

func extractToken(ctx *gin.Context) string {
	authCode := ctx.GetHeader("Authorization")
	if authCode == "" {
		return ""
	}
	segs := strings.Split(authCode, " ")
	if len(segs) != 2 || segs[0] != "Bearer" {
		return ""
	}
	return segs[1]
}
