package ginx

import (
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/gin-gonic/gin"
	"net/http"
)

// 用包变量来配置，因为泛型的限制，这里只能用包变量
var log logger.Logger = logger.NewNopLogger()

func SetLogger(l logger.Logger) {
	log = l
}

func Wrap(fn func(*gin.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := fn(ctx)
		if err != nil {
			log.Error("执行业务逻辑失败",
				logger.String("path", ctx.Request.URL.Path),
				logger.Error(err))
		}
		ctx.JSON(http.StatusOK, res)
	}
}

func WrapReq[Req any](fn func(*gin.Context, Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.Bind(&req); err != nil {
			log.Error("解析请求失败", logger.Error(err))
			return
		}
		res, err := fn(ctx, req)
		if err != nil {
			log.Error("执行业务逻辑失败",
				logger.Error(err))
		}
		ctx.JSON(http.StatusOK, res)
	}
}

// WrapClaims 从 ctx 里拿访问者身份。
// 身份中间件保证读接口上一定有 claims，未登录就是零值 claims
func WrapClaims(fn func(*gin.Context, UserClaims) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 注意，这里要求放进去 ctx 的不能是 *UserClaims
		var claims UserClaims
		if rawVal, ok := ctx.Get("user"); ok {
			claims, ok = rawVal.(UserClaims)
			if !ok {
				ctx.AbortWithStatus(http.StatusUnauthorized)
				log.Error("无法获得 claims",
					logger.String("path", ctx.Request.URL.Path))
				return
			}
		}
		res, err := fn(ctx, claims)
		if err != nil {
			log.Error("执行业务逻辑失败",
				logger.Error(err))
		}
		ctx.JSON(http.StatusOK, res)
	}
}

func WrapClaimsAndReq[Req any](fn func(*gin.Context, Req, UserClaims) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.Bind(&req); err != nil {
			log.Error("解析请求失败", logger.Error(err))
			return
		}
		WrapClaims(func(ctx *gin.Context, uc UserClaims) (Result, error) {
			return fn(ctx, req, uc)
		})(ctx)
	}
}
