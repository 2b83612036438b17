package ioc

import (
	"context"
	"fmt"
	"github.com/cnmd-sb-git/paicoding/internal/web"
	"github.com/cnmd-sb-git/paicoding/internal/web/middleware"
	"github.com/cnmd-sb-git/paicoding/pkg/ginx"
	"github.com/cnmd-sb-git/paicoding/pkg/ginx/middleware/accesslog"
	"github.com/cnmd-sb-git/paicoding/pkg/ginx/middleware/metrics"
	"github.com/cnmd-sb-git/paicoding/pkg/ginx/middleware/ratelimit"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"strings"
	"time"
)

func InitWebServer(funcs []gin.HandlerFunc, artHdl *web.ArticleHandler) *gin.Engine {
	server := gin.Default()
	gin.ForceConsoleColor()

	server.Use(funcs...)
	artHdl.RegisterRoutes(server)

	return server
}

func GinMiddlewares(cmd redis.Cmdable, l logger.Logger) []gin.HandlerFunc {
	ginx.SetLogger(l)

	pb := &metrics.PrometheusBuilder{
		Namespace:  "forum_server",
		Subsystem:  "forum",
		Name:       "gin_http",
		InstanceID: "my-instance-1",
		Help:       "GIN 中 HTTP 请求",
	}

	return []gin.HandlerFunc{
		// 限流
		ratelimit.NewBuilder(cmd, time.Minute, 1000).Build(),

		// 跨域
		corsHandler(),

		// prometheus 中间件
		pb.BuildResponseTime(),
		pb.BuildActiveRequest(),

		// 访问者身份，未登录按匿名处理
		middleware.NewVisitorMiddlewareBuilder(jwtKey()).Build(),

		// 访问日志中间件
		accesslog.NewMiddlewareBuilder(func(ctx context.Context, al accesslog.AccessLog) {
			l.Debug("GIN 收到请求", logger.Field{
				Key:   "req",
				Value: al,
			})
		}).Build(),
	}
}

func jwtKey() []byte {
	type Config struct {
		Key string `yaml:"key"`
	}
	c := Config{
		Key: "k6CswdUm77WKcbM68UQUuxVsHSpTCwgA",
	}
	err := viper.UnmarshalKey("jwt", &c)
	if err != nil {
		panic(fmt.Errorf("初始化配置失败 %v, 原因 %w", c, err))
	}
	return []byte(c.Key)
}

func corsHandler() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Jwt-Token"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "paicoding.com")
		},
		MaxAge: 12 * time.Hour,
	})
}
