//go:build wireinject

package main

import (
	eventsArticle "github.com/cnmd-sb-git/paicoding/internal/events/article"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
	"github.com/cnmd-sb-git/paicoding/internal/repository/cache"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	"github.com/cnmd-sb-git/paicoding/internal/service"
	"github.com/cnmd-sb-git/paicoding/internal/web"
	"github.com/cnmd-sb-git/paicoding/ioc"
	"github.com/google/wire"
)

// 第三方依赖
var thirdProvider = wire.NewSet(
	ioc.InitDB,
	ioc.InitRedis,
	ioc.InitLogger,
	ioc.InitKafka,
	ioc.NewSyncProducer,
)

var rankServiceProvider = wire.NewSet(
	service.NewBatchRankingService,
	repository.NewCachedRankingRepository,
	ioc.InitRankingCache,
)

func InitApp() *App {
	wire.Build(
		thirdProvider,

		// cron 部分
		rankServiceProvider,
		ioc.InitJobs,
		ioc.InitRankingJob,

		// DAO 部分
		dao.NewGORMArticleDAO,
		dao.NewGORMArticleTagDAO,
		dao.NewGORMCategoryDAO,
		dao.NewGormUserDAO,
		dao.NewGORMUserFootDAO,
		dao.NewGORMArticleCountDAO,

		// Cache 部分
		cache.NewRedisUserCache,
		cache.NewRedisCategoryCache,
		cache.NewRedisArticleCountCache,

		// repository 部分
		repository.NewArticleRepository,
		repository.NewArticleTagRepository,
		repository.NewCategoryRepository,
		repository.NewUserRepository,
		repository.NewUserFootRepository,
		repository.NewArticleCountRepository,

		// events 部分
		eventsArticle.NewKafkaProducer,
		eventsArticle.NewReadEventBatchConsumer,
		ioc.NewConsumers,

		// service 部分
		service.NewCategoryService,
		service.NewUserService,
		service.NewCountService,
		service.NewUserFootService,
		service.NewArticleReadService,

		// handler 部分
		web.NewArticleHandler,

		// gin 的中间件
		ioc.GinMiddlewares,

		// Web 服务器
		ioc.InitWebServer,

		wire.Struct(new(App), "*"),
	)

	return new(App)
}
