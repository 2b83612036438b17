package main

import (
	"fmt"
	eventsArticle "github.com/cnmd-sb-git/paicoding/internal/events/article"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
	"github.com/cnmd-sb-git/paicoding/internal/repository/cache"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	"github.com/cnmd-sb-git/paicoding/internal/service"
	"github.com/cnmd-sb-git/paicoding/internal/web"
	"github.com/cnmd-sb-git/paicoding/ioc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	initViper()

	app := initApp()

	// 消费者先起来，避免 Web 先挂出去之后事件没人消费
	for _, c := range app.consumers {
		err := c.Start()
		if err != nil {
			panic(err)
		}
	}

	app.cron.Start()
	defer func() {
		// 等正在执行的任务结束
		<-app.cron.Stop().Done()
	}()

	err := app.web.Run(":8080")
	if err != nil {
		panic(err)
	}
}

func initViper() {
	cfile := pflag.String("config", "config/dev.yaml", "配置文件路径")
	pflag.Parse()
	viper.SetConfigFile(*cfile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("读取配置失败 %w", err))
	}
}

func initApp() *App {
	l := ioc.InitLogger()
	db := ioc.InitDB(l)
	cmd := ioc.InitRedis()
	kafkaClient := ioc.InitKafka()
	producer := ioc.NewSyncProducer(kafkaClient)

	articleDAO := dao.NewGORMArticleDAO(db)
	tagDAO := dao.NewGORMArticleTagDAO(db)
	categoryDAO := dao.NewGORMCategoryDAO(db)
	userDAO := dao.NewGormUserDAO(db)
	footDAO := dao.NewGORMUserFootDAO(db)
	countDAO := dao.NewGORMArticleCountDAO(db)

	articleRepo := repository.NewArticleRepository(articleDAO)
	tagRepo := repository.NewArticleTagRepository(tagDAO)
	categoryRepo := repository.NewCategoryRepository(categoryDAO, cache.NewRedisCategoryCache(cmd), l)
	userRepo := repository.NewUserRepository(userDAO, cache.NewRedisUserCache(cmd), l)
	footRepo := repository.NewUserFootRepository(footDAO)
	countRepo := repository.NewArticleCountRepository(countDAO, cache.NewRedisArticleCountCache(cmd), l)
	rankingRepo := repository.NewCachedRankingRepository(ioc.InitRankingCache(cmd))

	categorySvc := service.NewCategoryService(categoryRepo)
	userSvc := service.NewUserService(userRepo)
	countSvc := service.NewCountService(countRepo)
	footSvc := service.NewUserFootService(footRepo, userSvc)
	rankingSvc := service.NewBatchRankingService(articleRepo, countSvc, rankingRepo)
	readSvc := service.NewArticleReadService(articleRepo, tagRepo,
		categorySvc, userSvc, countSvc, footSvc, rankingSvc, l)

	artHdl := web.NewArticleHandler(readSvc, eventsArticle.NewKafkaProducer(producer), l)
	server := ioc.InitWebServer(ioc.GinMiddlewares(cmd, l), artHdl)

	consumer := eventsArticle.NewReadEventBatchConsumer(kafkaClient, l, countRepo)
	rankingJob := ioc.InitRankingJob(rankingSvc)

	return &App{
		web:       server,
		consumers: ioc.NewConsumers(consumer),
		cron:      ioc.InitJobs(l, rankingJob),
	}
}
