package startup

import (
	"github.com/cnmd-sb-git/paicoding/internal/repository"
	"github.com/cnmd-sb-git/paicoding/internal/repository/cache"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	"github.com/cnmd-sb-git/paicoding/internal/service"
	"github.com/cnmd-sb-git/paicoding/ioc"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitTestLogger() logger.Logger {
	return logger.NewNopLogger()
}

// InitArticleReadService 手工把读服务的依赖全部装起来，
// 集成测试不经过 Kafka 和 Web 层
func InitArticleReadService(db *gorm.DB, cmd redis.Cmdable) service.ArticleReadService {
	l := InitTestLogger()

	articleRepo := repository.NewArticleRepository(dao.NewGORMArticleDAO(db))
	tagRepo := repository.NewArticleTagRepository(dao.NewGORMArticleTagDAO(db))
	categoryRepo := repository.NewCategoryRepository(
		dao.NewGORMCategoryDAO(db), cache.NewRedisCategoryCache(cmd), l)
	userRepo := repository.NewUserRepository(
		dao.NewGormUserDAO(db), cache.NewRedisUserCache(cmd), l)
	footRepo := repository.NewUserFootRepository(dao.NewGORMUserFootDAO(db))
	countRepo := repository.NewArticleCountRepository(
		dao.NewGORMArticleCountDAO(db), cache.NewRedisArticleCountCache(cmd), l)
	rankingRepo := repository.NewCachedRankingRepository(ioc.InitRankingCache(cmd))

	categorySvc := service.NewCategoryService(categoryRepo)
	userSvc := service.NewUserService(userRepo)
	countSvc := service.NewCountService(countRepo)
	footSvc := service.NewUserFootService(footRepo, userSvc)
	rankingSvc := service.NewBatchRankingService(articleRepo, countSvc, rankingRepo)

	return service.NewArticleReadService(articleRepo, tagRepo,
		categorySvc, userSvc, countSvc, footSvc, rankingSvc, l)
}
