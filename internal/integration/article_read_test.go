//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/integration/startup"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ArticleReadServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	rdb redis.Cmdable
}

func TestArticleReadService(t *testing.T) {
	suite.Run(t, new(ArticleReadServiceTestSuite))
}

func (s *ArticleReadServiceTestSuite) SetupSuite() {
	s.db = startup.InitTestDB()
	s.rdb = startup.InitTestRedis()
}

func (s *ArticleReadServiceTestSuite) TearDownTest() {
	for _, table := range []string{
		"articles", "article_tags", "tags",
		"categories", "users", "user_foots", "article_counts",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
	err := s.rdb.FlushDB(context.Background()).Err()
	require.NoError(s.T(), err)
}

func (s *ArticleReadServiceTestSuite) TestGetTotal() {
	t := s.T()
	now := time.Now().UnixMilli()

	require.NoError(t, s.db.Create(&dao.Category{
		Id: 1, CategoryName: "后端", Status: 1, Ctime: now, Utime: now,
	}).Error)
	require.NoError(t, s.db.Create(&dao.User{
		Id: 10, NickName: "一灰", Ctime: now, Utime: now,
	}).Error)
	require.NoError(t, s.db.Create(&dao.Article{
		Id: 1, Title: "测试标题", Content: "测试内容",
		AuthorId: 10, CategoryId: 1, Status: 2, ReadCnt: 5,
		Ctime: now, Utime: now,
	}).Error)

	svc := startup.InitArticleReadService(s.db, s.rdb)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	// 登录用户访问，阅读数 +1，落足迹
	view, err := svc.GetTotal(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, "后端", view.CategoryName)
	assert.Equal(t, "一灰", view.AuthorName)
	assert.Equal(t, int64(6), view.ReadCnt)
	assert.False(t, view.Praised)

	var foot dao.UserFoot
	err = s.db.Where("user_id = ? AND document_id = ?", 20, 1).First(&foot).Error
	require.NoError(t, err)
	assert.Equal(t, uint8(1), foot.ReadStat)

	// 匿名访问，阅读数照加，但是不落足迹
	view, err = svc.GetTotal(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), view.ReadCnt)
	var cnt int64
	err = s.db.Model(&dao.UserFoot{}).
		Where("user_id = ?", 0).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func (s *ArticleReadServiceTestSuite) TestReadHistoryOrder() {
	t := s.T()
	now := time.Now().UnixMilli()

	for i := int64(1); i <= 3; i++ {
		require.NoError(t, s.db.Create(&dao.Article{
			Id: i, Title: "文章", AuthorId: 10, CategoryId: 1,
			Status: 2, Ctime: now, Utime: now,
		}).Error)
	}
	svc := startup.InitArticleReadService(s.db, s.rdb)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	// 按 2, 3, 1 的顺序阅读
	for i, aid := range []int64{2, 3, 1} {
		_, err := svc.GetTotal(ctx, aid, 20)
		require.NoError(t, err)
		// 拉开 utime，保证足迹顺序稳定
		err = s.db.Model(&dao.UserFoot{}).
			Where("user_id = ? AND document_id = ?", 20, aid).
			Update("utime", now+int64(i)*1000).Error
		require.NoError(t, err)
	}

	res, err := svc.ListByUserAndSelection(ctx, 20,
		domain.NewPageParam(1, 10), domain.HomeSelectRead)
	require.NoError(t, err)
	require.Len(t, res.List, 3)
	// 最近读的排最前
	assert.Equal(t, int64(1), res.List[0].Id)
	assert.Equal(t, int64(3), res.List[1].Id)
	assert.Equal(t, int64(2), res.List[2].Id)
}
