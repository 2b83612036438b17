package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
	repomocks "github.com/cnmd-sb-git/paicoding/internal/repository/mocks"
	svcmocks "github.com/cnmd-sb-git/paicoding/internal/service/mocks"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSortByIds(t *testing.T) {
	arts := []domain.Article{
		{Id: 1, Title: "一"},
		{Id: 2, Title: "二"},
		{Id: 3, Title: "三"},
	}
	testCases := []struct {
		name string
		ids  []int64
		arts []domain.Article

		wantIds []int64
	}{
		{
			name:    "按 ids 顺序重排",
			ids:     []int64{3, 1, 2},
			arts:    arts,
			wantIds: []int64{3, 1, 2},
		},
		{
			// 被删掉的文章在 ids 里但是查不出来，直接跳过
			name:    "ids 里有查不到的文章",
			ids:     []int64{3, 9, 1, 2},
			arts:    arts,
			wantIds: []int64{3, 1, 2},
		},
		{
			name:    "查出来的结果为空",
			ids:     []int64{1, 2},
			arts:    []domain.Article{},
			wantIds: []int64{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := sortByIds(tc.ids, tc.arts)
			resIds := make([]int64, 0, len(res))
			for _, art := range res {
				resIds = append(resIds, art.Id)
			}
			assert.Equal(t, tc.wantIds, resIds)
		})
	}
}

func TestArticleReadService_GetTotal(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	art := domain.Article{
		Id:      1,
		Title:   "测试标题",
		Content: "测试内容",
		Author:  domain.Author{Id: 10},
		Status:  domain.ArticleStatusPublished,
		ReadCnt: 5,
		Ctime:   now,
		Utime:   now,
	}

	testCases := []struct {
		name     string
		viewerId int64
		mock     func(ctrl *gomock.Controller) (repository.ArticleRepository,
			repository.ArticleTagRepository, CategoryService,
			UserService, CountService, UserFootService)

		wantView domain.ArticleView
		wantErr  error
	}{
		{
			name:     "登录用户，落足迹带状态",
			viewerId: 20,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository,
				repository.ArticleTagRepository, CategoryService,
				UserService, CountService, UserFootService) {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(art, nil)
				repo.EXPECT().IncrReadCnt(gomock.Any(), int64(1)).Return(nil)
				tagRepo := repomocks.NewMockArticleTagRepository(ctrl)
				tagRepo.EXPECT().ListDetailsByArticleId(gomock.Any(), int64(1)).
					Return([]domain.TagDetail{{Id: 7, Name: "Go"}}, nil)
				categorySvc := svcmocks.NewMockCategoryService(ctrl)
				categorySvc.EXPECT().Name(gomock.Any(), int64(0)).Return("后端", nil)
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().BasicProfile(gomock.Any(), int64(10)).
					Return(domain.User{Id: 10, NickName: "一灰"}, nil)
				countSvc := svcmocks.NewMockCountService(ctrl)
				countSvc.EXPECT().ArticleCount(gomock.Any(), int64(1)).
					Return(domain.ArticleCount{ReadCnt: 6, PraiseCnt: 2}, nil)
				footSvc := svcmocks.NewMockUserFootService(ctrl)
				footSvc.EXPECT().PraisedUsers(gomock.Any(), int64(1)).
					Return([]domain.SimpleUser{{Id: 30, Name: "路人"}}, nil)
				footSvc.EXPECT().SaveRead(gomock.Any(), int64(1), int64(10), int64(20)).
					Return(domain.UserFoot{
						UserId:     20,
						DocumentId: 1,
						ReadStat:   1,
						PraiseStat: 1,
					}, nil)
				return repo, tagRepo, categorySvc, userSvc, countSvc, footSvc
			},
			wantView: func() domain.ArticleView {
				a := art
				a.ReadCnt = 6
				return domain.ArticleView{
					Article:      a,
					CategoryName: "后端",
					Tags:         []domain.TagDetail{{Id: 7, Name: "Go"}},
					AuthorName:   "一灰",
					Count:        domain.ArticleCount{ReadCnt: 6, PraiseCnt: 2},
					Praised:      true,
					PraisedUsers: []domain.SimpleUser{{Id: 30, Name: "路人"}},
				}
			}(),
		},
		{
			name:     "匿名访问，不落足迹",
			viewerId: 0,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository,
				repository.ArticleTagRepository, CategoryService,
				UserService, CountService, UserFootService) {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(art, nil)
				// 匿名也算一次阅读
				repo.EXPECT().IncrReadCnt(gomock.Any(), int64(1)).Return(nil)
				tagRepo := repomocks.NewMockArticleTagRepository(ctrl)
				tagRepo.EXPECT().ListDetailsByArticleId(gomock.Any(), int64(1)).
					Return([]domain.TagDetail{}, nil)
				categorySvc := svcmocks.NewMockCategoryService(ctrl)
				categorySvc.EXPECT().Name(gomock.Any(), int64(0)).Return("后端", nil)
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().BasicProfile(gomock.Any(), int64(10)).
					Return(domain.User{Id: 10, NickName: "一灰"}, nil)
				countSvc := svcmocks.NewMockCountService(ctrl)
				countSvc.EXPECT().ArticleCount(gomock.Any(), int64(1)).
					Return(domain.ArticleCount{ReadCnt: 6}, nil)
				footSvc := svcmocks.NewMockUserFootService(ctrl)
				// 点赞用户列表匿名也要带
				footSvc.EXPECT().PraisedUsers(gomock.Any(), int64(1)).
					Return([]domain.SimpleUser{{Id: 30, Name: "路人"}}, nil)
				return repo, tagRepo, categorySvc, userSvc, countSvc, footSvc
			},
			wantView: func() domain.ArticleView {
				a := art
				a.ReadCnt = 6
				return domain.ArticleView{
					Article:      a,
					CategoryName: "后端",
					Tags:         []domain.TagDetail{},
					AuthorName:   "一灰",
					Count:        domain.ArticleCount{ReadCnt: 6},
					PraisedUsers: []domain.SimpleUser{{Id: 30, Name: "路人"}},
				}
			}(),
		},
		{
			name:     "文章不存在",
			viewerId: 20,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository,
				repository.ArticleTagRepository, CategoryService,
				UserService, CountService, UserFootService) {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).
					Return(domain.Article{}, repository.ErrArticleNotFound)
				return repo, repomocks.NewMockArticleTagRepository(ctrl),
					svcmocks.NewMockCategoryService(ctrl),
					svcmocks.NewMockUserService(ctrl),
					svcmocks.NewMockCountService(ctrl),
					svcmocks.NewMockUserFootService(ctrl)
			},
			wantErr: repository.ErrArticleNotFound,
		},
		{
			name:     "阅读计数失败",
			viewerId: 20,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository,
				repository.ArticleTagRepository, CategoryService,
				UserService, CountService, UserFootService) {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().GetById(gomock.Any(), int64(1)).Return(art, nil)
				repo.EXPECT().IncrReadCnt(gomock.Any(), int64(1)).
					Return(errors.New("db 崩了"))
				tagRepo := repomocks.NewMockArticleTagRepository(ctrl)
				tagRepo.EXPECT().ListDetailsByArticleId(gomock.Any(), int64(1)).
					Return([]domain.TagDetail{}, nil)
				categorySvc := svcmocks.NewMockCategoryService(ctrl)
				categorySvc.EXPECT().Name(gomock.Any(), int64(0)).Return("后端", nil)
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().BasicProfile(gomock.Any(), int64(10)).
					Return(domain.User{Id: 10, NickName: "一灰"}, nil)
				return repo, tagRepo, categorySvc, userSvc,
					svcmocks.NewMockCountService(ctrl),
					svcmocks.NewMockUserFootService(ctrl)
			},
			wantErr: errors.New("db 崩了"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, tagRepo, categorySvc, userSvc, countSvc, footSvc := tc.mock(ctrl)
			svc := NewArticleReadService(repo, tagRepo, categorySvc, userSvc,
				countSvc, footSvc, svcmocks.NewMockRankingService(ctrl),
				logger.NewNopLogger())
			view, err := svc.GetTotal(context.Background(), 1, tc.viewerId)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantView, view)
		})
	}
}

func TestArticleReadService_ListByUserAndSelection(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	page := domain.NewPageParam(1, 10)

	testCases := []struct {
		name string
		sel  domain.HomeSelect
		mock func(ctrl *gomock.Controller) (repository.ArticleRepository,
			repository.ArticleTagRepository,
			UserFootService, CountService, UserService, CategoryService)

		wantIds  []int64
		wantErr  error
		wantMore bool
	}{
		{
			name: "阅读历史保持足迹顺序",
			sel:  domain.HomeSelectRead,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository,
				repository.ArticleTagRepository,
				UserFootService, CountService, UserService, CategoryService) {
				footSvc := svcmocks.NewMockUserFootService(ctrl)
				footSvc.EXPECT().ReadArticleIds(gomock.Any(), int64(20), page).
					Return([]int64{3, 1, 2}, nil)
				repo := repomocks.NewMockArticleRepository(ctrl)
				// IN 查询回来是乱序的
				repo.EXPECT().ListByIds(gomock.Any(), []int64{3, 1, 2}).
					Return([]domain.Article{
						{Id: 1, Author: domain.Author{Id: 10}, Ctime: now, Utime: now},
						{Id: 2, Author: domain.Author{Id: 10}, Ctime: now, Utime: now},
						{Id: 3, Author: domain.Author{Id: 10}, Ctime: now, Utime: now},
					}, nil)
				tagRepo := repomocks.NewMockArticleTagRepository(ctrl)
				for _, id := range []int64{3, 1, 2} {
					tagRepo.EXPECT().ListDetailsByArticleId(gomock.Any(), id).
						Return([]domain.TagDetail{}, nil)
				}
				countSvc := svcmocks.NewMockCountService(ctrl)
				countSvc.EXPECT().ArticleCounts(gomock.Any(), []int64{3, 1, 2}).
					Return(map[int64]domain.ArticleCount{}, nil)
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().BasicProfiles(gomock.Any(), []int64{10, 10, 10}).
					Return([]domain.SimpleUser{{Id: 10, Name: "一灰"}}, nil)
				categorySvc := svcmocks.NewMockCategoryService(ctrl)
				categorySvc.EXPECT().Name(gomock.Any(), int64(0)).
					Return("后端", nil).Times(3)
				return repo, tagRepo, footSvc, countSvc, userSvc, categorySvc
			},
			wantIds: []int64{3, 1, 2},
		},
		{
			name: "阅读历史为空直接返回空页",
			sel:  domain.HomeSelectRead,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository,
				repository.ArticleTagRepository,
				UserFootService, CountService, UserService, CategoryService) {
				footSvc := svcmocks.NewMockUserFootService(ctrl)
				footSvc.EXPECT().ReadArticleIds(gomock.Any(), int64(20), page).
					Return([]int64{}, nil)
				return repomocks.NewMockArticleRepository(ctrl),
					repomocks.NewMockArticleTagRepository(ctrl), footSvc,
					svcmocks.NewMockCountService(ctrl),
					svcmocks.NewMockUserService(ctrl),
					svcmocks.NewMockCategoryService(ctrl)
			},
			wantIds: []int64{},
		},
		{
			name: "收藏列表",
			sel:  domain.HomeSelectCollection,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository,
				repository.ArticleTagRepository,
				UserFootService, CountService, UserService, CategoryService) {
				footSvc := svcmocks.NewMockUserFootService(ctrl)
				footSvc.EXPECT().CollectionArticleIds(gomock.Any(), int64(20), page).
					Return([]int64{2}, nil)
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().ListByIds(gomock.Any(), []int64{2}).
					Return([]domain.Article{
						{Id: 2, Author: domain.Author{Id: 10}, Ctime: now, Utime: now},
					}, nil)
				tagRepo := repomocks.NewMockArticleTagRepository(ctrl)
				tagRepo.EXPECT().ListDetailsByArticleId(gomock.Any(), int64(2)).
					Return([]domain.TagDetail{}, nil)
				countSvc := svcmocks.NewMockCountService(ctrl)
				countSvc.EXPECT().ArticleCounts(gomock.Any(), []int64{2}).
					Return(map[int64]domain.ArticleCount{}, nil)
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().BasicProfiles(gomock.Any(), []int64{10}).
					Return([]domain.SimpleUser{{Id: 10, Name: "一灰"}}, nil)
				categorySvc := svcmocks.NewMockCategoryService(ctrl)
				categorySvc.EXPECT().Name(gomock.Any(), int64(0)).Return("后端", nil)
				return repo, tagRepo, footSvc, countSvc, userSvc, categorySvc
			},
			wantIds: []int64{2},
		},
		{
			name: "默认查作者发表的文章",
			sel:  domain.HomeSelectArticle,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository,
				repository.ArticleTagRepository,
				UserFootService, CountService, UserService, CategoryService) {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().ListByAuthor(gomock.Any(), int64(20), page).
					Return([]domain.Article{
						{Id: 5, Author: domain.Author{Id: 20}, Ctime: now, Utime: now},
					}, nil)
				tagRepo := repomocks.NewMockArticleTagRepository(ctrl)
				tagRepo.EXPECT().ListDetailsByArticleId(gomock.Any(), int64(5)).
					Return([]domain.TagDetail{}, nil)
				countSvc := svcmocks.NewMockCountService(ctrl)
				countSvc.EXPECT().ArticleCounts(gomock.Any(), []int64{5}).
					Return(map[int64]domain.ArticleCount{}, nil)
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().BasicProfiles(gomock.Any(), []int64{20}).
					Return([]domain.SimpleUser{{Id: 20, Name: "作者"}}, nil)
				categorySvc := svcmocks.NewMockCategoryService(ctrl)
				categorySvc.EXPECT().Name(gomock.Any(), int64(0)).Return("后端", nil)
				return repo, tagRepo, svcmocks.NewMockUserFootService(ctrl),
					countSvc, userSvc, categorySvc
			},
			wantIds: []int64{5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, tagRepo, footSvc, countSvc, userSvc, categorySvc := tc.mock(ctrl)
			svc := NewArticleReadService(repo, tagRepo,
				categorySvc, userSvc, countSvc, footSvc,
				svcmocks.NewMockRankingService(ctrl), logger.NewNopLogger())
			res, err := svc.ListByUserAndSelection(context.Background(), 20, page, tc.sel)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			// 空页的 List 也不能是 nil
			assert.NotNil(t, res.List)
			resIds := make([]int64, 0, len(res.List))
			for _, v := range res.List {
				resIds = append(resIds, v.Id)
			}
			assert.Equal(t, tc.wantIds, resIds)
		})
	}
}

func TestArticleReadService_ListByCategory(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	page := domain.NewPageParam(1, 10)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockArticleRepository(ctrl)
	repo.EXPECT().ListByCategory(gomock.Any(), int64(6), page).
		Return([]domain.Article{
			{Id: 1, CategoryId: 6, Author: domain.Author{Id: 10}, Ctime: now, Utime: now},
			{Id: 2, CategoryId: 6, Author: domain.Author{Id: 10}, Ctime: now, Utime: now},
		}, nil)
	// 列表里每条都要带上自己的标签
	tagRepo := repomocks.NewMockArticleTagRepository(ctrl)
	tagRepo.EXPECT().ListDetailsByArticleId(gomock.Any(), int64(1)).
		Return([]domain.TagDetail{{Id: 7, Name: "Go"}}, nil)
	tagRepo.EXPECT().ListDetailsByArticleId(gomock.Any(), int64(2)).
		Return([]domain.TagDetail{}, nil)
	countSvc := svcmocks.NewMockCountService(ctrl)
	countSvc.EXPECT().ArticleCounts(gomock.Any(), []int64{1, 2}).
		Return(map[int64]domain.ArticleCount{
			1: {ReadCnt: 3},
		}, nil)
	userSvc := svcmocks.NewMockUserService(ctrl)
	userSvc.EXPECT().BasicProfiles(gomock.Any(), []int64{10, 10}).
		Return([]domain.SimpleUser{{Id: 10, Name: "一灰"}}, nil)
	categorySvc := svcmocks.NewMockCategoryService(ctrl)
	categorySvc.EXPECT().Name(gomock.Any(), int64(6)).
		Return("后端", nil).Times(2)

	svc := NewArticleReadService(repo, tagRepo, categorySvc, userSvc,
		countSvc, svcmocks.NewMockUserFootService(ctrl),
		svcmocks.NewMockRankingService(ctrl), logger.NewNopLogger())
	res, err := svc.ListByCategory(context.Background(), 6, page)
	assert.NoError(t, err)
	assert.Len(t, res.List, 2)
	assert.Equal(t, []domain.TagDetail{{Id: 7, Name: "Go"}}, res.List[0].Tags)
	assert.Equal(t, []domain.TagDetail{}, res.List[1].Tags)
	assert.Equal(t, "后端", res.List[0].CategoryName)
	assert.Equal(t, int64(3), res.List[0].Count.ReadCnt)
	assert.Equal(t, "一灰", res.List[0].AuthorName)
}

func TestArticleReadService_ListHot(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	page := domain.NewPageParam(1, 2)

	testCases := []struct {
		name string
		page domain.PageParam
		mock func(ctrl *gomock.Controller) (repository.ArticleRepository, RankingService)

		wantIds []int64
	}{
		{
			name: "第一页命中榜单缓存",
			page: page,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository, RankingService) {
				rankingSvc := svcmocks.NewMockRankingService(ctrl)
				rankingSvc.EXPECT().GetTopN(gomock.Any()).
					Return([]domain.SimpleArticle{
						{Id: 9, Title: "热文", ReadCnt: 100, Ctime: now},
						{Id: 8, ReadCnt: 90, Ctime: now},
						{Id: 7, ReadCnt: 80, Ctime: now},
					}, nil)
				return repomocks.NewMockArticleRepository(ctrl), rankingSvc
			},
			// 超出 pageSize 的部分被截掉
			wantIds: []int64{9, 8},
		},
		{
			name: "榜单缓存挂了退化成实时查询",
			page: page,
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository, RankingService) {
				rankingSvc := svcmocks.NewMockRankingService(ctrl)
				rankingSvc.EXPECT().GetTopN(gomock.Any()).
					Return(nil, errors.New("redis 崩了"))
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().ListHot(gomock.Any(), page).
					Return([]domain.Article{
						{Id: 5, ReadCnt: 50, Ctime: now},
						{Id: 4, ReadCnt: 40, Ctime: now},
					}, nil)
				return repo, rankingSvc
			},
			wantIds: []int64{5, 4},
		},
		{
			name: "第二页不走榜单",
			page: domain.NewPageParam(2, 2),
			mock: func(ctrl *gomock.Controller) (repository.ArticleRepository, RankingService) {
				repo := repomocks.NewMockArticleRepository(ctrl)
				repo.EXPECT().ListHot(gomock.Any(), domain.NewPageParam(2, 2)).
					Return([]domain.Article{
						{Id: 3, ReadCnt: 30, Ctime: now},
					}, nil)
				return repo, svcmocks.NewMockRankingService(ctrl)
			},
			wantIds: []int64{3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, rankingSvc := tc.mock(ctrl)
			svc := NewArticleReadService(repo,
				repomocks.NewMockArticleTagRepository(ctrl),
				svcmocks.NewMockCategoryService(ctrl),
				svcmocks.NewMockUserService(ctrl),
				svcmocks.NewMockCountService(ctrl),
				svcmocks.NewMockUserFootService(ctrl),
				rankingSvc, logger.NewNopLogger())
			res, err := svc.ListHot(context.Background(), tc.page)
			assert.NoError(t, err)
			resIds := make([]int64, 0, len(res.List))
			for _, v := range res.List {
				resIds = append(resIds, v.Id)
			}
			assert.Equal(t, tc.wantIds, resIds)
		})
	}
}
