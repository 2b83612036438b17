package service

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

var ErrArticleNotFound = repository.ErrArticleNotFound

// ArticleReadService 文章阅读侧的聚合入口。
// 列表和详情都在这里把分类、标签、作者、计数拼到一起，
// 写文章的那一侧不归它管
type ArticleReadService interface {
	// GetBasic 只查文章本身，不做任何补全
	GetBasic(ctx context.Context, id int64) (domain.Article, error)
	// GetDetail 文章详情，带分类名、标签和作者信息
	GetDetail(ctx context.Context, id int64) (domain.ArticleView, error)
	// GetTotal 详情页的完整视图，阅读计数 +1，
	// 登录用户会落阅读足迹并带上点赞评论收藏状态，
	// viewerId 为 0 表示未登录，三个状态一律是 false
	GetTotal(ctx context.Context, id int64, viewerId int64) (domain.ArticleView, error)
	ListByCategory(ctx context.Context, categoryId int64, page domain.PageParam) (domain.PageList[domain.ArticleView], error)
	ListBySearchKey(ctx context.Context, key string, page domain.PageParam) (domain.PageList[domain.ArticleView], error)
	// ListByUserAndSelection 个人主页的三类列表，
	// 阅读历史和收藏列表保持足迹的时间顺序
	ListByUserAndSelection(ctx context.Context, userId int64, page domain.PageParam, sel domain.HomeSelect) (domain.PageList[domain.ArticleView], error)
	// ListHot 热门文章，优先用定时任务算好的榜单
	ListHot(ctx context.Context, page domain.PageParam) (domain.PageList[domain.SimpleArticle], error)
	CountByAuthor(ctx context.Context, authorId int64) (int64, error)
}

type articleReadService struct {
	repo        repository.ArticleRepository
	tagRepo     repository.ArticleTagRepository
	categorySvc CategoryService
	userSvc     UserService
	countSvc    CountService
	footSvc     UserFootService
	rankingSvc  RankingService
	l           logger.Logger
}

func NewArticleReadService(repo repository.ArticleRepository,
	tagRepo repository.ArticleTagRepository,
	categorySvc CategoryService,
	userSvc UserService,
	countSvc CountService,
	footSvc UserFootService,
	rankingSvc RankingService,
	l logger.Logger) ArticleReadService {
	return &articleReadService{
		repo:        repo,
		tagRepo:     tagRepo,
		categorySvc: categorySvc,
		userSvc:     userSvc,
		countSvc:    countSvc,
		footSvc:     footSvc,
		rankingSvc:  rankingSvc,
		l:           l,
	}
}

func (svc *articleReadService) GetBasic(ctx context.Context, id int64) (domain.Article, error) {
	return svc.repo.GetById(ctx, id)
}

func (svc *articleReadService) GetDetail(ctx context.Context, id int64) (domain.ArticleView, error) {
	art, err := svc.repo.GetById(ctx, id)
	if err != nil {
		return domain.ArticleView{}, err
	}
	view := domain.ArticleView{
		Article: art,
	}
	// 分类、标签、作者三路互不依赖，并发拿
	var eg errgroup.Group
	eg.Go(func() error {
		name, er := svc.categorySvc.Name(ctx, art.CategoryId)
		if er != nil {
			return er
		}
		view.CategoryName = name
		return nil
	})
	eg.Go(func() error {
		tags, er := svc.tagRepo.ListDetailsByArticleId(ctx, id)
		if er != nil {
			return er
		}
		view.Tags = tags
		return nil
	})
	eg.Go(func() error {
		author, er := svc.userSvc.BasicProfile(ctx, art.Author.Id)
		if er != nil {
			return er
		}
		view.AuthorName = author.NickName
		view.AuthorAvatar = author.Avatar
		return nil
	})
	err = eg.Wait()
	if err != nil {
		return domain.ArticleView{}, err
	}
	return view, nil
}

func (svc *articleReadService) GetTotal(ctx context.Context, id int64, viewerId int64) (domain.ArticleView, error) {
	view, err := svc.GetDetail(ctx, id)
	if err != nil {
		return domain.ArticleView{}, err
	}
	// 只要详情查到了就算一次阅读，未登录也算。
	// 计数先提交，后面补全失败也不回滚
	err = svc.repo.IncrReadCnt(ctx, id)
	if err != nil {
		return domain.ArticleView{}, err
	}
	view.ReadCnt++

	var eg errgroup.Group
	eg.Go(func() error {
		cnt, er := svc.countSvc.ArticleCount(ctx, id)
		if er != nil {
			return er
		}
		view.Count = cnt
		return nil
	})
	eg.Go(func() error {
		users, er := svc.footSvc.PraisedUsers(ctx, id)
		if er != nil {
			return er
		}
		view.PraisedUsers = users
		return nil
	})
	if viewerId > 0 {
		eg.Go(func() error {
			foot, er := svc.footSvc.SaveRead(ctx, id, view.Author.Id, viewerId)
			if er != nil {
				return er
			}
			view.Praised = foot.Praised()
			view.Commented = foot.Commented()
			view.Collected = foot.Collected()
			return nil
		})
	}
	err = eg.Wait()
	if err != nil {
		return domain.ArticleView{}, err
	}
	return view, nil
}

func (svc *articleReadService) ListByCategory(ctx context.Context, categoryId int64, page domain.PageParam) (domain.PageList[domain.ArticleView], error) {
	arts, err := svc.repo.ListByCategory(ctx, categoryId, page)
	if err != nil {
		return domain.EmptyPageList[domain.ArticleView](), err
	}
	return svc.buildPage(ctx, arts, page)
}

func (svc *articleReadService) ListBySearchKey(ctx context.Context, key string, page domain.PageParam) (domain.PageList[domain.ArticleView], error) {
	arts, err := svc.repo.ListBySearchKey(ctx, key, page)
	if err != nil {
		return domain.EmptyPageList[domain.ArticleView](), err
	}
	return svc.buildPage(ctx, arts, page)
}

func (svc *articleReadService) ListByUserAndSelection(ctx context.Context, userId int64, page domain.PageParam, sel domain.HomeSelect) (domain.PageList[domain.ArticleView], error) {
	switch sel {
	case domain.HomeSelectRead:
		ids, err := svc.footSvc.ReadArticleIds(ctx, userId, page)
		if err != nil {
			return domain.EmptyPageList[domain.ArticleView](), err
		}
		return svc.buildPageByIds(ctx, ids, page)
	case domain.HomeSelectCollection:
		ids, err := svc.footSvc.CollectionArticleIds(ctx, userId, page)
		if err != nil {
			return domain.EmptyPageList[domain.ArticleView](), err
		}
		return svc.buildPageByIds(ctx, ids, page)
	default:
		// 没传或者传了未知的选择类型，当成查作者的文章
		arts, err := svc.repo.ListByAuthor(ctx, userId, page)
		if err != nil {
			return domain.EmptyPageList[domain.ArticleView](), err
		}
		return svc.buildPage(ctx, arts, page)
	}
}

func (svc *articleReadService) ListHot(ctx context.Context, page domain.PageParam) (domain.PageList[domain.SimpleArticle], error) {
	// 第一页优先走榜单缓存，缓存挂了退化成实时查询
	if page.Page == 1 {
		top, err := svc.rankingSvc.GetTopN(ctx)
		if err == nil && len(top) > 0 {
			if int64(len(top)) > page.PageSize {
				top = top[:page.PageSize]
			}
			return domain.NewPageList[domain.SimpleArticle](top, page.PageSize), nil
		}
		if err != nil {
			svc.l.Warn("读取热榜缓存失败，退化成实时查询",
				logger.Error(err))
		}
	}
	arts, err := svc.repo.ListHot(ctx, page)
	if err != nil {
		return domain.EmptyPageList[domain.SimpleArticle](), err
	}
	res := slice.Map[domain.Article, domain.SimpleArticle](arts,
		func(idx int, src domain.Article) domain.SimpleArticle {
			return domain.SimpleArticle{
				Id:      src.Id,
				Title:   src.Title,
				ReadCnt: src.ReadCnt,
				Ctime:   src.Ctime,
			}
		})
	return domain.NewPageList[domain.SimpleArticle](res, page.PageSize), nil
}

func (svc *articleReadService) CountByAuthor(ctx context.Context, authorId int64) (int64, error) {
	return svc.repo.CountByAuthor(ctx, authorId)
}

// buildPageByIds 按 ids 的顺序批量查文章再补全。
// IN 查询不保证顺序，必须重排回足迹的时间顺序
func (svc *articleReadService) buildPageByIds(ctx context.Context, ids []int64, page domain.PageParam) (domain.PageList[domain.ArticleView], error) {
	if len(ids) == 0 {
		return domain.EmptyPageList[domain.ArticleView](), nil
	}
	arts, err := svc.repo.ListByIds(ctx, ids)
	if err != nil {
		return domain.EmptyPageList[domain.ArticleView](), err
	}
	return svc.buildPage(ctx, sortByIds(ids, arts), page)
}

// buildPage 列表的统一补全，带上分类名、标签、作者和互动计数。
// 当前用户的点赞收藏状态只有详情页才有，列表不填
func (svc *articleReadService) buildPage(ctx context.Context, arts []domain.Article, page domain.PageParam) (domain.PageList[domain.ArticleView], error) {
	if len(arts) == 0 {
		return domain.EmptyPageList[domain.ArticleView](), nil
	}
	artIds := slice.Map[domain.Article, int64](arts, func(idx int, src domain.Article) int64 {
		return src.Id
	})
	authorIds := slice.Map[domain.Article, int64](arts, func(idx int, src domain.Article) int64 {
		return src.Author.Id
	})

	var (
		eg      errgroup.Group
		cntMap  map[int64]domain.ArticleCount
		userMap map[int64]domain.SimpleUser
	)
	eg.Go(func() error {
		var er error
		cntMap, er = svc.countSvc.ArticleCounts(ctx, artIds)
		return er
	})
	eg.Go(func() error {
		users, er := svc.userSvc.BasicProfiles(ctx, authorIds)
		if er != nil {
			return er
		}
		userMap = make(map[int64]domain.SimpleUser, len(users))
		for _, u := range users {
			userMap[u.Id] = u
		}
		return nil
	})
	err := eg.Wait()
	if err != nil {
		return domain.EmptyPageList[domain.ArticleView](), err
	}

	views := make([]domain.ArticleView, 0, len(arts))
	for _, art := range arts {
		name, er := svc.categorySvc.Name(ctx, art.CategoryId)
		if er != nil {
			return domain.EmptyPageList[domain.ArticleView](), er
		}
		tags, er := svc.tagRepo.ListDetailsByArticleId(ctx, art.Id)
		if er != nil {
			return domain.EmptyPageList[domain.ArticleView](), er
		}
		view := domain.ArticleView{
			Article:      art,
			CategoryName: name,
			Tags:         tags,
			Count:        cntMap[art.Id],
		}
		if u, ok := userMap[art.Author.Id]; ok {
			view.AuthorName = u.Name
			view.AuthorAvatar = u.Avatar
		}
		views = append(views, view)
	}
	return domain.NewPageList[domain.ArticleView](views, page.PageSize), nil
}

// sortByIds 把乱序的查询结果重排回 ids 的顺序。
// ids 里查不到对应文章的（被删了或者没发表）直接丢掉，不留空位
func sortByIds(ids []int64, arts []domain.Article) []domain.Article {
	idx := make(map[int64]domain.Article, len(arts))
	for _, art := range arts {
		idx[art.Id] = art
	}
	res := make([]domain.Article, 0, len(arts))
	for _, id := range ids {
		if art, ok := idx[id]; ok {
			res = append(res, art)
		}
	}
	return res
}

