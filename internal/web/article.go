package web

import (
	"context"
	"errors"
	"fmt"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	events "github.com/cnmd-sb-git/paicoding/internal/events/article"
	"github.com/cnmd-sb-git/paicoding/internal/service"
	"github.com/cnmd-sb-git/paicoding/pkg/ginx"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"strconv"
	"time"
)

type ArticleHandler struct {
	svc      service.ArticleReadService
	producer events.Producer
	l        logger.Logger
}

func NewArticleHandler(svc service.ArticleReadService,
	producer events.Producer, l logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		svc:      svc,
		producer: producer,
		l:        l,
	}
}

func (hdl *ArticleHandler) RegisterRoutes(s *gin.Engine) {
	g := s.Group("/articles")
	g.GET("/hot", ginx.Wrap(hdl.Hot))
	g.GET("/search", ginx.Wrap(hdl.Search))
	g.GET("/category/:id", ginx.Wrap(hdl.Category))
	g.GET("/user/:id", ginx.WrapClaims(hdl.UserHome))
	g.GET("/count/:author", ginx.Wrap(hdl.AuthorCount))
	// 放最后，避免把 hot 这类路径当成文章 id
	g.GET("/:id", ginx.WrapClaims(hdl.Detail))
}

// Detail 详情页的完整视图，匿名也能看，
// 登录用户会落阅读足迹并返回点赞收藏状态
func (hdl *ArticleHandler) Detail(ctx *gin.Context, uc ginx.UserClaims) (Result, error) {
	idstr := ctx.Param("id")
	id, err := strconv.ParseInt(idstr, 10, 64)
	if err != nil {
		hdl.l.Error("前端输入的 ID 不对", logger.Error(err))
		return Result{
			Code: 4,
			Msg:  "参数错误",
		}, fmt.Errorf("查询文章详情的 ID %s 不正确, %w", idstr, err)
	}
	view, err := hdl.svc.GetTotal(ctx, id, uc.Id)
	if errors.Is(err, service.ErrArticleNotFound) {
		return Result{
			Code: 4,
			Msg:  "文章不存在",
		}, nil
	}
	if err != nil {
		return Result{
			Code: 5,
			Msg:  "系统错误",
		}, fmt.Errorf("获取文章信息失败 %w", err)
	}

	// 阅读事件发给 Kafka 去聚合互动计数，发送失败不影响本次响应
	evtCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	er := hdl.producer.ProduceReadEvent(evtCtx, events.ReadEvent{
		Uid: uc.Id,
		Aid: id,
	})
	if er != nil {
		hdl.l.Error("发送阅读事件失败",
			logger.Int64("aid", id),
			logger.Error(er))
	}

	return Result{
		Data: toArticleVo(view),
	}, nil
}

func (hdl *ArticleHandler) Category(ctx *gin.Context) (Result, error) {
	idstr := ctx.Param("id")
	id, err := strconv.ParseInt(idstr, 10, 64)
	if err != nil {
		return Result{
			Code: 4,
			Msg:  "参数错误",
		}, fmt.Errorf("分类 ID %s 不正确, %w", idstr, err)
	}
	page := hdl.page(ctx)
	res, err := hdl.svc.ListByCategory(ctx, id, page)
	if err != nil {
		return Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
	return Result{
		Data: toListData(res),
	}, nil
}

func (hdl *ArticleHandler) Search(ctx *gin.Context) (Result, error) {
	key := ctx.Query("key")
	page := hdl.page(ctx)
	res, err := hdl.svc.ListBySearchKey(ctx, key, page)
	if err != nil {
		return Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
	return Result{
		Data: toListData(res),
	}, nil
}

// UserHome 个人主页的列表，select 控制查发表、阅读历史还是收藏。
// 阅读历史和收藏只能看自己的
func (hdl *ArticleHandler) UserHome(ctx *gin.Context, uc ginx.UserClaims) (Result, error) {
	idstr := ctx.Param("id")
	id, err := strconv.ParseInt(idstr, 10, 64)
	if err != nil {
		return Result{
			Code: 4,
			Msg:  "参数错误",
		}, fmt.Errorf("用户 ID %s 不正确, %w", idstr, err)
	}
	sel, _ := strconv.ParseUint(ctx.DefaultQuery("select", "1"), 10, 8)
	homeSel := domain.HomeSelect(sel)
	switch homeSel {
	case domain.HomeSelectRead, domain.HomeSelectCollection:
	default:
		// 没传或者传了未知的选择类型，当成查发表的文章
		homeSel = domain.HomeSelectArticle
	}
	if homeSel != domain.HomeSelectArticle && id != uc.Id {
		return Result{
			Code: 4,
			Msg:  "只能查看自己的阅读和收藏记录",
		}, nil
	}
	page := hdl.page(ctx)
	res, err := hdl.svc.ListByUserAndSelection(ctx, id, page, homeSel)
	if err != nil {
		return Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
	return Result{
		Data: toListData(res),
	}, nil
}

func (hdl *ArticleHandler) Hot(ctx *gin.Context) (Result, error) {
	page := hdl.page(ctx)
	res, err := hdl.svc.ListHot(ctx, page)
	if err != nil {
		return Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
	vos := slice.Map[domain.SimpleArticle, SimpleArticleVo](res.List,
		func(idx int, src domain.SimpleArticle) SimpleArticleVo {
			return SimpleArticleVo{
				Id:      src.Id,
				Title:   src.Title,
				ReadCnt: src.ReadCnt,
				Ctime:   src.Ctime.Format(time.DateTime),
			}
		})
	return Result{
		Data: domain.PageList[SimpleArticleVo]{
			List:     vos,
			PageSize: res.PageSize,
			HasMore:  res.HasMore,
		},
	}, nil
}

func (hdl *ArticleHandler) AuthorCount(ctx *gin.Context) (Result, error) {
	idstr := ctx.Param("author")
	id, err := strconv.ParseInt(idstr, 10, 64)
	if err != nil {
		return Result{
			Code: 4,
			Msg:  "参数错误",
		}, fmt.Errorf("作者 ID %s 不正确, %w", idstr, err)
	}
	cnt, err := hdl.svc.CountByAuthor(ctx, id)
	if err != nil {
		return Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
	return Result{
		Data: cnt,
	}, nil
}

func (hdl *ArticleHandler) page(ctx *gin.Context) domain.PageParam {
	page, _ := strconv.ParseInt(ctx.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(ctx.DefaultQuery("pageSize", "20"), 10, 64)
	return domain.NewPageParam(page, pageSize)
}

func toListData(res domain.PageList[domain.ArticleView]) domain.PageList[ArticleListVo] {
	vos := slice.Map[domain.ArticleView, ArticleListVo](res.List,
		func(idx int, src domain.ArticleView) ArticleListVo {
			return toArticleListVo(src)
		})
	return domain.PageList[ArticleListVo]{
		List:     vos,
		PageSize: res.PageSize,
		HasMore:  res.HasMore,
	}
}
