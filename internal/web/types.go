package web

import (
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/pkg/ginx"
	"github.com/gin-gonic/gin"
	"time"
)

// Result API 响应的统一格式
type Result = ginx.Result

// handler 注册路由的接口类型
type handler interface {
	RegisterRoutes(s *gin.Engine)
}

// ArticleVo 详情页的完整视图
type ArticleVo struct {
	Id       int64  `json:"id"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Content  string `json:"content"`
	Status   uint8  `json:"status"`

	CategoryId   int64               `json:"categoryId"`
	CategoryName string              `json:"categoryName"`
	Tags         []TagVo             `json:"tags"`
	AuthorId     int64               `json:"authorId"`
	AuthorName   string              `json:"authorName"`
	AuthorAvatar string              `json:"authorAvatar"`
	ReadCnt      int64               `json:"readCnt"`
	PraiseCnt    int64               `json:"praiseCnt"`
	CommentCnt   int64               `json:"commentCnt"`
	CollectCnt   int64               `json:"collectCnt"`
	Praised      bool                `json:"praised"`
	Commented    bool                `json:"commented"`
	Collected    bool                `json:"collected"`
	PraisedUsers []domain.SimpleUser `json:"praisedUsers"`

	Ctime string `json:"ctime"`
	Utime string `json:"utime"`
}

type TagVo struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// ArticleListVo 列表里的一条，不带正文和当前用户的互动状态
type ArticleListVo struct {
	Id           int64   `json:"id"`
	Title        string  `json:"title"`
	Abstract     string  `json:"abstract"`
	CategoryId   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Tags         []TagVo `json:"tags"`
	AuthorId     int64   `json:"authorId"`
	AuthorName   string  `json:"authorName"`
	AuthorAvatar string  `json:"authorAvatar"`
	ReadCnt      int64   `json:"readCnt"`
	PraiseCnt    int64   `json:"praiseCnt"`
	CommentCnt   int64   `json:"commentCnt"`
	CollectCnt   int64   `json:"collectCnt"`
	Ctime        string  `json:"ctime"`
}

type SimpleArticleVo struct {
	Id      int64  `json:"id"`
	Title   string `json:"title"`
	ReadCnt int64  `json:"readCnt"`
	Ctime   string `json:"ctime"`
}

func toTagVos(tags []domain.TagDetail) []TagVo {
	res := make([]TagVo, 0, len(tags))
	for _, t := range tags {
		res = append(res, TagVo{Id: t.Id, Name: t.Name})
	}
	return res
}

func toArticleVo(view domain.ArticleView) ArticleVo {
	return ArticleVo{
		Id:           view.Id,
		Title:        view.Title,
		Abstract:     view.Abstract(),
		Content:      view.Content,
		Status:       view.Status.ToUint8(),
		CategoryId:   view.CategoryId,
		CategoryName: view.CategoryName,
		Tags:         toTagVos(view.Tags),
		AuthorId:     view.Author.Id,
		AuthorName:   view.AuthorName,
		AuthorAvatar: view.AuthorAvatar,
		ReadCnt:      view.Count.ReadCnt,
		PraiseCnt:    view.Count.PraiseCnt,
		CommentCnt:   view.Count.CommentCnt,
		CollectCnt:   view.Count.CollectCnt,
		Praised:      view.Praised,
		Commented:    view.Commented,
		Collected:    view.Collected,
		PraisedUsers: view.PraisedUsers,
		Ctime:        view.Ctime.Format(time.DateTime),
		Utime:        view.Utime.Format(time.DateTime),
	}
}

func toArticleListVo(view domain.ArticleView) ArticleListVo {
	return ArticleListVo{
		Id:           view.Id,
		Title:        view.Title,
		Abstract:     view.Abstract(),
		CategoryId:   view.CategoryId,
		CategoryName: view.CategoryName,
		Tags:         toTagVos(view.Tags),
		AuthorId:     view.Author.Id,
		AuthorName:   view.AuthorName,
		AuthorAvatar: view.AuthorAvatar,
		ReadCnt:      view.Count.ReadCnt,
		PraiseCnt:    view.Count.PraiseCnt,
		CommentCnt:   view.Count.CommentCnt,
		CollectCnt:   view.Count.CollectCnt,
		Ctime:        view.Ctime.Format(time.DateTime),
	}
}
