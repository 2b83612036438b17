package domain

import "time"

type Article struct {
	Id      int64
	Title   string
	Content string
	// 作者
	Author     Author
	CategoryId int64
	Status     ArticleStatus
	// 文章表上的原始阅读计数，详情页每访问一次 +1
	ReadCnt int64

	Ctime time.Time
	Utime time.Time
}

// Author 在文章这个领域内，
// 没有用户的概念，只有作者的概念
type Author struct {
	Id   int64
	Name string
}

// Abstract 取正文开头作为摘要
func (a Article) Abstract() string {
	cs := []rune(a.Content)
	if len(cs) < 100 {
		return a.Content
	}
	return string(cs[:100])
}

type ArticleStatus uint8

func (s ArticleStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// ArticleStatusUnknown 未知状态
	ArticleStatusUnknown ArticleStatus = iota
	// ArticleStatusUnpublished 未发表
	ArticleStatusUnpublished
	// ArticleStatusPublished 已发表
	ArticleStatusPublished
	// ArticleStatusPrivate 仅自己可见
	ArticleStatusPrivate
)

// SimpleArticle 热门推荐这类列表用的精简结构，
// 在 DAO 层就已经拍平了，不走逐条补全的流程
type SimpleArticle struct {
	Id      int64
	Title   string
	ReadCnt int64
	Ctime   time.Time
}

// HomeSelect 个人主页列表的选择类型
type HomeSelect uint8

const (
	// HomeSelectArticle 用户自己发表的文章
	HomeSelectArticle HomeSelect = iota + 1
	// HomeSelectRead 用户的阅读历史
	HomeSelectRead
	// HomeSelectCollection 用户的收藏列表
	HomeSelectCollection
)
