package domain

// TagDetail 文章关联的标签，读服务只透传，不关心标签本身的语义
type TagDetail struct {
	Id   int64
	Name string
}

// ArticleCount 文章的互动计数，没有记录时就是零值
type ArticleCount struct {
	ReadCnt    int64
	PraiseCnt  int64
	CommentCnt int64
	CollectCnt int64
}

// ArticleView 聚合后的文章视图，按单次请求临时拼装，不落库。
// Praised/Commented/Collected 只有详情页并且登录了才有意义，
// 未登录一律是 false，列表接口不会填这三个字段
type ArticleView struct {
	Article
	CategoryName string
	Tags         []TagDetail
	AuthorName   string
	AuthorAvatar string
	Count        ArticleCount

	Praised      bool
	Commented    bool
	Collected    bool
	PraisedUsers []SimpleUser
}
