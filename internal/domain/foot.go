package domain

// DocumentType 足迹针对的文档类型
type DocumentType uint8

const (
	DocumentTypeArticle DocumentType = iota + 1
	DocumentTypeComment
)

// OperateType 用户对文档的操作类型
type OperateType uint8

const (
	OperateRead OperateType = iota + 1
	OperatePraise
	OperateCancelPraise
	OperateComment
	OperateDeleteComment
	OperateCollection
	OperateCancelCollection
)

const (
	statNo  uint8 = 0
	statYes uint8 = 1
)

// UserFoot 用户在某篇文档上的足迹，
// 以 (用户, 文档, 文档类型) 为键，四个状态互相独立
type UserFoot struct {
	UserId         int64
	DocumentId     int64
	DocumentType   DocumentType
	DocumentUserId int64

	ReadStat       uint8
	PraiseStat     uint8
	CommentStat    uint8
	CollectionStat uint8
}

func (f UserFoot) Praised() bool {
	return f.PraiseStat == statYes
}

func (f UserFoot) Commented() bool {
	return f.CommentStat == statYes
}

func (f UserFoot) Collected() bool {
	return f.CollectionStat == statYes
}
