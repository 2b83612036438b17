package domain

// PageParam 分页参数，页码从 1 开始
type PageParam struct {
	Page     int64
	PageSize int64
}

func NewPageParam(page, pageSize int64) PageParam {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return PageParam{
		Page:     page,
		PageSize: pageSize,
	}
}

func (p PageParam) Offset() int {
	return int((p.Page - 1) * p.PageSize)
}

func (p PageParam) Limit() int {
	return int(p.PageSize)
}

// PageList 分页结果的信封
// List 永远不是 nil，空页也是一个正常的信封而不是 null
type PageList[T any] struct {
	List     []T   `json:"list"`
	PageSize int64 `json:"pageSize"`
	HasMore  bool  `json:"hasMore"`
}

func NewPageList[T any](list []T, pageSize int64) PageList[T] {
	if list == nil {
		list = []T{}
	}
	return PageList[T]{
		List:     list,
		PageSize: pageSize,
		HasMore:  int64(len(list)) == pageSize && pageSize > 0,
	}
}

// EmptyPageList 空页，查不到数据时统一返回它
func EmptyPageList[T any]() PageList[T] {
	return PageList[T]{
		List: []T{},
	}
}
