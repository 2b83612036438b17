package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageParam(t *testing.T) {
	testCases := []struct {
		name     string
		page     int64
		pageSize int64
		want     PageParam
	}{
		{
			name:     "正常参数",
			page:     2,
			pageSize: 10,
			want:     PageParam{Page: 2, PageSize: 10},
		},
		{
			name:     "非法页码回退到第一页",
			page:     0,
			pageSize: 10,
			want:     PageParam{Page: 1, PageSize: 10},
		},
		{
			name:     "非法页大小用默认值",
			page:     1,
			pageSize: -1,
			want:     PageParam{Page: 1, PageSize: 20},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewPageParam(tc.page, tc.pageSize))
		})
	}
}

func TestPageParam_Offset(t *testing.T) {
	p := NewPageParam(3, 10)
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 10, p.Limit())
}

func TestNewPageList(t *testing.T) {
	t.Run("整页认为还有下一页", func(t *testing.T) {
		res := NewPageList[int64]([]int64{1, 2, 3}, 3)
		assert.True(t, res.HasMore)
	})
	t.Run("不满一页就是最后一页", func(t *testing.T) {
		res := NewPageList[int64]([]int64{1}, 3)
		assert.False(t, res.HasMore)
	})
	t.Run("nil 切片转成空切片", func(t *testing.T) {
		res := NewPageList[int64](nil, 3)
		assert.NotNil(t, res.List)
		assert.Len(t, res.List, 0)
	})
}
