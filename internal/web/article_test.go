package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/service"
	svcmocks "github.com/cnmd-sb-git/paicoding/internal/service/mocks"
	"github.com/cnmd-sb-git/paicoding/pkg/ginx"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArticleHandler_UserHome(t *testing.T) {
	page := domain.NewPageParam(1, 20)

	testCases := []struct {
		name string
		url  string
		uid  int64
		mock func(ctrl *gomock.Controller) service.ArticleReadService

		wantCode int
		wantMsg  string
	}{
		{
			name: "查别人发表的文章",
			url:  "/articles/user/33?select=1",
			uid:  20,
			mock: func(ctrl *gomock.Controller) service.ArticleReadService {
				svc := svcmocks.NewMockArticleReadService(ctrl)
				svc.EXPECT().ListByUserAndSelection(gomock.Any(),
					int64(33), page, domain.HomeSelectArticle).
					Return(domain.EmptyPageList[domain.ArticleView](), nil)
				return svc
			},
			wantCode: 0,
		},
		{
			// 未知的 select 归一到查发表的文章，不能按越权处理
			name: "未知的 select 当成查发表的文章",
			url:  "/articles/user/33?select=9",
			uid:  20,
			mock: func(ctrl *gomock.Controller) service.ArticleReadService {
				svc := svcmocks.NewMockArticleReadService(ctrl)
				svc.EXPECT().ListByUserAndSelection(gomock.Any(),
					int64(33), page, domain.HomeSelectArticle).
					Return(domain.EmptyPageList[domain.ArticleView](), nil)
				return svc
			},
			wantCode: 0,
		},
		{
			name: "看别人的阅读历史被拒绝",
			url:  "/articles/user/33?select=2",
			uid:  20,
			mock: func(ctrl *gomock.Controller) service.ArticleReadService {
				return svcmocks.NewMockArticleReadService(ctrl)
			},
			wantCode: 4,
			wantMsg:  "只能查看自己的阅读和收藏记录",
		},
		{
			name: "看自己的收藏列表",
			url:  "/articles/user/20?select=3",
			uid:  20,
			mock: func(ctrl *gomock.Controller) service.ArticleReadService {
				svc := svcmocks.NewMockArticleReadService(ctrl)
				svc.EXPECT().ListByUserAndSelection(gomock.Any(),
					int64(20), page, domain.HomeSelectCollection).
					Return(domain.EmptyPageList[domain.ArticleView](), nil)
				return svc
			},
			wantCode: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := NewArticleHandler(tc.mock(ctrl), nil, logger.NewNopLogger())

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				ctx.Set("user", ginx.UserClaims{Id: tc.uid})
			})
			hdl.RegisterRoutes(server)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
			var res Result
			err = json.Unmarshal(recorder.Body.Bytes(), &res)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
		})
	}
}
