package post_http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	post_service_mock "blogging-service/mocks/post"
)

func registerQueryRoute(engine *gin.Engine, h *QueryHandler) {
	engine.GET("/posts/:command/:field/:value/", func(c *gin.Context) {
		h.Query(c, c.Param("command"), c.Param("field"), c.Param("value"))
	})
}

func TestQueryHandler_Query(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name       string
		mocks      func(postService *post_service_mock.Service)
		target     string
		wantStatus int
		wantBody   []string
	}{
		{
			name: "filter by author renders the matching posts",
			mocks: func(postService *post_service_mock.Service) {
				postService.On("ResolveQuery", mock.Anything, model.PostQuery{
					Command: model.QueryCommandFilter,
					Field:   "author",
					Value:   "1",
				}).Return([]*model.Post{
					{ID: 1, AuthorID: 1, Title: "Mine", PostDate: pgtype.Date{Time: time.Now(), Valid: true}},
				}, nil)
			},
			target:     "/posts/filter/author/1/",
			wantStatus: http.StatusOK,
			wantBody:   []string{"Mine"},
		},
		{
			name: "excluded date keeps draft rows with a null marker",
			mocks: func(postService *post_service_mock.Service) {
				postService.On("ResolveQuery", mock.Anything, model.PostQuery{
					Command: model.QueryCommandExclude,
					Field:   "post_date",
					Value:   "2024-05-01",
				}).Return([]*model.Post{
					{ID: 2, AuthorID: 1, Title: "Still a draft"},
				}, nil)
			},
			target:     "/posts/exclude/post_date/2024-05-01/",
			wantStatus: http.StatusOK,
			wantBody:   []string{"Still a draft", "None"},
		},
		{
			name: "unknown command is a client error",
			mocks: func(postService *post_service_mock.Service) {
				postService.On("ResolveQuery", mock.Anything, mock.AnythingOfType("model.PostQuery")).
					Return(nil, custom_errors.ErrInvalidQueryCommand)
			},
			target:     "/posts/destroy/author/1/",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown field is a client error",
			mocks: func(postService *post_service_mock.Service) {
				postService.On("ResolveQuery", mock.Anything, mock.AnythingOfType("model.PostQuery")).
					Return(nil, custom_errors.ErrInvalidQueryField)
			},
			target:     "/posts/filter/password/x/",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "malformed value is a client error",
			mocks: func(postService *post_service_mock.Service) {
				postService.On("ResolveQuery", mock.Anything, mock.AnythingOfType("model.PostQuery")).
					Return(nil, custom_errors.ErrInvalidQueryValue)
			},
			target:     "/posts/filter/post_date/yesterday/",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postService := new(post_service_mock.Service)
			tt.mocks(postService)

			engine := newTestEngine(t, nil)
			registerQueryRoute(engine, NewQueryHandler(postService, log))

			rec := getPage(engine, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
