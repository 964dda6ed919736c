package post_http

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	post_service_mock "blogging-service/mocks/post"
)

func registerEditRoutes(engine *gin.Engine, h *EditPostHandler) {
	engine.GET("/posts/:id/edit/", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		h.EditForm(c, id)
	})
	engine.POST("/posts/:id/edit/", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		h.SubmitEdit(c, id)
	})
}

func TestEditPostHandler_EditForm(t *testing.T) {
	log := logger.New("test")
	owner := &model.User{ID: 1, Username: "owner"}
	other := &model.User{ID: 2, Username: "other"}

	text := "the body"
	post := &model.Post{ID: 5, AuthorID: 1, Title: "Editable", Text: &text}

	tests := []struct {
		name         string
		viewer       *model.User
		mocks        func(postService *post_service_mock.Service)
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:   "owner sees the pre-filled form",
			viewer: owner,
			mocks: func(postService *post_service_mock.Service) {
				postService.On("GetPostForEdit", mock.Anything, owner, int64(5)).Return(post, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Editable",
		},
		{
			name:   "non-owner is bounced to the index",
			viewer: other,
			mocks: func(postService *post_service_mock.Service) {
				postService.On("GetPostForEdit", mock.Anything, other, int64(5)).
					Return(nil, custom_errors.ErrForbidden)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/",
		},
		{
			name:   "anonymous viewer goes to login",
			viewer: nil,
			mocks: func(postService *post_service_mock.Service) {
				postService.On("GetPostForEdit", mock.Anything, (*model.User)(nil), int64(5)).
					Return(nil, custom_errors.ErrUnauthenticated)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login/",
		},
		{
			name:   "missing post is not found",
			viewer: owner,
			mocks: func(postService *post_service_mock.Service) {
				postService.On("GetPostForEdit", mock.Anything, owner, int64(5)).
					Return(nil, custom_errors.ErrPostNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postService := new(post_service_mock.Service)
			tt.mocks(postService)

			engine := newTestEngine(t, tt.viewer)
			registerEditRoutes(engine, NewEditPostHandler(postService, validator.New(), log))

			rec := getPage(engine, "/posts/5/edit/")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestEditPostHandler_SubmitEdit(t *testing.T) {
	log := logger.New("test")
	owner := &model.User{ID: 1, Username: "owner"}
	other := &model.User{ID: 2, Username: "other"}

	tests := []struct {
		name         string
		viewer       *model.User
		mocks        func(postService *post_service_mock.Service)
		form         url.Values
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:   "owner update redirects to the post",
			viewer: owner,
			mocks: func(postService *post_service_mock.Service) {
				postService.On("UpdatePost", mock.Anything, owner, int64(5), mock.MatchedBy(func(dto *model.UpdatePostDTO) bool {
					return dto.Title != nil && *dto.Title == "Renamed"
				})).Return(&model.Post{ID: 5, AuthorID: 1, Title: "Renamed"}, nil)
			},
			form:         url.Values{"title": {"Renamed"}, "text": {"body"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/posts/5/",
		},
		{
			name:   "non-owner is bounced to the index without explanation",
			viewer: other,
			mocks: func(postService *post_service_mock.Service) {
				postService.On("UpdatePost", mock.Anything, other, int64(5), mock.AnythingOfType("*model.UpdatePostDTO")).
					Return(nil, custom_errors.ErrForbidden)
			},
			form:         url.Values{"title": {"Renamed"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/",
		},
		{
			name:       "missing title redisplays the form",
			viewer:     owner,
			mocks:      func(postService *post_service_mock.Service) {},
			form:       url.Values{"title": {""}},
			wantStatus: http.StatusOK,
			wantBody:   "Title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postService := new(post_service_mock.Service)
			tt.mocks(postService)

			engine := newTestEngine(t, tt.viewer)
			registerEditRoutes(engine, NewEditPostHandler(postService, validator.New(), log))

			rec := postForm(engine, "/posts/5/edit/", tt.form)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
