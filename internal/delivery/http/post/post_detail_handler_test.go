package post_http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	comment_service_mock "blogging-service/mocks/comment"
	post_service_mock "blogging-service/mocks/post"
)

// newTestEngine builds a gin engine with the real templates and an
// optional fixed viewer on every request.
func newTestEngine(t *testing.T, viewer *model.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.LoadHTMLGlob("../../../../web/templates/*.html")
	engine.Use(func(c *gin.Context) {
		if viewer != nil {
			c.Set("viewer", viewer)
		}
		c.Next()
	})
	return engine
}

func postForm(engine *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func getPage(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func registerDetailRoutes(engine *gin.Engine, h *PostDetailHandler) {
	engine.GET("/posts/:id/", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		h.GetPost(c, id)
	})
	engine.POST("/posts/:id/", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		h.AddComment(c, id)
	})
}

func TestPostDetailHandler_GetPost(t *testing.T) {
	log := logger.New("test")
	owner := &model.User{ID: 1, Username: "owner"}
	other := &model.User{ID: 2, Username: "other"}

	published := &model.PostDetailed{
		Post: &model.Post{
			ID:       1,
			AuthorID: 1,
			Title:    "Visible Post",
			PostDate: pgtype.Date{Time: time.Now().AddDate(0, 0, -1), Valid: true},
		},
		Author:     owner,
		Comments:   []*model.Comment{},
		Categories: []*model.Category{},
	}

	tests := []struct {
		name         string
		viewer       *model.User
		mocks        func(postService *post_service_mock.Service)
		target       string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:   "published post renders for anonymous viewer",
			viewer: nil,
			mocks: func(postService *post_service_mock.Service) {
				postService.On("GetPostForViewer", mock.Anything, (*model.User)(nil), int64(1)).
					Return(published, nil)
			},
			target:     "/posts/1/",
			wantStatus: http.StatusOK,
			wantBody:   "Visible Post",
		},
		{
			name:   "draft sends anonymous viewer to login",
			viewer: nil,
			mocks: func(postService *post_service_mock.Service) {
				postService.On("GetPostForViewer", mock.Anything, (*model.User)(nil), int64(2)).
					Return(nil, custom_errors.ErrUnauthenticated)
			},
			target:       "/posts/2/",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login/",
		},
		{
			name:   "draft reads as not found for another user",
			viewer: other,
			mocks: func(postService *post_service_mock.Service) {
				postService.On("GetPostForViewer", mock.Anything, other, int64(2)).
					Return(nil, custom_errors.ErrPostNotFound)
			},
			target:     "/posts/2/",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postService := new(post_service_mock.Service)
			commentService := new(comment_service_mock.Service)
			tt.mocks(postService)

			engine := newTestEngine(t, tt.viewer)
			registerDetailRoutes(engine, NewPostDetailHandler(postService, commentService, validator.New(), log))

			rec := getPage(engine, tt.target)

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

func TestPostDetailHandler_GetPost_ShowsCommentAuthors(t *testing.T) {
	log := logger.New("test")
	owner := &model.User{ID: 1, Username: "owner"}
	alice := "alice"

	detailed := &model.PostDetailed{
		Post: &model.Post{
			ID:       1,
			AuthorID: 1,
			Title:    "Commented Post",
			PostDate: pgtype.Date{Time: time.Now().AddDate(0, 0, -1), Valid: true},
		},
		Author: owner,
		Comments: []*model.Comment{
			{ID: 1, PostID: 1, AuthorUsername: &alice, Text: "nice read"},
			{ID: 2, PostID: 1, Text: "orphaned comment"},
		},
		Categories: []*model.Category{},
	}

	postService := new(post_service_mock.Service)
	postService.On("GetPostForViewer", mock.Anything, (*model.User)(nil), int64(1)).
		Return(detailed, nil)

	engine := newTestEngine(t, nil)
	registerDetailRoutes(engine, NewPostDetailHandler(postService, new(comment_service_mock.Service), validator.New(), log))

	rec := getPage(engine, "/posts/1/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
	assert.Contains(t, rec.Body.String(), "nice read")
	// The deleted author renders the same null marker the dates use.
	assert.Contains(t, rec.Body.String(), "None")
}

func TestPostDetailHandler_AddComment(t *testing.T) {
	log := logger.New("test")
	viewer := &model.User{ID: 2, Username: "reader"}

	tests := []struct {
		name         string
		viewer       *model.User
		mocks        func(commentService *comment_service_mock.Service)
		form         url.Values
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "anonymous commenter goes to login",
			viewer:       nil,
			mocks:        func(commentService *comment_service_mock.Service) {},
			form:         url.Values{"text": {"Hello"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login/",
		},
		{
			name:       "empty text redisplays the form",
			viewer:     viewer,
			mocks:      func(commentService *comment_service_mock.Service) {},
			form:       url.Values{"text": {""}},
			wantStatus: http.StatusOK,
			wantBody:   "Comment text must not be empty.",
		},
		{
			name:   "successful comment redirects back to the post",
			viewer: viewer,
			mocks: func(commentService *comment_service_mock.Service) {
				commentService.On("SubmitComment", mock.Anything, viewer, mock.MatchedBy(func(dto *model.CreateCommentDTO) bool {
					return dto.PostID == 1 && dto.Text == "Hello"
				})).Return(&model.Comment{ID: 5, PostID: 1, Text: "Hello"}, nil)
			},
			form:         url.Values{"text": {"Hello"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/posts/1/",
		},
		{
			name:   "comment on a missing post is not found",
			viewer: viewer,
			mocks: func(commentService *comment_service_mock.Service) {
				commentService.On("SubmitComment", mock.Anything, viewer, mock.AnythingOfType("*model.CreateCommentDTO")).
					Return(nil, custom_errors.ErrPostNotFound)
			},
			form:       url.Values{"text": {"Hello"}},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postService := new(post_service_mock.Service)
			commentService := new(comment_service_mock.Service)
			tt.mocks(commentService)

			engine := newTestEngine(t, tt.viewer)
			registerDetailRoutes(engine, NewPostDetailHandler(postService, commentService, validator.New(), log))

			rec := postForm(engine, "/posts/1/", tt.form)

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
