package delivery_http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	auth_http "blogging-service/internal/delivery/http/auth"
	category_http "blogging-service/internal/delivery/http/category"
	comment_http "blogging-service/internal/delivery/http/comment"
	post_http "blogging-service/internal/delivery/http/post"
	"blogging-service/internal/delivery/http/render"
)

// Router wires every handler onto the gin engine. The /posts/ tree is
// routed through positional segments because usernames, post ids and
// reserved words like "new_post" all live in the same position.
type Router struct {
	listPosts  *post_http.ListPostsHandler
	postDetail *post_http.PostDetailHandler
	createPost *post_http.CreatePostHandler
	editPost   *post_http.EditPostHandler
	userPosts  *post_http.UserPostsHandler
	query      *post_http.QueryHandler
	comments   *comment_http.CommentsHandler
	categories *category_http.CategoriesHandler
	register   *auth_http.RegisterHandler
	login      *auth_http.LoginHandler
	logout     *auth_http.LogoutHandler
}

func NewRouter(
	listPosts *post_http.ListPostsHandler,
	postDetail *post_http.PostDetailHandler,
	createPost *post_http.CreatePostHandler,
	editPost *post_http.EditPostHandler,
	userPosts *post_http.UserPostsHandler,
	query *post_http.QueryHandler,
	comments *comment_http.CommentsHandler,
	categories *category_http.CategoriesHandler,
	register *auth_http.RegisterHandler,
	login *auth_http.LoginHandler,
	logout *auth_http.LogoutHandler,
) *Router {
	return &Router{
		listPosts:  listPosts,
		postDetail: postDetail,
		createPost: createPost,
		editPost:   editPost,
		userPosts:  userPosts,
		query:      query,
		comments:   comments,
		categories: categories,
		register:   register,
		login:      login,
		logout:     logout,
	}
}

// Register attaches all routes. Paths carry trailing slashes; gin's
// default trailing-slash redirect covers the bare variants.
func (r *Router) Register(engine *gin.Engine) {
	engine.GET("/", r.listPosts.Index)

	engine.GET("/register/", r.register.RegisterForm)
	engine.POST("/register/", r.register.SubmitRegister)
	engine.GET("/login/", r.login.LoginForm)
	engine.POST("/login/", r.login.SubmitLogin)
	engine.GET("/logout/", r.logout.Logout)
	engine.POST("/logout/", r.logout.Logout)

	engine.GET("/categories/", r.categories.ListCategories)
	engine.GET("/categories/:id/", r.categories.GetCategory)

	engine.GET("/posts/:first/", r.getOne)
	engine.POST("/posts/:first/", r.postOne)
	engine.GET("/posts/:first/:second/", r.getTwo)
	engine.POST("/posts/:first/:second/", r.postTwo)
	engine.GET("/posts/:first/:second/:third/", r.getThree)

	engine.NoRoute(func(c *gin.Context) {
		render.NotFound(c)
	})
}

const newPostSegment = "new_post"

func (r *Router) getOne(c *gin.Context) {
	first := c.Param("first")

	if first == newPostSegment {
		r.createPost.NewPostForm(c)
		return
	}
	if id, ok := parseID(first); ok {
		r.postDetail.GetPost(c, id)
		return
	}
	r.userPosts.ByUsername(c, first)
}

func (r *Router) postOne(c *gin.Context) {
	first := c.Param("first")

	if first == newPostSegment {
		r.createPost.SubmitNewPost(c)
		return
	}
	if id, ok := parseID(first); ok {
		r.postDetail.AddComment(c, id)
		return
	}
	render.NotFound(c)
}

func (r *Router) getTwo(c *gin.Context) {
	first := c.Param("first")
	second := c.Param("second")

	if id, ok := parseID(first); ok {
		switch second {
		case "comments":
			r.comments.ListComments(c, id)
		case "edit":
			r.editPost.EditForm(c, id)
		default:
			render.NotFound(c)
		}
		return
	}

	// The username segment is decorative here: both listings bind to
	// the session viewer.
	switch second {
	case "published":
		r.userPosts.Published(c)
	case "unpublished":
		r.userPosts.Unpublished(c)
	default:
		render.NotFound(c)
	}
}

func (r *Router) postTwo(c *gin.Context) {
	id, ok := parseID(c.Param("first"))
	if !ok {
		render.NotFound(c)
		return
	}

	switch c.Param("second") {
	case "comments":
		r.comments.SubmitComment(c, id)
	case "edit":
		r.editPost.SubmitEdit(c, id)
	default:
		render.NotFound(c)
	}
}

func (r *Router) getThree(c *gin.Context) {
	r.query.Query(c, c.Param("first"), c.Param("second"), c.Param("third"))
}

func parseID(segment string) (int64, bool) {
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
