package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Template names used by the handlers. The templating layer itself is
// plain html/template loaded into the gin engine at startup.
const (
	TemplateList     = "list.html"
	TemplateDetail   = "detail.html"
	TemplateComment  = "comment.html"
	TemplatePostForm = "post_form.html"
	TemplateRegister = "register.html"
	TemplateLogin    = "login.html"
	TemplateCategory = "categories.html"
	TemplateNotFound = "not_found.html"
	TemplateError    = "error.html"
)

func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, TemplateNotFound, gin.H{})
}

func BadRequest(c *gin.Context, message string) {
	c.HTML(http.StatusBadRequest, TemplateError, gin.H{"Message": message})
}

func ServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, TemplateError, gin.H{
		"Message": "Something went wrong. Please try again later.",
	})
}
