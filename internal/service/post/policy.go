package post_service

import "blogging-service/internal/model"

// CanView reports whether the viewer may see the post. Published posts
// are visible to everyone; drafts only to their author. A nil viewer
// is anonymous.
func CanView(viewer *model.User, post *model.Post) bool {
	if post.Published() {
		return true
	}
	return viewer != nil && viewer.ID == post.AuthorID
}

// CanEdit reports whether the viewer may modify the post. Only the
// authenticated author may.
func CanEdit(viewer *model.User, post *model.Post) bool {
	return viewer != nil && viewer.ID == post.AuthorID
}
