package post_service

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"blogging-service/internal/model"
)

func publishedPost(authorID int64) *model.Post {
	return &model.Post{
		ID:       1,
		AuthorID: authorID,
		Title:    "Published",
		PostDate: pgtype.Date{Time: time.Now().AddDate(0, 0, -1), Valid: true},
	}
}

func draftPost(authorID int64) *model.Post {
	return &model.Post{
		ID:       2,
		AuthorID: authorID,
		Title:    "Draft",
	}
}

func TestCanView(t *testing.T) {
	owner := &model.User{ID: 1, Username: "owner"}
	other := &model.User{ID: 2, Username: "other"}

	tests := []struct {
		name   string
		viewer *model.User
		post   *model.Post
		want   bool
	}{
		{
			name:   "anonymous viewer sees published post",
			viewer: nil,
			post:   publishedPost(1),
			want:   true,
		},
		{
			name:   "anonymous viewer cannot see draft",
			viewer: nil,
			post:   draftPost(1),
			want:   false,
		},
		{
			name:   "author sees own draft",
			viewer: owner,
			post:   draftPost(1),
			want:   true,
		},
		{
			name:   "other user cannot see draft",
			viewer: other,
			post:   draftPost(1),
			want:   false,
		},
		{
			name:   "other user sees published post",
			viewer: other,
			post:   publishedPost(1),
			want:   true,
		},
		{
			name:   "future publish date still counts as published",
			viewer: nil,
			post: &model.Post{
				ID:       3,
				AuthorID: 1,
				Title:    "Scheduled",
				PostDate: pgtype.Date{Time: time.Now().AddDate(0, 0, 30), Valid: true},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.viewer, tt.post))
		})
	}
}

func TestCanEdit(t *testing.T) {
	owner := &model.User{ID: 1, Username: "owner"}
	other := &model.User{ID: 2, Username: "other"}

	tests := []struct {
		name   string
		viewer *model.User
		post   *model.Post
		want   bool
	}{
		{
			name:   "author edits own post",
			viewer: owner,
			post:   publishedPost(1),
			want:   true,
		},
		{
			name:   "author edits own draft",
			viewer: owner,
			post:   draftPost(1),
			want:   true,
		},
		{
			name:   "anonymous viewer cannot edit",
			viewer: nil,
			post:   publishedPost(1),
			want:   false,
		},
		{
			name:   "other user cannot edit even published posts",
			viewer: other,
			post:   publishedPost(1),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.viewer, tt.post))
		})
	}
}
