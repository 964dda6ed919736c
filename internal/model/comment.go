package model

import "github.com/jackc/pgx/v5/pgtype"

type Comment struct {
	ID       int64  `json:"id"`
	PostID   int64  `json:"post_id"`
	AuthorID *int64 `json:"author_id,omitempty"`
	// AuthorUsername is resolved on reads; nil when the author was deleted.
	AuthorUsername *string     `json:"author_username,omitempty"`
	Text           string      `json:"text"`
	CreatedTime    pgtype.Date `json:"created_time"`
}
