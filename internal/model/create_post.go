package model

import "github.com/jackc/pgx/v5/pgtype"

type CreatePostDTO struct {
	AuthorID int64       `json:"author_id"`
	Title    string      `json:"title"`
	Text     *string     `json:"text,omitempty"`
	PostDate pgtype.Date `json:"post_date"`
}
