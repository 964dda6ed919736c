package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID           int64       `json:"id"`
	AuthorID     int64       `json:"author_id"`
	Title        string      `json:"title"`
	Text         *string     `json:"text,omitempty"`
	CreatedDate  pgtype.Date `json:"created_date"`
	ModifiedDate pgtype.Date `json:"modified_date"`
	PostDate     pgtype.Date `json:"post_date"`
}

// Published reports whether the post carries a publish date. Any
// non-null post_date counts as published, future dates included.
func (p *Post) Published() bool {
	return p.PostDate.Valid
}
