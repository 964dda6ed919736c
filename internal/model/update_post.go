package model

import "github.com/jackc/pgx/v5/pgtype"

type UpdatePostDTO struct {
	Title    *string      `json:"title,omitempty"`
	Text     *string      `json:"text,omitempty"`
	PostDate *pgtype.Date `json:"post_date,omitempty"`
}
