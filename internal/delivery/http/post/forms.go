package post_http

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const formDateLayout = "2006-01-02"

// PostFormRequestInternal carries the post form fields through
// validation. An empty post date means the post stays a draft.
type PostFormRequestInternal struct {
	Title    string `validate:"required,max=128"`
	Text     string
	PostDate string `validate:"omitempty,datetime=2006-01-02"`
}

// parsePostDate converts an already validated form value. Empty input
// yields a null date.
func parsePostDate(raw string) pgtype.Date {
	if raw == "" {
		return pgtype.Date{}
	}
	t, err := time.Parse(formDateLayout, raw)
	if err != nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: t, Valid: true}
}
