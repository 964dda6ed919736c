package post_repository

import (
	"context"

	"blogging-service/internal/model"
)

// FieldKind is the declared type of a queryable post column. The
// generic query endpoint coerces path values according to it.
type FieldKind int

const (
	FieldKindInt FieldKind = iota
	FieldKindString
	FieldKindDate
)

// QueryableFields is the allow-list for the generic query endpoint:
// every store-known post column and how its values are compared.
var QueryableFields = map[string]FieldKind{
	"id":            FieldKindInt,
	"author":        FieldKindInt,
	"title":         FieldKindString,
	"text":          FieldKindString,
	"post_date":     FieldKindDate,
	"created_date":  FieldKindDate,
	"modified_date": FieldKindDate,
}

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
	// Query applies a validated (command, field, value) triple. Field
	// must be a QueryableFields key and value must already be coerced
	// to the field's kind (int64, string or pgtype.Date).
	Query(ctx context.Context, command model.QueryCommand, field string, value any) ([]*model.Post, error)
}
