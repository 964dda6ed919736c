package post_service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/model"
	post_repository "blogging-service/internal/repository/post"
)

const queryDateLayout = "2006-01-02"

// ResolveQuery runs the generic (command, field, value) endpoint.
// Commands and fields come from an explicit allow-list rather than
// open string dispatch; values are coerced to the field's declared
// type before reaching the store.
func (s *PostService) ResolveQuery(ctx context.Context, query model.PostQuery) (posts []*model.Post, err error) {
	defer func() { s.metrics.IncrementPostOperations("query", err == nil) }()

	switch query.Command {
	case model.QueryCommandFilter, model.QueryCommandExclude:
	default:
		s.log.Debug("Unknown query command", slog.String("command", string(query.Command)))
		return nil, custom_errors.ErrInvalidQueryCommand
	}

	kind, ok := post_repository.QueryableFields[query.Field]
	if !ok {
		s.log.Debug("Unknown query field", slog.String("field", query.Field))
		return nil, custom_errors.ErrInvalidQueryField
	}

	value, err := coerceQueryValue(kind, query.Value)
	if err != nil {
		s.log.Debug("Malformed query value",
			slog.String("field", query.Field),
			slog.String("value", query.Value))
		return nil, err
	}

	return s.postRepo.Query(ctx, query.Command, query.Field, value)
}

func coerceQueryValue(kind post_repository.FieldKind, raw string) (any, error) {
	switch kind {
	case post_repository.FieldKindInt:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, custom_errors.ErrInvalidQueryValue
		}
		return v, nil
	case post_repository.FieldKindDate:
		t, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			return nil, custom_errors.ErrInvalidQueryValue
		}
		return pgtype.Date{Time: t, Valid: true}, nil
	default:
		return raw, nil
	}
}
