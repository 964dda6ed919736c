package post_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	category_repository_mock "blogging-service/mocks/category"
	comment_repository_mock "blogging-service/mocks/comment"
	post_repository_mock "blogging-service/mocks/post"
	postgres_mock "blogging-service/mocks/postgres"
	user_repository_mock "blogging-service/mocks/user"
)

func TestPostService_ResolveQuery(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository)
		query       model.PostQuery
		want        []*model.Post
		wantErr     bool
		wantErrType error
	}{
		{
			name:        "unknown command is rejected",
			mocks:       func(postRepo *post_repository_mock.Repository) {},
			query:       model.PostQuery{Command: "destroy", Field: "id", Value: "1"},
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidQueryCommand,
		},
		{
			name:        "unknown field is rejected",
			mocks:       func(postRepo *post_repository_mock.Repository) {},
			query:       model.PostQuery{Command: model.QueryCommandFilter, Field: "password", Value: "x"},
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidQueryField,
		},
		{
			name:        "non-numeric value for an int field is rejected",
			mocks:       func(postRepo *post_repository_mock.Repository) {},
			query:       model.PostQuery{Command: model.QueryCommandFilter, Field: "author", Value: "bob"},
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidQueryValue,
		},
		{
			name:        "malformed date is rejected",
			mocks:       func(postRepo *post_repository_mock.Repository) {},
			query:       model.PostQuery{Command: model.QueryCommandExclude, Field: "post_date", Value: "yesterday"},
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidQueryValue,
		},
		{
			name: "int field is coerced before reaching the store",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Query", mock.Anything, model.QueryCommandFilter, "author", int64(7)).
					Return([]*model.Post{{ID: 1, AuthorID: 7}}, nil)
			},
			query: model.PostQuery{Command: model.QueryCommandFilter, Field: "author", Value: "7"},
			want:  []*model.Post{{ID: 1, AuthorID: 7}},
		},
		{
			name: "date field is coerced before reaching the store",
			mocks: func(postRepo *post_repository_mock.Repository) {
				day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
				postRepo.On("Query", mock.Anything, model.QueryCommandExclude, "post_date", pgtype.Date{Time: day, Valid: true}).
					Return([]*model.Post{{ID: 2}}, nil)
			},
			query: model.PostQuery{Command: model.QueryCommandExclude, Field: "post_date", Value: "2024-05-01"},
			want:  []*model.Post{{ID: 2}},
		},
		{
			name: "string field passes through untouched",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Query", mock.Anything, model.QueryCommandFilter, "title", "Hello").
					Return([]*model.Post{{ID: 3, Title: "Hello"}}, nil)
			},
			query: model.PostQuery{Command: model.QueryCommandFilter, Field: "title", Value: "Hello"},
			want:  []*model.Post{{ID: 3, Title: "Hello"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			commentRepo := new(comment_repository_mock.Repository)
			categoryRepo := new(category_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)

			tt.mocks(postRepo)

			s := NewPostService(postRepo, commentRepo, categoryRepo, userRepo, uow, newMetricsStub(), log)
			got, err := s.ResolveQuery(context.Background(), tt.query)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %T, got %T", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
