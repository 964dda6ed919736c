package category_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	category_repository_mock "blogging-service/mocks/category"
)

func TestCategoryService_ListCategories(t *testing.T) {
	log := logger.New("test")

	categoryRepo := new(category_repository_mock.Repository)
	want := []*model.Category{{ID: 1, Name: "go"}, {ID: 2, Name: "sql"}}
	categoryRepo.On("List", mock.Anything).Return(want, nil)

	s := NewCategoryService(categoryRepo, log)
	got, err := s.ListCategories(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCategoryService_GetCategory(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name        string
		mocks       func(categoryRepo *category_repository_mock.Repository)
		id          int64
		want        *model.CategoryDetailed
		wantErr     bool
		wantErrType error
	}{
		{
			name: "missing category",
			mocks: func(categoryRepo *category_repository_mock.Repository) {
				categoryRepo.On("GetByID", mock.Anything, int64(42)).
					Return(nil, custom_errors.ErrCategoryNotFound)
			},
			id:          42,
			wantErr:     true,
			wantErrType: custom_errors.ErrCategoryNotFound,
		},
		{
			name: "category with attached post titles",
			mocks: func(categoryRepo *category_repository_mock.Repository) {
				categoryRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Category{ID: 1, Name: "go"}, nil)
				categoryRepo.On("PostTitles", mock.Anything, int64(1)).
					Return([]string{"First", "Second"}, nil)
			},
			id: 1,
			want: &model.CategoryDetailed{
				Category:   &model.Category{ID: 1, Name: "go"},
				PostTitles: []string{"First", "Second"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categoryRepo := new(category_repository_mock.Repository)
			tt.mocks(categoryRepo)

			s := NewCategoryService(categoryRepo, log)
			got, err := s.GetCategory(context.Background(), tt.id)

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
