package category_service

import (
	"context"

	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	category_repository "blogging-service/internal/repository/category"
)

type CategoryService struct {
	categoryRepo category_repository.Repository
	log          *logger.Logger
}

func NewCategoryService(categoryRepo category_repository.Repository, log *logger.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, log: log}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*model.CategoryDetailed, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	titles, err := s.categoryRepo.PostTitles(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.CategoryDetailed{
		Category:   category,
		PostTitles: titles,
	}, nil
}
