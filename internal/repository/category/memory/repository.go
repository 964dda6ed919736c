package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

type CategoryRepository struct {
	log        *logger.Logger
	mu         sync.RWMutex
	categories map[int64]*model.Category
	postLinks  map[int64][]int64 // category id -> post ids
	postTitles map[int64]string
	nextID     int64
}

func NewCategoryRepository(log *logger.Logger) *CategoryRepository {
	return &CategoryRepository{
		log:        log,
		categories: make(map[int64]*model.Category),
		postLinks:  make(map[int64][]int64),
		postTitles: make(map[int64]string),
		nextID:     1,
	}
}

// Seed inserts a category. Categories have no write path in the
// service, so fixtures go in through this concrete helper.
func (c *CategoryRepository) Seed(category *model.Category) *model.Category {
	c.mu.Lock()
	defer c.mu.Unlock()

	newCategory := &model.Category{
		ID:          c.nextID,
		Name:        category.Name,
		Description: category.Description,
	}
	c.nextID++
	c.categories[newCategory.ID] = newCategory

	result := *newCategory
	return &result
}

// AttachPost links a post to a category, fixture-side counterpart of
// the admin panel's many-to-many editor.
func (c *CategoryRepository) AttachPost(categoryID, postID int64, postTitle string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.postLinks[categoryID] = append(c.postLinks[categoryID], postID)
	c.postTitles[postID] = postTitle
}

func (c *CategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*model.Category
	for _, category := range c.categories {
		categoryCopy := *category
		result = append(result, &categoryCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

func (c *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	category, exists := c.categories[id]
	if !exists {
		c.log.Debug("Category not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrCategoryNotFound
	}

	result := *category
	return &result, nil
}

func (c *CategoryRepository) PostTitles(ctx context.Context, categoryID int64) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var titles []string
	for _, postID := range c.postLinks[categoryID] {
		titles = append(titles, c.postTitles[postID])
	}

	return titles, nil
}

func (c *CategoryRepository) GetByPost(ctx context.Context, postID int64) ([]*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*model.Category
	for categoryID, postIDs := range c.postLinks {
		for _, id := range postIDs {
			if id == postID {
				categoryCopy := *c.categories[categoryID]
				result = append(result, &categoryCopy)
				break
			}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}
