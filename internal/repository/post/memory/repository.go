package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

const dateLayout = "2006-01-02"

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Date{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:           p.nextID,
		AuthorID:     post.AuthorID,
		Title:        post.Title,
		Text:         post.Text,
		CreatedDate:  now,
		ModifiedDate: now,
		PostDate:     post.PostDate,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Text != nil {
		post.Text = update.Text
	}
	if update.PostDate != nil {
		post.PostDate = *update.PostDate
	}

	post.ModifiedDate = pgtype.Date{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if filters.AuthorID != nil && post.AuthorID != *filters.AuthorID {
			continue
		}
		if filters.PublishedOnly && !post.PostDate.Valid {
			continue
		}
		if filters.UnpublishedOnly && post.PostDate.Valid {
			continue
		}

		postCopy := *post
		result = append(result, &postCopy)
	}

	if filters.NewestFirst {
		sort.Slice(result, func(i, j int) bool {
			// Same-date posts fall back to id so the order is stable.
			if result[i].PostDate.Time.Equal(result[j].PostDate.Time) {
				return result[i].ID > result[j].ID
			}
			return result[i].PostDate.Time.After(result[j].PostDate.Time)
		})
	} else {
		sort.Slice(result, func(i, j int) bool {
			return result[i].ID < result[j].ID
		})
	}

	return result, nil
}

func (p *PostRepository) Query(ctx context.Context, command model.QueryCommand, field string, value any) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		matched, isNull, err := fieldMatches(post, field, value)
		if err != nil {
			return nil, err
		}

		switch command {
		case model.QueryCommandFilter:
			if !matched || isNull {
				continue
			}
		case model.QueryCommandExclude:
			// A null field never equals the value, so the row survives
			// an exclude.
			if matched {
				continue
			}
		default:
			return nil, custom_errors.ErrInvalidQueryCommand
		}

		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func fieldMatches(post *model.Post, field string, value any) (matched bool, isNull bool, err error) {
	switch field {
	case "id":
		v, ok := value.(int64)
		return ok && post.ID == v, false, nil
	case "author":
		v, ok := value.(int64)
		return ok && post.AuthorID == v, false, nil
	case "title":
		v, ok := value.(string)
		return ok && post.Title == v, false, nil
	case "text":
		if post.Text == nil {
			return false, true, nil
		}
		v, ok := value.(string)
		return ok && *post.Text == v, false, nil
	case "post_date":
		return dateMatches(post.PostDate, value)
	case "created_date":
		return dateMatches(post.CreatedDate, value)
	case "modified_date":
		return dateMatches(post.ModifiedDate, value)
	default:
		return false, false, custom_errors.ErrInvalidQueryField
	}
}

func dateMatches(d pgtype.Date, value any) (matched bool, isNull bool, err error) {
	if !d.Valid {
		return false, true, nil
	}
	v, ok := value.(pgtype.Date)
	if !ok {
		return false, false, custom_errors.ErrInvalidQueryValue
	}
	return d.Time.Format(dateLayout) == v.Time.Format(dateLayout), false, nil
}
