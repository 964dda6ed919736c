package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

func newTestRepo(t *testing.T) *PostRepository {
	t.Helper()
	return NewPostRepository(logger.New("test"))
}

func dateDaysAgo(days int) pgtype.Date {
	return pgtype.Date{Time: time.Now().AddDate(0, 0, -days), Valid: true}
}

func seedPost(t *testing.T, repo *PostRepository, authorID int64, title string, postDate pgtype.Date) *model.Post {
	t.Helper()
	created, err := repo.Create(context.Background(), &model.Post{
		AuthorID: authorID,
		Title:    title,
		PostDate: postDate,
	})
	require.NoError(t, err)
	return created
}

func TestPostRepository_List_PublishedNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Insert out of order so the ordering cannot come from insertion.
	seedPost(t, repo, 1, "45 days old", dateDaysAgo(45))
	seedPost(t, repo, 1, "15 days old", dateDaysAgo(15))
	seedPost(t, repo, 2, "75 days old", dateDaysAgo(75))
	seedPost(t, repo, 2, "30 days old", dateDaysAgo(30))
	seedPost(t, repo, 1, "60 days old", dateDaysAgo(60))
	seedPost(t, repo, 1, "draft", pgtype.Date{})

	posts, err := repo.List(ctx, model.PostFilters{PublishedOnly: true, NewestFirst: true})
	require.NoError(t, err)

	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"15 days old", "30 days old", "45 days old", "60 days old", "75 days old"}, titles)
}

func TestPostRepository_List_SameDateFallsBackToNewestID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	day := dateDaysAgo(3)
	seedPost(t, repo, 1, "first of the day", day)
	seedPost(t, repo, 2, "second of the day", day)
	seedPost(t, repo, 1, "third of the day", day)

	posts, err := repo.List(ctx, model.PostFilters{PublishedOnly: true, NewestFirst: true})
	require.NoError(t, err)

	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"third of the day", "second of the day", "first of the day"}, titles)
}

func TestPostRepository_List_ViewerScopes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedPost(t, repo, 1, "mine published", dateDaysAgo(1))
	seedPost(t, repo, 1, "mine draft", pgtype.Date{})
	seedPost(t, repo, 2, "theirs published", dateDaysAgo(2))

	authorID := int64(1)

	published, err := repo.List(ctx, model.PostFilters{AuthorID: &authorID, PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "mine published", published[0].Title)

	drafts, err := repo.List(ctx, model.PostFilters{AuthorID: &authorID, UnpublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "mine draft", drafts[0].Title)

	all, err := repo.List(ctx, model.PostFilters{AuthorID: &authorID})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPostRepository_Query_FilterByDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	target := pgtype.Date{Time: day, Valid: true}

	seedPost(t, repo, 1, "on the day", target)
	seedPost(t, repo, 1, "other day", pgtype.Date{Time: day.AddDate(0, 0, 1), Valid: true})
	seedPost(t, repo, 1, "draft", pgtype.Date{})

	posts, err := repo.Query(ctx, model.QueryCommandFilter, "post_date", target)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "on the day", posts[0].Title)
}

func TestPostRepository_Query_ExcludeKeepsNullDates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	target := pgtype.Date{Time: day, Valid: true}

	seedPost(t, repo, 1, "on the day", target)
	seedPost(t, repo, 1, "other day", pgtype.Date{Time: day.AddDate(0, 0, 1), Valid: true})
	seedPost(t, repo, 1, "draft", pgtype.Date{})

	posts, err := repo.Query(ctx, model.QueryCommandExclude, "post_date", target)
	require.NoError(t, err)

	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	// The draft's null date does not equal the excluded value, so the
	// draft stays in the result.
	assert.ElementsMatch(t, []string{"other day", "draft"}, titles)
}

func TestPostRepository_Query_FilterByAuthor(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedPost(t, repo, 1, "first", dateDaysAgo(1))
	seedPost(t, repo, 2, "second", dateDaysAgo(2))
	seedPost(t, repo, 1, "third", pgtype.Date{})

	posts, err := repo.Query(ctx, model.QueryCommandFilter, "author", int64(1))
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Title)
	assert.Equal(t, "third", posts[1].Title)
}

func TestPostRepository_Query_UnknownField(t *testing.T) {
	repo := newTestRepo(t)
	seedPost(t, repo, 1, "first", dateDaysAgo(1))

	_, err := repo.Query(context.Background(), model.QueryCommandFilter, "password", "x")
	assert.ErrorIs(t, err, custom_errors.ErrInvalidQueryField)
}

func TestPostRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := seedPost(t, repo, 1, "before", pgtype.Date{})

	newTitle := "after"
	publishDate := dateDaysAgo(0)
	updated, err := repo.Update(ctx, created.ID, &model.UpdatePostDTO{
		Title:    &newTitle,
		PostDate: &publishDate,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.AuthorID, updated.AuthorID)
	assert.Equal(t, created.CreatedDate, updated.CreatedDate)
	assert.Equal(t, "after", updated.Title)
	assert.True(t, updated.PostDate.Valid)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}
