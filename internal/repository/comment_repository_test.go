package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comment-threads/internal/domain"
	"comment-threads/internal/repository"
)

var (
	reviewItem = domain.ContentItem{Kind: domain.ContentKindReview, ID: "rev-42"}
	urlItem    = domain.ContentItem{Kind: domain.ContentKindURL, ID: "https://example.com/a"}
)

func newComment(item domain.ContentItem, parentID *int64, body string) domain.NewComment {
	avatar := "avatars/alice.png"
	return domain.NewComment{
		ParentID:    parentID,
		ContentItem: item,
		AuthorID:    "user-alice",
		AuthorRole:  domain.RoleUser,
		Author: domain.AuthorProfile{
			DisplayName: "Alice",
			Handle:      "alice",
			AvatarRef:   &avatar,
		},
		Body: body,
	}
}

func byID(rows []domain.CommentRow) map[int64]domain.CommentRow {
	m := make(map[int64]domain.CommentRow, len(rows))
	for _, r := range rows {
		m[r.ID] = r
	}
	return m
}

// runCommentRepositoryTests exercises behavior shared by every store. fresh
// returns an empty repository for each subtest.
func runCommentRepositoryTests(t *testing.T, fresh func(t *testing.T) repository.CommentRepository) {
	ctx := context.Background()

	t.Run("create root and reply then fetch", func(t *testing.T) {
		repo := fresh(t)

		root, err := repo.Create(ctx, newComment(reviewItem, nil, "first"))
		require.NoError(t, err)
		assert.Positive(t, root.ID)
		assert.Nil(t, root.ParentID)
		assert.False(t, root.CreatedAt.IsZero())
		assert.Equal(t, time.UTC, root.CreatedAt.Location())

		reply, err := repo.Create(ctx, newComment(reviewItem, &root.ID, "second"))
		require.NoError(t, err)
		require.NotNil(t, reply.ParentID)
		assert.Equal(t, root.ID, *reply.ParentID)
		assert.Greater(t, reply.ID, root.ID)

		rows, err := repo.FetchByContentItem(ctx, reviewItem)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		got := byID(rows)
		assert.Equal(t, "first", got[root.ID].Body)
		assert.Equal(t, reviewItem, got[root.ID].ContentItem)
		assert.Equal(t, domain.RoleUser, got[root.ID].AuthorRole)
		assert.Equal(t, "Alice", got[root.ID].Author.DisplayName)
		assert.Equal(t, "alice", got[root.ID].Author.Handle)
		require.NotNil(t, got[root.ID].Author.AvatarRef)
		assert.Equal(t, "avatars/alice.png", *got[root.ID].Author.AvatarRef)
		assert.True(t, got[root.ID].CreatedAt.Equal(root.CreatedAt))

		require.NotNil(t, got[reply.ID].ParentID)
		assert.Equal(t, root.ID, *got[reply.ID].ParentID)
	})

	t.Run("fetch is scoped to the content item", func(t *testing.T) {
		repo := fresh(t)

		_, err := repo.Create(ctx, newComment(reviewItem, nil, "on review"))
		require.NoError(t, err)
		_, err = repo.Create(ctx, newComment(urlItem, nil, "on url"))
		require.NoError(t, err)

		rows, err := repo.FetchByContentItem(ctx, urlItem)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "on url", rows[0].Body)

		rows, err = repo.FetchByContentItem(ctx, domain.ContentItem{Kind: domain.ContentKindReview, ID: "empty"})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("reply to missing parent", func(t *testing.T) {
		repo := fresh(t)

		missing := int64(9999)
		_, err := repo.Create(ctx, newComment(reviewItem, &missing, "orphan"))
		assert.ErrorIs(t, err, domain.ErrParentNotFound)

		rows, err := repo.FetchByContentItem(ctx, reviewItem)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("reply to parent on another content item", func(t *testing.T) {
		repo := fresh(t)

		other, err := repo.Create(ctx, newComment(urlItem, nil, "elsewhere"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, newComment(reviewItem, &other.ID, "cross"))
		assert.ErrorIs(t, err, domain.ErrParentNotFound)
	})

	t.Run("author profile is refreshed on each post", func(t *testing.T) {
		repo := fresh(t)

		first := newComment(reviewItem, nil, "one")
		_, err := repo.Create(ctx, first)
		require.NoError(t, err)

		second := newComment(reviewItem, nil, "two")
		second.Author = domain.AuthorProfile{DisplayName: "Alice B.", Handle: "aliceb"}
		_, err = repo.Create(ctx, second)
		require.NoError(t, err)

		rows, err := repo.FetchByContentItem(ctx, reviewItem)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, r := range rows {
			assert.Equal(t, "Alice B.", r.Author.DisplayName)
			assert.Equal(t, "aliceb", r.Author.Handle)
			assert.Nil(t, r.Author.AvatarRef)
		}
	})

	t.Run("delete leaves replies in place", func(t *testing.T) {
		repo := fresh(t)

		root, err := repo.Create(ctx, newComment(reviewItem, nil, "root"))
		require.NoError(t, err)
		reply, err := repo.Create(ctx, newComment(reviewItem, &root.ID, "reply"))
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, root.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		rows, err := repo.FetchByContentItem(ctx, reviewItem)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, reply.ID, rows[0].ID)
		require.NotNil(t, rows[0].ParentID)
		assert.Equal(t, root.ID, *rows[0].ParentID)

		deleted, err = repo.Delete(ctx, root.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("admin role is stored", func(t *testing.T) {
		repo := fresh(t)

		c := newComment(reviewItem, nil, "official")
		c.AuthorID = "admin-1"
		c.AuthorRole = domain.RoleAdmin
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)

		rows, err := repo.FetchByContentItem(ctx, reviewItem)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.RoleAdmin, rows[0].AuthorRole)
	})
}

func TestSQLiteCommentRepository(t *testing.T) {
	runCommentRepositoryTests(t, func(t *testing.T) repository.CommentRepository {
		return repository.NewSQLiteCommentRepository(setupSQLite(t))
	})
}

func TestSQLiteCommentRepository_Clock(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.FixedZone("CET", 3600))

	repo := repository.NewSQLiteCommentRepository(setupSQLite(t)).
		WithClock(func() time.Time { return fixed })

	created, err := repo.Create(ctx, newComment(reviewItem, nil, "timed"))
	require.NoError(t, err)
	assert.True(t, created.CreatedAt.Equal(fixed))
	assert.Equal(t, time.UTC, created.CreatedAt.Location())

	rows, err := repo.FetchByContentItem(ctx, reviewItem)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].CreatedAt.Equal(fixed))
}

func TestSQLiteCommentRepository_ContextCancelled(t *testing.T) {
	repo := repository.NewSQLiteCommentRepository(setupSQLite(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchByContentItem(ctx, reviewItem)
	assert.Error(t, err)
}

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresCommentRepository(testDB.Pool)

	runCommentRepositoryTests(t, func(t *testing.T) repository.CommentRepository {
		testDB.TruncateTables(t, "comments", "authors")
		return repo
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(context.Background()))
	})
}
