package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comment-threads/internal/domain"
	"comment-threads/internal/mocks"
	"comment-threads/internal/service"
)

func exportRows() []domain.CommentRow {
	adminRow := row(4, 0, 40)
	adminRow.AuthorRole = domain.RoleAdmin
	adminRow.Body = "line one\nline \"two\""
	return []domain.CommentRow{row(1, 0, 10), row(2, 1, 20), row(3, 2, 30), adminRow}
}

func TestCommentService_StreamThread(t *testing.T) {
	ctx := context.Background()

	t.Run("ndjson in display order with absolute depth", func(t *testing.T) {
		repo := mocks.NewMockCommentRepository(t)
		repo.EXPECT().FetchByContentItem(mock.Anything, reviewItem).Return(exportRows(), nil)

		svc := service.NewCommentService(repo, nil, service.Options{MaxNestingDepth: 1})
		w := &bufferWriter{}
		count, err := svc.StreamThread(ctx, reviewItem, service.FormatNDJSON, w)

		require.NoError(t, err)
		assert.Equal(t, 4, count)
		assert.GreaterOrEqual(t, w.flushes, 1)

		lines := strings.Split(strings.TrimSpace(string(w.data)), "\n")
		require.Len(t, lines, 4)

		var got []service.ExportRecord
		for _, line := range lines {
			var rec service.ExportRecord
			require.NoError(t, json.Unmarshal([]byte(line), &rec))
			got = append(got, rec)
		}

		// Depth is not capped by the nesting limit in exports.
		assert.Equal(t, int64(4), got[0].ID)
		assert.Equal(t, 0, got[0].Depth)
		assert.True(t, got[0].IsAdminComment)
		assert.Equal(t, int64(1), got[1].ID)
		assert.Equal(t, int64(2), got[2].ID)
		assert.Equal(t, 1, got[2].Depth)
		assert.Equal(t, int64(3), got[3].ID)
		assert.Equal(t, 2, got[3].Depth)
	})

	t.Run("csv with header and quoted bodies", func(t *testing.T) {
		repo := mocks.NewMockCommentRepository(t)
		repo.EXPECT().FetchByContentItem(mock.Anything, reviewItem).Return(exportRows(), nil)

		svc := service.NewCommentService(repo, nil, service.Options{})
		w := &bufferWriter{}
		count, err := svc.StreamThread(ctx, reviewItem, service.FormatCSV, w)

		require.NoError(t, err)
		assert.Equal(t, 4, count)

		records, err := csv.NewReader(bytes.NewReader(w.data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 5)

		assert.Equal(t, []string{"id", "parent_id", "depth", "author_id", "author_name", "is_admin_comment", "body", "created_at"}, records[0])
		assert.Equal(t, []string{"4", "", "0", "u-alice", "Alice", "true", "line one\nline \"two\"", "2024-05-01T12:00:40Z"}, records[1])
		assert.Equal(t, "3", records[4][0])
		assert.Equal(t, "2", records[4][1])
		assert.Equal(t, "2", records[4][2])
	})

	t.Run("csv neutralizes formula-like text", func(t *testing.T) {
		formula := row(1, 0, 10)
		formula.Body = "=HYPERLINK(\"http://evil.example\")"
		formula.Author.DisplayName = "@admin"
		reply := row(2, 1, 20)
		reply.Body = "-1 for this"
		plain := row(3, 0, 30)
		plain.Body = "a = b"

		repo := mocks.NewMockCommentRepository(t)
		repo.EXPECT().FetchByContentItem(mock.Anything, reviewItem).
			Return([]domain.CommentRow{formula, reply, plain}, nil)

		svc := service.NewCommentService(repo, nil, service.Options{})
		w := &bufferWriter{}
		_, err := svc.StreamThread(ctx, reviewItem, service.FormatCSV, w)
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(w.data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 4)

		// roots newest first: 3, 1, then 1's reply 2
		assert.Equal(t, "a = b", records[1][6])
		assert.Equal(t, "'=HYPERLINK(\"http://evil.example\")", records[2][6])
		assert.Equal(t, "'@admin", records[2][4])
		assert.Equal(t, "'-1 for this", records[3][6])
	})

	t.Run("empty item writes only the csv header", func(t *testing.T) {
		repo := mocks.NewMockCommentRepository(t)
		repo.EXPECT().FetchByContentItem(mock.Anything, reviewItem).Return(nil, nil)

		svc := service.NewCommentService(repo, nil, service.Options{})
		w := &bufferWriter{}
		count, err := svc.StreamThread(ctx, reviewItem, service.FormatCSV, w)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.Equal(t, "id,parent_id,depth,author_id,author_name,is_admin_comment,body,created_at\n", string(w.data))
	})

	t.Run("unknown format", func(t *testing.T) {
		repo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(repo, nil, service.Options{})

		_, err := svc.StreamThread(ctx, reviewItem, "xml", &bufferWriter{})

		var malformed *domain.MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "format", malformed.Field)
	})

	t.Run("writer failure stops the export", func(t *testing.T) {
		repo := mocks.NewMockCommentRepository(t)
		repo.EXPECT().FetchByContentItem(mock.Anything, reviewItem).Return(exportRows(), nil)

		svc := service.NewCommentService(repo, nil, service.Options{})
		w := &bufferWriter{failAt: 2}
		count, err := svc.StreamThread(ctx, reviewItem, service.FormatNDJSON, w)

		assert.ErrorIs(t, err, errWriteFailed)
		assert.Equal(t, 1, count)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := mocks.NewMockCommentRepository(t)
		repo.EXPECT().FetchByContentItem(mock.Anything, reviewItem).Return(nil, errStoreDown)

		svc := service.NewCommentService(repo, nil, service.Options{})
		_, err := svc.StreamThread(ctx, reviewItem, service.FormatNDJSON, &bufferWriter{})

		var unavailable *domain.StorageUnavailableError
		assert.ErrorAs(t, err, &unavailable)
	})
}
