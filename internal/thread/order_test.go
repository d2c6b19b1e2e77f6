package thread

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comment-threads/internal/domain"
)

func snapshot(f *Forest) [][]int64 {
	out := [][]int64{ids(f, f.Roots())}
	for i := 0; i < f.Len(); i++ {
		out = append(out, ids(f, f.Node(i).Children))
	}
	return out
}

func TestOrder(t *testing.T) {
	t.Run("ties break by ascending id at both levels", func(t *testing.T) {
		rows := []domain.CommentRow{
			row(9, 0, 10), row(3, 0, 10), row(5, 0, 10),
			row(20, 3, 11), row(12, 3, 11), row(15, 3, 11),
		}
		f, _ := BuildThreadForest(rows)

		assert.Equal(t, []int64{3, 5, 9}, ids(f, f.Roots()))
		assert.Equal(t, []int64{12, 15, 20}, childIDs(f, 3))
	})

	t.Run("admin comments get no priority", func(t *testing.T) {
		admin := row(2, 0, 1)
		admin.AuthorRole = domain.RoleAdmin
		f, _ := BuildThreadForest([]domain.CommentRow{row(1, 0, 5), admin})

		assert.Equal(t, []int64{1, 2}, ids(f, f.Roots()))
	})

	t.Run("nested replies use oldest first", func(t *testing.T) {
		rows := []domain.CommentRow{
			row(1, 0, 1), row(2, 1, 2), row(3, 2, 30), row(4, 2, 20), row(5, 2, 25),
		}
		f, _ := BuildThreadForest(rows)
		assert.Equal(t, []int64{4, 5, 3}, childIDs(f, 2))
	})

	t.Run("idempotent", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for iter := 0; iter < 20; iter++ {
			f, _ := BuildThreadForest(randomRows(rng, 40))
			once := snapshot(f)
			Order(f)
			require.Equal(t, once, snapshot(f))
		}
	})
}
