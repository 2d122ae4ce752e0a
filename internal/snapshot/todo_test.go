package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliemarlow/APIProjects/internal/repo"
)

func TestLoadTodoReplaysListsAndItems(t *testing.T) {
	r := repo.NewMemTodoRepo()
	doc := ListsDoc{Lists: []ListDoc{
		{Name: "groceries", Description: "weekly", Items: []ItemDoc{
			{Task: "milk"},
			{Task: "coffee", IsFinished: true},
		}},
		{Name: "reading", Description: "books"},
	}}

	require.NoError(t, LoadTodo(r, doc))

	lists := r.Lists(nil, nil)
	require.Len(t, lists, 2)
	assert.Equal(t, int64(0), lists[0].ID)
	assert.Equal(t, "groceries", lists[0].Name)
	assert.Equal(t, int64(1), lists[1].ID)

	items, err := r.Items(0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(0), items[0].ID)
	assert.False(t, items[0].IsFinished)
	assert.True(t, items[1].IsFinished)

	items, err = r.Items(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadTodoFromFilesMissingFile(t *testing.T) {
	r := repo.NewMemTodoRepo()
	assert.Error(t, LoadTodoFromFiles(r, "does-not-exist.json"))
}
