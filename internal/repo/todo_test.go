package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestTodoRepoListIDsMonotonic(t *testing.T) {
	r := NewMemTodoRepo()

	a := r.AddList("groceries", "weekly")
	b := r.AddList("chores", "daily")
	assert.Equal(t, int64(0), a.ID)
	assert.Equal(t, int64(1), b.ID)

	require.NoError(t, r.DeleteList(a.ID))
	c := r.AddList("reading", "books")
	assert.Equal(t, int64(2), c.ID)
}

func TestTodoRepoSearchFilters(t *testing.T) {
	r := NewMemTodoRepo()
	r.AddList("groceries", "weekly")
	r.AddList("groceries", "monthly")
	r.AddList("chores", "weekly")

	all := r.Lists(nil, nil)
	assert.Len(t, all, 3)

	byName := r.Lists(strPtr("groceries"), nil)
	assert.Len(t, byName, 2)

	byDescription := r.Lists(nil, strPtr("weekly"))
	assert.Len(t, byDescription, 2)

	// Both filters must hold at once.
	both := r.Lists(strPtr("groceries"), strPtr("weekly"))
	require.Len(t, both, 1)
	assert.Equal(t, int64(0), both[0].ID)

	// Exact match only, no substring semantics.
	none := r.Lists(strPtr("grocer"), nil)
	assert.Empty(t, none)

	// A present empty filter matches nothing unless a field is empty.
	assert.Empty(t, r.Lists(strPtr(""), nil))
}

func TestTodoRepoItemLifecycle(t *testing.T) {
	r := NewMemTodoRepo()
	list := r.AddList("groceries", "weekly")

	item, err := r.AddItem(list.ID, "milk")
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.ID)
	assert.False(t, item.IsFinished)

	// Finish it, then explicitly unfinish with a present false.
	updated, err := r.UpdateItem(list.ID, item.ID, nil, boolPtr(true))
	require.NoError(t, err)
	assert.True(t, updated.IsFinished)

	updated, err = r.UpdateItem(list.ID, item.ID, nil, boolPtr(false))
	require.NoError(t, err)
	assert.False(t, updated.IsFinished)
	assert.Equal(t, "milk", updated.Task)

	updated, err = r.UpdateItem(list.ID, item.ID, strPtr("oat milk"), nil)
	require.NoError(t, err)
	assert.Equal(t, "oat milk", updated.Task)
	assert.False(t, updated.IsFinished)

	require.NoError(t, r.DeleteItem(list.ID, item.ID))
	_, err = r.FindItem(list.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	next, err := r.AddItem(list.ID, "bread")
	require.NoError(t, err)
	assert.Equal(t, int64(1), next.ID)
}

func TestTodoRepoItemScopedToList(t *testing.T) {
	r := NewMemTodoRepo()
	a := r.AddList("a", "first")
	b := r.AddList("b", "second")

	item, err := r.AddItem(a.ID, "task")
	require.NoError(t, err)

	_, err = r.FindItem(b.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Items(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoRepoUpdateListPartial(t *testing.T) {
	r := NewMemTodoRepo()
	list := r.AddList("groceries", "weekly")

	updated, err := r.UpdateList(list.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, list, updated)

	updated, err = r.UpdateList(list.ID, strPtr("errands"), nil)
	require.NoError(t, err)
	assert.Equal(t, "errands", updated.Name)
	assert.Equal(t, "weekly", updated.Description)

	_, err = r.UpdateList(99, strPtr("x"), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
