package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoListItemCounter(t *testing.T) {
	l := NewTodoList(0, "groceries", "weekly shop")

	a := l.AddItem("milk")
	b := l.AddItem("bread")
	assert.Equal(t, int64(0), a.ID)
	assert.Equal(t, int64(1), b.ID)
	assert.False(t, a.IsFinished)

	require.True(t, l.DeleteItem(0))
	assert.Nil(t, l.FindItem(0))

	c := l.AddItem("eggs")
	assert.Equal(t, int64(2), c.ID)
	assert.Len(t, l.Items, 2)
}

func TestTodoListDeleteItemAbsent(t *testing.T) {
	l := NewTodoList(0, "empty", "nothing here")
	assert.False(t, l.DeleteItem(0))
}
