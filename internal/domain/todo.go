package domain

// TodoList is the root entity of the todo graph. Items carry ids from the
// per-list counter; a deleted item's id is never reused.
type TodoList struct {
	ID          int64
	Name        string
	Description string
	Items       []*TodoItem

	nextItemID int64
}

// TodoItem is a flat child record of a TodoList.
type TodoItem struct {
	ID         int64
	Task       string
	IsFinished bool
}

// NewTodoList constructs a root list. Ids are handed out by the repo counter.
func NewTodoList(id int64, name, description string) *TodoList {
	return &TodoList{ID: id, Name: name, Description: description}
}

// AddItem appends an unfinished item, allocating the next per-list id.
func (l *TodoList) AddItem(task string) *TodoItem {
	item := &TodoItem{ID: l.nextItemID, Task: task}
	l.nextItemID++
	l.Items = append(l.Items, item)
	return item
}

// FindItem returns the item with the given id, or nil.
func (l *TodoList) FindItem(id int64) *TodoItem {
	for _, item := range l.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// DeleteItem removes the item with the given id. Returns false if absent.
func (l *TodoList) DeleteItem(id int64) bool {
	for i, item := range l.Items {
		if item.ID == id {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}
