package repo

import (
	"sync"

	dom "github.com/charliemarlow/APIProjects/internal/domain"
	"github.com/charliemarlow/APIProjects/internal/dto"
)

// TodoRepo is the root registry of todo lists.
type TodoRepo interface {
	Lists(name, description *string) []dto.TodoListResponse
	AddList(name, description string) dto.TodoListResponse
	FindList(id int64) (dto.TodoListResponse, error)
	UpdateList(id int64, name, description *string) (dto.TodoListResponse, error)
	DeleteList(id int64) error

	Items(listID int64) ([]dto.TodoItemResponse, error)
	AddItem(listID int64, task string) (dto.TodoItemResponse, error)
	FindItem(listID, itemID int64) (dto.TodoItemResponse, error)
	UpdateItem(listID, itemID int64, task *string, isFinished *bool) (dto.TodoItemResponse, error)
	DeleteItem(listID, itemID int64) error
}

// MemTodoRepo keeps every list in memory behind one mutex, same discipline
// as MemBlogRepo.
type MemTodoRepo struct {
	mu         sync.Mutex
	lists      []*dom.TodoList
	nextListID int64
}

// NewMemTodoRepo returns an empty registry.
func NewMemTodoRepo() *MemTodoRepo {
	return &MemTodoRepo{}
}

// Lists returns projections of the lists matching both filters. A nil
// filter matches everything; a present one must equal the field exactly.
func (r *MemTodoRepo) Lists(name, description *string) []dto.TodoListResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]dto.TodoListResponse, 0, len(r.lists))
	for _, l := range r.lists {
		if name != nil && l.Name != *name {
			continue
		}
		if description != nil && l.Description != *description {
			continue
		}
		out = append(out, dto.NewTodoListResponse(l))
	}
	return out
}

// AddList creates a list with the next global id.
func (r *MemTodoRepo) AddList(name, description string) dto.TodoListResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := dom.NewTodoList(r.nextListID, name, description)
	r.nextListID++
	r.lists = append(r.lists, l)
	return dto.NewTodoListResponse(l)
}

// FindList returns the projection of the list with the given id.
func (r *MemTodoRepo) FindList(id int64) (dto.TodoListResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.findList(id)
	if l == nil {
		return dto.TodoListResponse{}, ErrNotFound
	}
	return dto.NewTodoListResponse(l), nil
}

// UpdateList applies the non-nil fields. PUT semantics are expressed by
// passing both pointers.
func (r *MemTodoRepo) UpdateList(id int64, name, description *string) (dto.TodoListResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.findList(id)
	if l == nil {
		return dto.TodoListResponse{}, ErrNotFound
	}
	if name != nil {
		l.Name = *name
	}
	if description != nil {
		l.Description = *description
	}
	return dto.NewTodoListResponse(l), nil
}

// DeleteList removes the list and its items from traversal.
func (r *MemTodoRepo) DeleteList(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.lists {
		if l.ID == id {
			r.lists = append(r.lists[:i], r.lists[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Items returns the projections of a list's items in insertion order.
func (r *MemTodoRepo) Items(listID int64) ([]dto.TodoItemResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.findList(listID)
	if l == nil {
		return nil, ErrNotFound
	}
	out := make([]dto.TodoItemResponse, len(l.Items))
	for i, item := range l.Items {
		out[i] = dto.NewTodoItemResponse(item)
	}
	return out, nil
}

// AddItem appends an unfinished item to the list.
func (r *MemTodoRepo) AddItem(listID int64, task string) (dto.TodoItemResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.findList(listID)
	if l == nil {
		return dto.TodoItemResponse{}, ErrNotFound
	}
	return dto.NewTodoItemResponse(l.AddItem(task)), nil
}

// FindItem resolves the list then the item within it.
func (r *MemTodoRepo) FindItem(listID, itemID int64) (dto.TodoItemResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.findList(listID)
	if l == nil {
		return dto.TodoItemResponse{}, ErrNotFound
	}
	item := l.FindItem(itemID)
	if item == nil {
		return dto.TodoItemResponse{}, ErrNotFound
	}
	return dto.NewTodoItemResponse(item), nil
}

// UpdateItem applies the non-nil fields. An explicit false for isFinished
// is applied, unlike the truthiness checks this replaces.
func (r *MemTodoRepo) UpdateItem(listID, itemID int64, task *string, isFinished *bool) (dto.TodoItemResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.findList(listID)
	if l == nil {
		return dto.TodoItemResponse{}, ErrNotFound
	}
	item := l.FindItem(itemID)
	if item == nil {
		return dto.TodoItemResponse{}, ErrNotFound
	}
	if task != nil {
		item.Task = *task
	}
	if isFinished != nil {
		item.IsFinished = *isFinished
	}
	return dto.NewTodoItemResponse(item), nil
}

// DeleteItem removes one item from the list.
func (r *MemTodoRepo) DeleteItem(listID, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.findList(listID)
	if l == nil {
		return ErrNotFound
	}
	if !l.DeleteItem(itemID) {
		return ErrNotFound
	}
	return nil
}

// Caller holds r.mu.
func (r *MemTodoRepo) findList(id int64) *dom.TodoList {
	for _, l := range r.lists {
		if l.ID == id {
			return l
		}
	}
	return nil
}
