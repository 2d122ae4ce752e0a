package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/charliemarlow/APIProjects/internal/cache"
	"github.com/charliemarlow/APIProjects/internal/dto"
	"github.com/charliemarlow/APIProjects/internal/repo"
)

// TodoService owns validation for the todo API and the optional search
// cache. If c is nil, caching is disabled.
type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.SearchCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService.
func NewTodoService(r repo.TodoRepo, c *cache.SearchCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// Search returns projections of the lists matching both filters exactly;
// a nil filter matches everything. Results go through the cache when one
// is configured, with singleflight collapsing concurrent identical misses.
func (s *TodoService) Search(ctx context.Context, name, description *string) ([]dto.TodoListResponse, error) {
	if s.cache == nil {
		return s.repo.Lists(name, description), nil
	}
	key := cache.Key(name, description)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if lists, err := s.cache.Get(ctx, key); err == nil && lists != nil {
			return lists, nil
		}
		lists := s.repo.Lists(name, description)
		_ = s.cache.Set(ctx, key, lists)
		return lists, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dto.TodoListResponse), nil
}

// AddList creates a list; name and description must be non-empty.
func (s *TodoService) AddList(ctx context.Context, req dto.CreateTodoListRequest) (dto.TodoListResponse, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return dto.TodoListResponse{}, fmt.Errorf("name and description: %w", ErrEmptyField)
	}
	out := s.repo.AddList(name, description)
	s.invalidate(ctx)
	return out, nil
}

// FindList returns one list's projection.
func (s *TodoService) FindList(id int64) (dto.TodoListResponse, error) {
	out, err := s.repo.FindList(id)
	if err != nil {
		return dto.TodoListResponse{}, mapErr(err)
	}
	return out, nil
}

// ReplaceList overwrites both fields (PUT semantics).
func (s *TodoService) ReplaceList(ctx context.Context, id int64, req dto.ReplaceTodoListRequest) (dto.TodoListResponse, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return dto.TodoListResponse{}, fmt.Errorf("name and description: %w", ErrEmptyField)
	}
	out, err := s.repo.UpdateList(id, &name, &description)
	if err != nil {
		return dto.TodoListResponse{}, mapErr(err)
	}
	s.invalidate(ctx)
	return out, nil
}

// UpdateList applies the present fields (PATCH semantics).
func (s *TodoService) UpdateList(ctx context.Context, id int64, req dto.UpdateTodoListRequest) (dto.TodoListResponse, error) {
	out, err := s.repo.UpdateList(id, trimPtr(req.Name), trimPtr(req.Description))
	if err != nil {
		return dto.TodoListResponse{}, mapErr(err)
	}
	s.invalidate(ctx)
	return out, nil
}

// DeleteList removes the list and its items.
func (s *TodoService) DeleteList(ctx context.Context, id int64) error {
	if err := s.repo.DeleteList(id); err != nil {
		return mapErr(err)
	}
	s.invalidate(ctx)
	return nil
}

// Items lists a list's items.
func (s *TodoService) Items(listID int64) ([]dto.TodoItemResponse, error) {
	out, err := s.repo.Items(listID)
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// AddItem appends an unfinished item; the task must be non-empty.
func (s *TodoService) AddItem(listID int64, req dto.CreateTodoItemRequest) (dto.TodoItemResponse, error) {
	task := strings.TrimSpace(req.Task)
	if task == "" {
		return dto.TodoItemResponse{}, fmt.Errorf("task: %w", ErrEmptyField)
	}
	out, err := s.repo.AddItem(listID, task)
	if err != nil {
		return dto.TodoItemResponse{}, mapErr(err)
	}
	return out, nil
}

// FindItem returns one item's projection.
func (s *TodoService) FindItem(listID, itemID int64) (dto.TodoItemResponse, error) {
	out, err := s.repo.FindItem(listID, itemID)
	if err != nil {
		return dto.TodoItemResponse{}, mapErr(err)
	}
	return out, nil
}

// ReplaceItem overwrites both fields (PUT semantics).
func (s *TodoService) ReplaceItem(listID, itemID int64, req dto.ReplaceTodoItemRequest) (dto.TodoItemResponse, error) {
	task := strings.TrimSpace(req.Task)
	if task == "" {
		return dto.TodoItemResponse{}, fmt.Errorf("task: %w", ErrEmptyField)
	}
	out, err := s.repo.UpdateItem(listID, itemID, &task, req.IsFinished)
	if err != nil {
		return dto.TodoItemResponse{}, mapErr(err)
	}
	return out, nil
}

// UpdateItem applies the present fields; an explicit false unfinishes.
func (s *TodoService) UpdateItem(listID, itemID int64, req dto.UpdateTodoItemRequest) (dto.TodoItemResponse, error) {
	out, err := s.repo.UpdateItem(listID, itemID, trimPtr(req.Task), req.IsFinished)
	if err != nil {
		return dto.TodoItemResponse{}, mapErr(err)
	}
	return out, nil
}

// DeleteItem removes one item from the list.
func (s *TodoService) DeleteItem(listID, itemID int64) error {
	return mapErr(s.repo.DeleteItem(listID, itemID))
}

func (s *TodoService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}
