package dto

import dom "github.com/charliemarlow/APIProjects/internal/domain"

// CreateTodoListRequest is the JSON body for POST /todolists.
type CreateTodoListRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ReplaceTodoListRequest is the PUT body: every field mandatory.
type ReplaceTodoListRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateTodoListRequest is the PATCH body. nil = leave unchanged.
type UpdateTodoListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateTodoItemRequest is the JSON body for POST .../todoitems. New items
// always start unfinished.
type CreateTodoItemRequest struct {
	Task string `json:"task" binding:"required"`
}

// ReplaceTodoItemRequest is the PUT body for an item. IsFinished is a
// pointer so an explicit false passes the required check.
type ReplaceTodoItemRequest struct {
	Task       string `json:"task" binding:"required"`
	IsFinished *bool  `json:"isFinished" binding:"required"`
}

// UpdateTodoItemRequest is the PATCH body for an item.
type UpdateTodoItemRequest struct {
	Task       *string `json:"task"`
	IsFinished *bool   `json:"isFinished"`
}

// TodoListResponse is the list-level projection. Items are fetched through
// their own endpoint, never embedded here.
type TodoListResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TodoItemResponse is the projection of one item.
type TodoItemResponse struct {
	ID         int64  `json:"id"`
	Task       string `json:"task"`
	IsFinished bool   `json:"isFinished"`
}

// NewTodoListResponse builds the projection of l.
func NewTodoListResponse(l *dom.TodoList) TodoListResponse {
	return TodoListResponse{ID: l.ID, Name: l.Name, Description: l.Description}
}

// NewTodoItemResponse builds the projection of item.
func NewTodoItemResponse(item *dom.TodoItem) TodoItemResponse {
	return TodoItemResponse{ID: item.ID, Task: item.Task, IsFinished: item.IsFinished}
}
