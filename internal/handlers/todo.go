package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charliemarlow/APIProjects/internal/dto"
	"github.com/charliemarlow/APIProjects/internal/service"
)

// TodoHandler translates HTTP requests into todo service calls.
type TodoHandler struct {
	svc *service.TodoService
}

// NewTodoHandler returns a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// SearchLists godoc
// @Summary      List todo lists, optionally filtered by exact name/description
// @Tags         todolists
// @Produce      json
// @Param        name         query    string  false  "Exact name filter"
// @Param        description  query    string  false  "Exact description filter"
// @Success      200          {array}  dto.TodoListResponse
// @Router       /todolists [get]
func (h *TodoHandler) SearchLists(c *gin.Context) {
	var name, description *string
	if v, ok := c.GetQuery("name"); ok {
		name = &v
	}
	if v, ok := c.GetQuery("description"); ok {
		description = &v
	}
	lists, err := h.svc.Search(c.Request.Context(), name, description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// CreateList godoc
// @Summary      Create a todo list
// @Tags         todolists
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoListRequest  true  "List body"
// @Success      201   {object}  dto.TodoListResponse
// @Failure      400   {object}  map[string]string
// @Router       /todolists [post]
func (h *TodoHandler) CreateList(c *gin.Context) {
	var req dto.CreateTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list, err := h.svc.AddList(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// GetList godoc
// @Summary      Get a todo list
// @Tags         todolists
// @Produce      json
// @Param        listID  path      int  true  "List ID"
// @Success      200     {object}  dto.TodoListResponse
// @Failure      404     {object}  map[string]string
// @Router       /todolists/{listID} [get]
func (h *TodoHandler) GetList(c *gin.Context) {
	listID, ok := parseID(c, "listID")
	if !ok {
		return
	}
	list, err := h.svc.FindList(listID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ReplaceList godoc
// @Summary      Fully replace a todo list
// @Tags         todolists
// @Accept       json
// @Produce      json
// @Param        listID  path      int  true  "List ID"
// @Param        body    body      dto.ReplaceTodoListRequest  true  "Full list body"
// @Success      200     {object}  dto.TodoListResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /todolists/{listID} [put]
func (h *TodoHandler) ReplaceList(c *gin.Context) {
	listID, ok := parseID(c, "listID")
	if !ok {
		return
	}
	var req dto.ReplaceTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list, err := h.svc.ReplaceList(c.Request.Context(), listID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateList godoc
// @Summary      Partially update a todo list
// @Tags         todolists
// @Accept       json
// @Produce      json
// @Param        listID  path      int  true  "List ID"
// @Param        body    body      dto.UpdateTodoListRequest  true  "Fields to change"
// @Success      200     {object}  dto.TodoListResponse
// @Failure      404     {object}  map[string]string
// @Router       /todolists/{listID} [patch]
func (h *TodoHandler) UpdateList(c *gin.Context) {
	listID, ok := parseID(c, "listID")
	if !ok {
		return
	}
	var req dto.UpdateTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list, err := h.svc.UpdateList(c.Request.Context(), listID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteList godoc
// @Summary      Delete a todo list
// @Tags         todolists
// @Param        listID  path  int  true  "List ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /todolists/{listID} [delete]
func (h *TodoHandler) DeleteList(c *gin.Context) {
	listID, ok := parseID(c, "listID")
	if !ok {
		return
	}
	if err := h.svc.DeleteList(c.Request.Context(), listID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListItems godoc
// @Summary      List a todo list's items
// @Tags         todoitems
// @Produce      json
// @Param        listID  path     int  true  "List ID"
// @Success      200     {array}  dto.TodoItemResponse
// @Failure      404     {object} map[string]string
// @Router       /todolists/{listID}/todoitems [get]
func (h *TodoHandler) ListItems(c *gin.Context) {
	listID, ok := parseID(c, "listID")
	if !ok {
		return
	}
	items, err := h.svc.Items(listID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem godoc
// @Summary      Add an item to a todo list
// @Tags         todoitems
// @Accept       json
// @Produce      json
// @Param        listID  path      int  true  "List ID"
// @Param        body    body      dto.CreateTodoItemRequest  true  "Item body"
// @Success      201     {object}  dto.TodoItemResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /todolists/{listID}/todoitems [post]
func (h *TodoHandler) CreateItem(c *gin.Context) {
	listID, ok := parseID(c, "listID")
	if !ok {
		return
	}
	var req dto.CreateTodoItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.AddItem(listID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItem godoc
// @Summary      Get an item
// @Tags         todoitems
// @Produce      json
// @Param        listID  path      int  true  "List ID"
// @Param        itemID  path      int  true  "Item ID"
// @Success      200     {object}  dto.TodoItemResponse
// @Failure      404     {object}  map[string]string
// @Router       /todolists/{listID}/todoitems/{itemID} [get]
func (h *TodoHandler) GetItem(c *gin.Context) {
	listID, itemID, ok := parseItemPath(c)
	if !ok {
		return
	}
	item, err := h.svc.FindItem(listID, itemID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ReplaceItem godoc
// @Summary      Fully replace an item
// @Tags         todoitems
// @Accept       json
// @Produce      json
// @Param        listID  path      int  true  "List ID"
// @Param        itemID  path      int  true  "Item ID"
// @Param        body    body      dto.ReplaceTodoItemRequest  true  "Full item body"
// @Success      200     {object}  dto.TodoItemResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /todolists/{listID}/todoitems/{itemID} [put]
func (h *TodoHandler) ReplaceItem(c *gin.Context) {
	listID, itemID, ok := parseItemPath(c)
	if !ok {
		return
	}
	var req dto.ReplaceTodoItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.ReplaceItem(listID, itemID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem godoc
// @Summary      Partially update an item (typically marking it finished)
// @Tags         todoitems
// @Accept       json
// @Produce      json
// @Param        listID  path      int  true  "List ID"
// @Param        itemID  path      int  true  "Item ID"
// @Param        body    body      dto.UpdateTodoItemRequest  true  "Fields to change"
// @Success      200     {object}  dto.TodoItemResponse
// @Failure      404     {object}  map[string]string
// @Router       /todolists/{listID}/todoitems/{itemID} [patch]
func (h *TodoHandler) UpdateItem(c *gin.Context) {
	listID, itemID, ok := parseItemPath(c)
	if !ok {
		return
	}
	var req dto.UpdateTodoItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.UpdateItem(listID, itemID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem godoc
// @Summary      Delete an item
// @Tags         todoitems
// @Param        listID  path  int  true  "List ID"
// @Param        itemID  path  int  true  "Item ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /todolists/{listID}/todoitems/{itemID} [delete]
func (h *TodoHandler) DeleteItem(c *gin.Context) {
	listID, itemID, ok := parseItemPath(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteItem(listID, itemID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseItemPath(c *gin.Context) (listID, itemID int64, ok bool) {
	listID, ok = parseID(c, "listID")
	if !ok {
		return 0, 0, false
	}
	itemID, ok = parseID(c, "itemID")
	if !ok {
		return 0, 0, false
	}
	return listID, itemID, true
}
