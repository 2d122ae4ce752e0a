package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliemarlow/APIProjects/internal/repo"
	"github.com/charliemarlow/APIProjects/internal/service"
)

func newTodoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTodoHandler(service.NewTodoService(repo.NewMemTodoRepo(), nil))
	r := gin.New()

	r.GET("/todolists", h.SearchLists)
	r.POST("/todolists", h.CreateList)
	r.GET("/todolists/:listID", h.GetList)
	r.PUT("/todolists/:listID", h.ReplaceList)
	r.PATCH("/todolists/:listID", h.UpdateList)
	r.DELETE("/todolists/:listID", h.DeleteList)

	r.GET("/todolists/:listID/todoitems", h.ListItems)
	r.POST("/todolists/:listID/todoitems", h.CreateItem)
	r.GET("/todolists/:listID/todoitems/:itemID", h.GetItem)
	r.PUT("/todolists/:listID/todoitems/:itemID", h.ReplaceItem)
	r.PATCH("/todolists/:listID/todoitems/:itemID", h.UpdateItem)
	r.DELETE("/todolists/:listID/todoitems/:itemID", h.DeleteItem)

	return r
}

func createList(t *testing.T, r *gin.Engine, name, description string) float64 {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/todolists", gin.H{
		"name": name, "description": description,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)["id"].(float64)
}

func TestCreateListValidation(t *testing.T) {
	r := newTodoRouter()

	w := doJSON(t, r, http.MethodPost, "/todolists", gin.H{"name": "groceries"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/todolists", gin.H{"name": "groceries", "description": "weekly"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["id"])
}

func TestSearchListsQueryFilters(t *testing.T) {
	r := newTodoRouter()
	createList(t, r, "groceries", "weekly")
	createList(t, r, "groceries", "monthly")
	createList(t, r, "chores", "weekly")

	w := doJSON(t, r, http.MethodGet, "/todolists", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lists []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	assert.Len(t, lists, 3)

	w = doJSON(t, r, http.MethodGet, "/todolists?name=groceries", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	assert.Len(t, lists, 2)

	w = doJSON(t, r, http.MethodGet, "/todolists?name=groceries&description=weekly", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	require.Len(t, lists, 1)
	assert.Equal(t, float64(0), lists[0]["id"])

	// No matches still returns 200 with an empty array.
	w = doJSON(t, r, http.MethodGet, "/todolists?name=nope", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	assert.Empty(t, lists)
}

func TestReplaceListRequiresAllFields(t *testing.T) {
	r := newTodoRouter()
	createList(t, r, "groceries", "weekly")

	w := doJSON(t, r, http.MethodPut, "/todolists/0", gin.H{"name": "errands"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/todolists/0", gin.H{"name": "errands", "description": "daily"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "errands", body["name"])
	assert.Equal(t, "daily", body["description"])
}

func TestPatchListPartial(t *testing.T) {
	r := newTodoRouter()
	createList(t, r, "groceries", "weekly")

	w := doJSON(t, r, http.MethodPatch, "/todolists/0", gin.H{"description": "biweekly"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "groceries", body["name"])
	assert.Equal(t, "biweekly", body["description"])

	w = doJSON(t, r, http.MethodPatch, "/todolists/9", gin.H{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemEndpoints(t *testing.T) {
	r := newTodoRouter()
	createList(t, r, "groceries", "weekly")

	w := doJSON(t, r, http.MethodPost, "/todolists/0/todoitems", gin.H{"task": "milk"})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decode(t, w)
	assert.Equal(t, float64(0), item["id"])
	assert.Equal(t, false, item["isFinished"])

	w = doJSON(t, r, http.MethodPost, "/todolists/0/todoitems", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/todolists/0/todoitems/0", gin.H{"isFinished": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["isFinished"])

	// PUT needs both fields, and a present false is applied.
	w = doJSON(t, r, http.MethodPut, "/todolists/0/todoitems/0", gin.H{"task": "oat milk"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/todolists/0/todoitems/0", gin.H{"task": "oat milk", "isFinished": false})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "oat milk", body["task"])
	assert.Equal(t, false, body["isFinished"])

	w = doJSON(t, r, http.MethodDelete, "/todolists/0/todoitems/0", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/todolists/0/todoitems/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemUnknownList(t *testing.T) {
	r := newTodoRouter()

	w := doJSON(t, r, http.MethodPost, "/todolists/3/todoitems", gin.H{"task": "milk"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/todolists/3/todoitems", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteListStatus(t *testing.T) {
	r := newTodoRouter()
	createList(t, r, "groceries", "weekly")

	w := doJSON(t, r, http.MethodDelete, "/todolists/0", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/todolists/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
