package snapshot

import (
	"fmt"

	"github.com/charliemarlow/APIProjects/internal/repo"
)

// ListsDoc is the wrapper object of the lists document.
type ListsDoc struct {
	Lists []ListDoc `json:"lists"`
}

// ListDoc is one todo list in the snapshot.
type ListDoc struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Items       []ItemDoc `json:"items"`
}

// ItemDoc is one item nested under a list. isFinished is optional and
// defaults to false.
type ItemDoc struct {
	Task       string `json:"task"`
	IsFinished bool   `json:"isFinished"`
}

// LoadTodo replays lists and their items in file order.
func LoadTodo(r repo.TodoRepo, doc ListsDoc) error {
	for _, ld := range doc.Lists {
		list := r.AddList(ld.Name, ld.Description)
		for _, item := range ld.Items {
			created, err := r.AddItem(list.ID, item.Task)
			if err != nil {
				return fmt.Errorf("item %q in list %d: %w", item.Task, list.ID, err)
			}
			if item.IsFinished {
				finished := true
				if _, err := r.UpdateItem(list.ID, created.ID, nil, &finished); err != nil {
					return fmt.Errorf("item %d in list %d: %w", created.ID, list.ID, err)
				}
			}
		}
	}
	return nil
}

// LoadTodoFromFiles reads the lists document and replays it into r.
func LoadTodoFromFiles(r repo.TodoRepo, listsPath string) error {
	var doc ListsDoc
	if err := readJSON(listsPath, &doc); err != nil {
		return fmt.Errorf("lists snapshot: %w", err)
	}
	return LoadTodo(r, doc)
}
