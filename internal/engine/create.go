package engine

import "github.com/google/uuid"

// AddItem creates a task or habit and prepends it to the working list. The
// item is immediately visible under its client-generated id; the mirror
// worker records the remote row id once the insert lands.
func (e *Engine) AddItem(title string, value float64, typ ItemType) (*GrindItem, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if !typ.IsValid() {
		return nil, ErrInvalidItemType
	}

	item := GrindItem{
		ID:        uuid.NewString(),
		Title:     t,
		Value:     value,
		Type:      typ,
		CreatedAt: nowMillis(),
	}

	e.mu.Lock()
	e.state.Items = append([]GrindItem{item}, e.state.Items...)
	e.persistLocked()
	e.enqueue(command{kind: cmdInsertItem, item: item})
	e.mu.Unlock()

	return &item, nil
}

// DeleteItem removes the item unconditionally. Deleting a completed task
// does not claw back its credited value.
func (e *Engine) DeleteItem(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.state.itemIndex(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	item := e.state.Items[idx]
	e.state.Items = append(e.state.Items[:idx], e.state.Items[idx+1:]...)
	e.persistLocked()
	e.enqueue(command{kind: cmdDeleteItem, item: item})
	return nil
}
