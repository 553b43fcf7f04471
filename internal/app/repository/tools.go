package repository

import (
	"fmt"

	"navigator/internal/app/ds"
)

// Tools returns the catalog in its defined order.
func (r *Repository) Tools() []ds.Tool {
	return r.tools
}

func (r *Repository) ToolByID(id string) (ds.Tool, error) {
	i, ok := r.toolIndex[id]
	if !ok {
		return ds.Tool{}, fmt.Errorf("tool %q: %w", id, ErrNotFound)
	}
	return r.tools[i], nil
}
