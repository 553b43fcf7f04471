package repository

import (
	"fmt"

	"navigator/internal/app/ds"
)

func (r *Repository) ProcurementFlows() []ds.ProcurementFlow {
	return r.flows
}

func (r *Repository) ProcurementFlow(id string) (ds.ProcurementFlow, error) {
	for _, f := range r.flows {
		if f.ID == id {
			return f, nil
		}
	}
	return ds.ProcurementFlow{}, fmt.Errorf("procurement flow %q: %w", id, ErrNotFound)
}
