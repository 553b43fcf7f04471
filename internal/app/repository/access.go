package repository

import (
	"fmt"

	"navigator/internal/app/ds"
)

// SystemAccess is one row of the permission matrix seen from a single role.
type SystemAccess struct {
	CategoryID    string `json:"category_id"`
	CategoryTitle string `json:"category_title"`
	System        string `json:"system"`
	Detail        string `json:"detail,omitempty"`
	Level         string `json:"level"`
}

func (r *Repository) Roles() []ds.Role {
	return r.roles
}

func (r *Repository) RoleByID(id string) (ds.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return ds.Role{}, fmt.Errorf("role %q: %w", id, ErrNotFound)
}

func (r *Repository) SystemCategories() []ds.SystemCategory {
	return r.categories
}

func (r *Repository) PolicyRules() []ds.PolicyRule {
	return r.policies
}

func (r *Repository) Processes() []ds.Process {
	return r.processes
}

// AccessForRole lists the systems on which the role has any rights, in matrix order.
func (r *Repository) AccessForRole(roleID string) ([]SystemAccess, error) {
	if _, err := r.RoleByID(roleID); err != nil {
		return nil, err
	}

	out := make([]SystemAccess, 0)
	for _, c := range r.categories {
		for _, s := range c.Systems {
			level, ok := s.Access[roleID]
			if !ok || level == "" || level == ds.NoAccess {
				continue
			}
			out = append(out, SystemAccess{
				CategoryID:    c.ID,
				CategoryTitle: c.Title,
				System:        s.Name,
				Detail:        s.Detail,
				Level:         level,
			})
		}
	}
	return out, nil
}
