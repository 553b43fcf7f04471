package dto

import (
	"navigator/internal/app/ds"
	"navigator/internal/app/filter"
	"navigator/internal/app/repository"
)

// ============ Common ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Tools ============

// ToolQuery is the filter state as carried in the query string.
// Values are checked by filter.Decode.
type ToolQuery struct {
	Search   string `form:"q"`
	License  string `form:"lizenz"`
	AI       string `form:"ki"`
	Students string `form:"lernende"`
	Teachers string `form:"lp"`
	ToolType string `form:"typ"`
}

type ToolListResponse struct {
	Tools  []ds.Tool `json:"tools"`
	Labels []string  `json:"labels"`
	Count  int       `json:"count"`
	Total  int       `json:"total"`
}

type FiltersResponse struct {
	LicenseCategories []filter.LicenseCategory `json:"license_categories"`
	ToolTypes         []string                 `json:"tool_types"`
	Stats             filter.Stats             `json:"stats"`
}

// FilterStateDTO is the JSON form of a filter state. Nil flags mean "any".
type FilterStateDTO struct {
	Search   string `json:"search"`
	License  string `json:"lizenzKategorie"`
	AI       *bool  `json:"ki"`
	Students *bool  `json:"lernende"`
	Teachers *bool  `json:"lp"`
	ToolType string `json:"toolTyp"`
}

type ToggleRequest struct {
	State FilterStateDTO `json:"state"`
	Key   string         `json:"key" binding:"required,oneof=search lizenzKategorie ki lernende lp toolTyp"`
	Value string         `json:"value"`
}

type ToggleResponse struct {
	State  FilterStateDTO `json:"state"`
	Labels []string       `json:"labels"`
	Active bool           `json:"active"`
	// Query is the encoded state, ready to append to /api/tools or /lizenzen.
	Query string `json:"query"`
}

// ============ Access ============

type RoleListResponse struct {
	Roles []ds.Role `json:"roles"`
	Total int       `json:"total"`
}

type RoleAccessResponse struct {
	Role    ds.Role                   `json:"role"`
	Systems []repository.SystemAccess `json:"systems"`
}

// ============ Procurement ============

type ProcurementListResponse struct {
	Flows []ds.ProcurementFlow `json:"flows"`
	Total int                  `json:"total"`
}
