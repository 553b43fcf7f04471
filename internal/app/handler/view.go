package handler

import (
	"net/url"

	"navigator/internal/app/ds"
	"navigator/internal/app/filter"
)

const (
	catalogPath = "/lizenzen"
	togglePath  = "/lizenzen/toggle"
	exportPath  = "/lizenzen/export"

	paramKey   = "key"
	paramValue = "value"
)

type filterButton struct {
	Label  string
	Href   string
	Active bool
}

type hiddenField struct {
	Name  string
	Value string
}

type catalogView struct {
	Tools  []ds.Tool
	Count  int
	Total  int
	Labels []string
	Active bool

	Search       string
	SearchHidden []hiddenField

	Licenses  []filterButton
	AI        []filterButton
	Audiences []filterButton
	ToolTypes []filterButton

	ResetHref  string
	ExportHref string
}

// toggleHref links to the toggle endpoint, which redirects to the resulting state.
func toggleHref(s filter.State, key filter.Key, value string) string {
	v := s.Values()
	v.Set(paramKey, string(key))
	if value != "" {
		v.Set(paramValue, value)
	}
	return togglePath + "?" + v.Encode()
}

func newCatalogView(s filter.State, catalog, tools []ds.Tool) catalogView {
	view := catalogView{
		Tools:      tools,
		Count:      len(tools),
		Total:      len(catalog),
		Labels:     s.Labels(),
		Active:     s.Active(),
		Search:     s.Search,
		ResetHref:  catalogPath,
		ExportHref: exportPath + s.Encode(),
	}

	// The search form submits a toggle event and keeps the other predicates.
	withoutSearch := s.WithSearch("").Values()
	view.SearchHidden = hiddenFields(withoutSearch)

	for _, c := range filter.LicenseCategories() {
		view.Licenses = append(view.Licenses, filterButton{
			Label:  string(c),
			Href:   toggleHref(s, filter.KeyLicense, string(c)),
			Active: s.License == c,
		})
	}

	view.AI = []filterButton{
		{Label: "Mit KI", Href: toggleHref(s, filter.KeyAI, "true"), Active: s.AI == filter.Yes},
		{Label: "Ohne KI", Href: toggleHref(s, filter.KeyAI, "false"), Active: s.AI == filter.No},
	}
	view.Audiences = []filterButton{
		{Label: "Lernende", Href: toggleHref(s, filter.KeyStudents, ""), Active: s.Students == filter.Yes},
		{Label: "Lehrpersonen", Href: toggleHref(s, filter.KeyTeachers, ""), Active: s.Teachers == filter.Yes},
	}

	for _, t := range filter.ToolTypes(catalog) {
		view.ToolTypes = append(view.ToolTypes, filterButton{
			Label:  t,
			Href:   toggleHref(s, filter.KeyToolType, t),
			Active: s.ToolType == t,
		})
	}
	return view
}

func hiddenFields(v url.Values) []hiddenField {
	fields := make([]hiddenField, 0, len(v))
	for _, name := range []string{
		filter.ParamLicense,
		filter.ParamAI,
		filter.ParamStudents,
		filter.ParamTeachers,
		filter.ParamToolType,
	} {
		if val := v.Get(name); val != "" {
			fields = append(fields, hiddenField{Name: name, Value: val})
		}
	}
	return fields
}

type matrixRow struct {
	System string
	Detail string
	Levels []string
}

type matrixCategory struct {
	Title       string
	Description string
	Rows        []matrixRow
}

// accessMatrix lays out the system access table with one column per role.
func accessMatrix(roles []ds.Role, categories []ds.SystemCategory) []matrixCategory {
	out := make([]matrixCategory, 0, len(categories))
	for _, cat := range categories {
		mc := matrixCategory{Title: cat.Title, Description: cat.Description}
		for _, sys := range cat.Systems {
			row := matrixRow{System: sys.Name, Detail: sys.Detail, Levels: make([]string, len(roles))}
			for i, r := range roles {
				level, ok := sys.Access[r.ID]
				if !ok || level == "" {
					level = ds.NoAccess
				}
				row.Levels[i] = level
			}
			mc.Rows = append(mc.Rows, row)
		}
		out = append(out, mc)
	}
	return out
}
