package dto

import (
	"net/url"

	"navigator/internal/app/filter"
)

// Values returns the bound query in the form filter.Decode reads.
func (q ToolQuery) Values() url.Values {
	v := url.Values{}
	for param, value := range map[string]string{
		filter.ParamSearch:   q.Search,
		filter.ParamLicense:  q.License,
		filter.ParamAI:       q.AI,
		filter.ParamStudents: q.Students,
		filter.ParamTeachers: q.Teachers,
		filter.ParamToolType: q.ToolType,
	} {
		if value != "" {
			v.Set(param, value)
		}
	}
	return v
}

// State converts the bound query into a filter state.
func (q ToolQuery) State() (filter.State, error) {
	return filter.Decode(q.Values())
}

func (d FilterStateDTO) State() (filter.State, error) {
	q := ToolQuery{
		Search:   d.Search,
		License:  d.License,
		AI:       filter.TristateOf(d.AI).String(),
		Students: filter.TristateOf(d.Students).String(),
		Teachers: filter.TristateOf(d.Teachers).String(),
		ToolType: d.ToolType,
	}
	return q.State()
}

func NewFilterStateDTO(s filter.State) FilterStateDTO {
	return FilterStateDTO{
		Search:   s.Search,
		License:  string(s.License),
		AI:       boolPtr(s.AI),
		Students: boolPtr(s.Students),
		Teachers: boolPtr(s.Teachers),
		ToolType: s.ToolType,
	}
}

func boolPtr(t filter.Tristate) *bool {
	var v bool
	switch t {
	case filter.Yes:
		v = true
	case filter.No:
		v = false
	default:
		return nil
	}
	return &v
}
