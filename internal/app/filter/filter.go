package filter

import (
	"slices"
	"strings"

	"navigator/internal/app/ds"
)

// Matches reports whether t satisfies every active predicate of s.
func (s State) Matches(t ds.Tool) bool {
	if s.Search != "" {
		q := strings.ToLower(s.Search)
		if !strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Type), q) &&
			!strings.Contains(strings.ToLower(t.Functions), q) {
			return false
		}
	}

	if s.License != "" && ClassifyLicense(t.License) != s.License {
		return false
	}

	switch s.AI {
	case Yes:
		if !t.HasAI {
			return false
		}
	case No:
		if t.HasAI {
			return false
		}
	}

	if s.Students == Yes && !t.ForStudents {
		return false
	}
	if s.Teachers == Yes && !t.ForTeachers {
		return false
	}

	if s.ToolType != "" && !strings.Contains(strings.ToLower(t.Type), strings.ToLower(s.ToolType)) {
		return false
	}

	return true
}

// Apply returns the tools matching s in catalog order. The result is never nil.
func Apply(tools []ds.Tool, s State) []ds.Tool {
	out := make([]ds.Tool, 0, len(tools))
	for _, t := range tools {
		if s.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// ToolTypes collects the distinct, trimmed type tags of all tools, sorted.
func ToolTypes(tools []ds.Tool) []string {
	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, t := range tools {
		for _, tag := range strings.Split(t.Type, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			types = append(types, tag)
		}
	}
	slices.Sort(types)
	return types
}

type Stats struct {
	Total       int `json:"total"`
	WithAI      int `json:"with_ai"`
	ForStudents int `json:"for_students"`
	ForTeachers int `json:"for_teachers"`
}

func CatalogStats(tools []ds.Tool) Stats {
	st := Stats{Total: len(tools)}
	for _, t := range tools {
		if t.HasAI {
			st.WithAI++
		}
		if t.ForStudents {
			st.ForStudents++
		}
		if t.ForTeachers {
			st.ForTeachers++
		}
	}
	return st
}
