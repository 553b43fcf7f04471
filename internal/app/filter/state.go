package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tristate is an optional yes/no selection.
type Tristate uint8

const (
	Any Tristate = iota
	Yes
	No
)

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "true"
	case No:
		return "false"
	default:
		return ""
	}
}

// TristateOf converts an optional bool, nil meaning Any.
func TristateOf(v *bool) Tristate {
	switch {
	case v == nil:
		return Any
	case *v:
		return Yes
	default:
		return No
	}
}

func (t Tristate) toggle(v Tristate) Tristate {
	if t == v {
		return Any
	}
	return v
}

// Key names a filter predicate in toggle events and analytics.
type Key string

const (
	KeySearch   Key = "search"
	KeyLicense  Key = "lizenzKategorie"
	KeyAI       Key = "ki"
	KeyStudents Key = "lernende"
	KeyTeachers Key = "lp"
	KeyToolType Key = "toolTyp"
)

var (
	ErrUnknownKey   = errors.New("unknown filter key")
	ErrInvalidValue = errors.New("invalid filter value")
)

// State is the set of predicates a user currently applies to the catalog.
// The zero State has no active filter and matches every tool.
//
// Students and Teachers only constrain when Yes; No behaves like Any.
type State struct {
	Search   string
	License  LicenseCategory
	AI       Tristate
	Students Tristate
	Teachers Tristate
	ToolType string
}

// WithSearch replaces the search text. Surrounding whitespace is dropped.
func (s State) WithSearch(q string) State {
	s.Search = strings.TrimSpace(q)
	return s
}

// ToggleLicense selects c, or clears the selection if c is already selected.
func (s State) ToggleLicense(c LicenseCategory) State {
	if s.License == c {
		s.License = ""
	} else {
		s.License = c
	}
	return s
}

func (s State) ToggleToolType(t string) State {
	t = strings.TrimSpace(t)
	if s.ToolType == t {
		s.ToolType = ""
	} else {
		s.ToolType = t
	}
	return s
}

// ToggleAI handles the "Mit KI" (true) and "Ohne KI" (false) buttons.
func (s State) ToggleAI(withAI bool) State {
	v := No
	if withAI {
		v = Yes
	}
	s.AI = s.AI.toggle(v)
	return s
}

func (s State) ToggleStudents() State {
	s.Students = s.Students.toggle(Yes)
	return s
}

func (s State) ToggleTeachers() State {
	s.Teachers = s.Teachers.toggle(Yes)
	return s
}

// Toggle applies a single toggle event. Search is replaced rather than toggled,
// and the audience keys ignore value.
func (s State) Toggle(key Key, value string) (State, error) {
	switch key {
	case KeySearch:
		return s.WithSearch(value), nil
	case KeyLicense:
		c := LicenseCategory(value)
		if !c.Known() {
			return s, fmt.Errorf("%w: license category %q", ErrInvalidValue, value)
		}
		return s.ToggleLicense(c), nil
	case KeyAI:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("%w: ki %q", ErrInvalidValue, value)
		}
		return s.ToggleAI(v), nil
	case KeyStudents:
		return s.ToggleStudents(), nil
	case KeyTeachers:
		return s.ToggleTeachers(), nil
	case KeyToolType:
		if strings.TrimSpace(value) == "" {
			return s, fmt.Errorf("%w: empty tool type", ErrInvalidValue)
		}
		return s.ToggleToolType(value), nil
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// Value returns the current selection for key in its query form, "" when unset.
func (s State) Value(key Key) string {
	switch key {
	case KeySearch:
		return s.Search
	case KeyLicense:
		return string(s.License)
	case KeyAI:
		return s.AI.String()
	case KeyStudents:
		if s.Students == Yes {
			return Yes.String()
		}
	case KeyTeachers:
		if s.Teachers == Yes {
			return Yes.String()
		}
	case KeyToolType:
		return s.ToolType
	}
	return ""
}

// Active reports whether any predicate constrains the result.
func (s State) Active() bool {
	return s.Search != "" ||
		s.License != "" ||
		s.AI != Any ||
		s.Students == Yes ||
		s.Teachers == Yes ||
		s.ToolType != ""
}

// Labels describes the active predicates for display and report captions.
// The order is fixed: license, AI, students, teachers, tool type, search.
func (s State) Labels() []string {
	labels := make([]string, 0, 6)
	if s.License != "" {
		labels = append(labels, string(s.License))
	}
	switch s.AI {
	case Yes:
		labels = append(labels, "Mit KI")
	case No:
		labels = append(labels, "Ohne KI")
	}
	if s.Students == Yes {
		labels = append(labels, "Lernende")
	}
	if s.Teachers == Yes {
		labels = append(labels, "Lehrpersonen")
	}
	if s.ToolType != "" {
		labels = append(labels, s.ToolType)
	}
	if s.Search != "" {
		labels = append(labels, `"`+s.Search+`"`)
	}
	return labels
}

// Caption joins the labels into the single string used by exports.
func (s State) Caption() string {
	return strings.Join(s.Labels(), ", ")
}
