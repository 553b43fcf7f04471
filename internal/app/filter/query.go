package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Query parameter names used to carry a State in links.
const (
	ParamSearch   = "q"
	ParamLicense  = "lizenz"
	ParamAI       = "ki"
	ParamStudents = "lernende"
	ParamTeachers = "lp"
	ParamToolType = "typ"
)

// Values encodes the active predicates of s as query parameters.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Search != "" {
		v.Set(ParamSearch, s.Search)
	}
	if s.License != "" {
		v.Set(ParamLicense, string(s.License))
	}
	if s.AI != Any {
		v.Set(ParamAI, s.AI.String())
	}
	if s.Students == Yes {
		v.Set(ParamStudents, "true")
	}
	if s.Teachers == Yes {
		v.Set(ParamTeachers, "true")
	}
	if s.ToolType != "" {
		v.Set(ParamToolType, s.ToolType)
	}
	return v
}

// Encode is Values().Encode(), with the leading "?" when non-empty.
func (s State) Encode() string {
	q := s.Values().Encode()
	if q == "" {
		return ""
	}
	return "?" + q
}

// Length limits for the free-text parameters, in characters.
const (
	MaxSearchLength   = 200
	MaxToolTypeLength = 100
)

// Decode parses the parameters written by Values. Unknown parameters are ignored.
func Decode(v url.Values) (State, error) {
	var s State
	s.Search = strings.TrimSpace(v.Get(ParamSearch))
	s.ToolType = strings.TrimSpace(v.Get(ParamToolType))
	if utf8.RuneCountInString(s.Search) > MaxSearchLength {
		return State{}, fmt.Errorf("%w: %s longer than %d characters", ErrInvalidValue, ParamSearch, MaxSearchLength)
	}
	if utf8.RuneCountInString(s.ToolType) > MaxToolTypeLength {
		return State{}, fmt.Errorf("%w: %s longer than %d characters", ErrInvalidValue, ParamToolType, MaxToolTypeLength)
	}

	if raw := v.Get(ParamLicense); raw != "" {
		c := LicenseCategory(raw)
		if !c.Known() {
			return State{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, ParamLicense, raw)
		}
		s.License = c
	}

	var err error
	if s.AI, err = parseTristate(v, ParamAI); err != nil {
		return State{}, err
	}
	if s.Students, err = parseTristate(v, ParamStudents); err != nil {
		return State{}, err
	}
	if s.Teachers, err = parseTristate(v, ParamTeachers); err != nil {
		return State{}, err
	}
	return s, nil
}

func parseTristate(v url.Values, param string) (Tristate, error) {
	raw := v.Get(param)
	if raw == "" {
		return Any, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return Any, fmt.Errorf("%w: %s=%q", ErrInvalidValue, param, raw)
	}
	return TristateOf(&b), nil
}
