package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navigator/internal/app/filter"
)

func TestToolQuery_State(t *testing.T) {
	s, err := ToolQuery{Search: "  pinnw ", License: "Kostenlos", AI: "false", Students: "true"}.State()
	require.NoError(t, err)
	assert.Equal(t, filter.State{Search: "pinnw", License: filter.FreeLicense, AI: filter.No, Students: filter.Yes}, s)

	_, err = ToolQuery{License: "Gratis"}.State()
	assert.ErrorIs(t, err, filter.ErrInvalidValue)

	_, err = ToolQuery{AI: "maybe"}.State()
	assert.ErrorIs(t, err, filter.ErrInvalidValue)

	_, err = ToolQuery{Students: "vielleicht"}.State()
	assert.ErrorIs(t, err, filter.ErrInvalidValue)

	_, err = ToolQuery{Search: strings.Repeat("a", filter.MaxSearchLength+1)}.State()
	assert.ErrorIs(t, err, filter.ErrInvalidValue)
}

func TestFilterStateDTO_RoundTrip(t *testing.T) {
	states := []filter.State{
		{},
		{License: filter.CantonalLicense, AI: filter.Yes, Teachers: filter.Yes},
		{AI: filter.No, Students: filter.Yes, ToolType: "Quiz", Search: "karte"},
	}
	for _, want := range states {
		got, err := NewFilterStateDTO(want).State()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNewFilterStateDTO_AnyIsNil(t *testing.T) {
	d := NewFilterStateDTO(filter.State{})
	assert.Nil(t, d.AI)
	assert.Nil(t, d.Students)
	assert.Nil(t, d.Teachers)
}
