package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitGroup(t *testing.T) {
	for in, want := range map[string]UnitGroup{
		"":         UnitsMetric,
		"metric":   UnitsMetric,
		"US":       UnitsUS,
		"imperial": UnitsUS,
		"uk":       UnitsUK,
		" base ":   UnitsBase,
	} {
		got, err := ParseUnitGroup(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseUnitGroup("kelvin")
	assert.True(t, IsInputError(err))
}

func TestOptionsValidate(t *testing.T) {
	valid := Options{DaySpan: 7, Units: UnitsMetric, Sections: []Section{SectionDaily}}
	require.NoError(t, valid.Validate())

	for _, span := range []int{0, -1, 16, 20} {
		o := valid
		o.DaySpan = span
		assert.ErrorIs(t, o.Validate(), ErrDaySpan, "span %d", span)
	}
	for _, span := range []int{1, 15} {
		o := valid
		o.DaySpan = span
		assert.NoError(t, o.Validate(), "span %d", span)
	}

	o := valid
	o.Units = "kelvin"
	assert.True(t, IsInputError(o.Validate()))

	o = valid
	o.Sections = nil
	assert.True(t, IsInputError(o.Validate()))

	o = valid
	o.Sections = []Section{"weekly"}
	assert.True(t, IsInputError(o.Validate()))
}

func TestSectionInclude(t *testing.T) {
	assert.Equal(t, "days", SectionDaily.Include())
	assert.Equal(t, "hours", SectionHourly.Include())
	assert.Equal(t, "current", SectionCurrent.Include())
	assert.Equal(t, "alerts", SectionAlerts.Include())

	o := Options{Sections: []Section{SectionCurrent, SectionDaily}}
	assert.True(t, o.Has(SectionDaily))
	assert.False(t, o.Has(SectionHourly))
}
