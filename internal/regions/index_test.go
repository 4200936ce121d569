package regions

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	idx := Default()
	assert.Equal(t, 37, idx.Len())
	assert.Equal(t, []string{"South East", "North East", "South South", "North Central", "South West", "North West"}, idx.Groups())

	popular := idx.Popular()
	var names []string
	for _, r := range popular {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Edo", "Federal Capital Territory", "Kaduna", "Kano", "Lagos", "Oyo", "Rivers"}, names)
}

func TestResolveKnownNames(t *testing.T) {
	idx := Default()
	for _, r := range idx.All() {
		for _, input := range []string{r.Name, strings.ToUpper(r.Name), "  " + strings.ToLower(r.Name) + " "} {
			q := idx.Resolve(input)
			require.NotNil(t, q.Region, "input %q", input)
			assert.Equal(t, r.Name, q.Region.Name, "input %q", input)
			assert.Equal(t, r.Coordinates(), q.Text, "input %q", input)
			assert.True(t, q.IsCoordinate())
		}
	}
}

func TestResolveLagos(t *testing.T) {
	q := Default().Resolve("Lagos")
	require.NotNil(t, q.Region)
	assert.Equal(t, "6.5244,3.3792", q.Text)
	assert.Equal(t, "Ikeja", q.Region.Capital)
	assert.Equal(t, "South West", q.Region.Group)
}

func TestResolveAliasesAndFuzzy(t *testing.T) {
	idx := Default()
	cases := map[string]string{
		"FCT":            "Federal Capital Territory",
		"Abuja":          "Federal Capital Territory",
		"Port Harcourt":  "Rivers",
		"port-harcourt":  "Rivers",
		"Ibadan":         "Oyo",
		"Akwa-Ibom":      "Akwa Ibom",
		"Delta State":    "Delta",
		"Lagos, Nigeria": "Lagos",
		"Benin":          "Edo",
		"Cross":          "Cross River",
		"Oshogbo":        "Osun",
		"kadun":          "Kaduna",
		"Kano, Nigeria":  "Kano",
		"Kadun, Nigeria": "Kaduna",
		"harcourt":       "Rivers",
	}
	for input, want := range cases {
		q := idx.Resolve(input)
		require.NotNil(t, q.Region, "input %q", input)
		assert.Equal(t, want, q.Region.Name, "input %q", input)
	}
}

func TestResolvePassThrough(t *testing.T) {
	idx := Default()
	for _, input := range []string{
		"London", "  New York ", "Tokyo, Japan", "Nigeria", "xy",
		"Cotonou, Benin", "Niamey, Niger", "Three Rivers, Michigan", "Mekong Delta", "Ede", "Tor",
	} {
		q := idx.Resolve(input)
		assert.Nil(t, q.Region, "input %q", input)
		assert.Equal(t, strings.TrimSpace(input), q.Text)
		assert.False(t, q.IsCoordinate())
	}
}

func TestResolveEmpty(t *testing.T) {
	q := Default().Resolve("   ")
	assert.Equal(t, "", q.Text)
	assert.Nil(t, q.Region)
}

func TestResolveReturnsCopy(t *testing.T) {
	idx := Default()
	q := idx.Resolve("Lagos")
	q.Region.Name = "mutated"
	q.Region.Aliases[0] = "mutated"

	again := idx.Resolve("Lagos")
	assert.Equal(t, "Lagos", again.Region.Name)
	assert.Equal(t, "Lagos City", again.Region.Aliases[0])
}

func TestByGroup(t *testing.T) {
	idx := Default()
	sw := idx.ByGroup("south west")
	require.Len(t, sw, 6)
	assert.Equal(t, "Ekiti", sw[0].Name)
	assert.Empty(t, idx.ByGroup("Unknown"))
}

func TestSearch(t *testing.T) {
	idx := Default()

	results, total, err := idx.Search("Lagos", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Lagos", results[0].Name)
	assert.Equal(t, 1, total)

	results, total, err = idx.Search("ka", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "Kaduna", results[0].Name)
	assert.Equal(t, "Kano", results[1].Name)
	assert.Greater(t, total, 2)

	results, total, err = idx.Search("Lagos State", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Lagos", results[0].Name)
	assert.Equal(t, 1, total)

	results, total, err = idx.Search("", 5)
	require.NoError(t, err)
	assert.Len(t, results, 5)
	assert.Equal(t, idx.Len(), total)

	results, total, err = idx.Search("atlantis", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, total)
}

func TestSearchLimitNeverExceeded(t *testing.T) {
	idx := Default()
	for limit := 1; limit <= idx.Len()+1; limit++ {
		results, _, err := idx.Search("a", limit)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), limit)
	}
}

func TestSearchRejectsLimitBelowOne(t *testing.T) {
	for _, limit := range []int{0, -1} {
		_, _, err := Default().Search("Lagos", limit)
		assert.True(t, errors.Is(err, ErrInvalidLimit))
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	_, err := Load([]byte(`
states:
  - {name: Lagos, capital: Ikeja, region: South West, latitude: 6.5, longitude: 3.3}
  - {name: lagos, capital: Ikeja, region: South West, latitude: 6.5, longitude: 3.3}
`))
	require.Error(t, err)

	_, err = New([]Region{{Name: "Nowhere", Latitude: 91}})
	require.Error(t, err)
}
