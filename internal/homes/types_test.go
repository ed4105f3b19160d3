package homes

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalNumberAndString(t *testing.T) {
	var rec struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 42, "b": "7f3c", "c": null}`), &rec))
	assert.Equal(t, ID("42"), rec.A)
	assert.Equal(t, ID("7f3c"), rec.B)
	assert.True(t, rec.C.Empty())
}

func TestID_UnmarshalRejectsBool(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestListing_MarshalHasNoIDAndArrayAmenities(t *testing.T) {
	data, err := json.Marshal(Listing{Title: "Cabin"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "id")
	assert.Equal(t, []any{}, raw["amenities"])
	for _, key := range []string{"title", "description", "location", "imageUrl", "pricePerNight", "guests", "bedrooms", "bathrooms"} {
		assert.Contains(t, raw, key)
	}
}

func TestHome_JSONIsFlat(t *testing.T) {
	home := Home{ID: "9", Listing: Listing{Title: "Cabin", Guests: 4, Amenities: []string{"sauna"}}}

	data, err := json.Marshal(home)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "9", raw["id"])
	assert.Equal(t, "Cabin", raw["title"])

	var back Home
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, home, back)
}

func TestParseAmenities(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"blanks", " , ,, ", []string{}},
		{"drops empty segments", "wifi, , pool,", []string{"wifi", "pool"}},
		{"keeps order and duplicates", "pool,wifi , pool", []string{"pool", "wifi", "pool"}},
		{"inner spaces kept", " hot tub ,  free parking", []string{"hot tub", "free parking"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAmenities(tc.in)
			assert.Equal(t, tc.want, got)
			for _, item := range got {
				assert.NotEmpty(t, item)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"12", 12},
		{"  7", 7},
		{"+3", 3},
		{"12abc", 12},
		{"3.9", 3},
		{"-4", 0},
		{"-", 0},
		{"99999999999999999999999", math.MaxInt},
		{"  42 guests", 42},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseCount(tc.in), "ParseCount(%q)", tc.in)
	}
}
