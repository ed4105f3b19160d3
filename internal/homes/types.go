package homes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID identifies a home. The backend assigns it; clients never invent one.
type ID string

// String returns the identifier as used in request paths.
func (id ID) String() string {
	return string(id)
}

// Empty reports whether the identifier is blank.
func (id ID) Empty() bool {
	return strings.TrimSpace(string(id)) == ""
}

// UnmarshalJSON accepts both string and numeric identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("home id %s: %w", trimmed, err)
	}
	*id = ID(n.String())
	return nil
}

// Listing is a home as submitted for creation. It carries no identifier.
type Listing struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	ImageURL      string   `json:"imageUrl"`
	PricePerNight int      `json:"pricePerNight"`
	Guests        int      `json:"guests"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Amenities     []string `json:"amenities"`
}

// MarshalJSON keeps amenities an array even when none were given.
func (l Listing) MarshalJSON() ([]byte, error) {
	type plain Listing
	out := plain(l)
	if out.Amenities == nil {
		out.Amenities = []string{}
	}
	return json.Marshal(out)
}

// Home is a listing as stored by the backend.
type Home struct {
	ID ID `json:"id"`
	Listing
}

// MarshalJSON encodes the record flat, id first. Without it the promoted
// Listing.MarshalJSON would drop the id.
func (h Home) MarshalJSON() ([]byte, error) {
	type plain Listing
	out := struct {
		ID ID `json:"id"`
		plain
	}{ID: h.ID, plain: plain(h.Listing)}
	if out.Amenities == nil {
		out.Amenities = []string{}
	}
	return json.Marshal(out)
}
