package views

import (
	"github.com/go-playground/validator/v10"

	"github.com/five82/homes/internal/homes"
)

// Field identifies one input of the create form.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldPricePerNight
	FieldLocation
	FieldImageURL
	FieldGuests
	FieldBedrooms
	FieldBathrooms
	FieldAmenities
)

var fieldOrder = []Field{
	FieldTitle,
	FieldDescription,
	FieldPricePerNight,
	FieldLocation,
	FieldImageURL,
	FieldGuests,
	FieldBedrooms,
	FieldBathrooms,
	FieldAmenities,
}

// Fields returns every form field in display order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Label is the caption shown next to the input.
func (f Field) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	case FieldPricePerNight:
		return "Price per night ($)"
	case FieldLocation:
		return "Location"
	case FieldImageURL:
		return "Image URL"
	case FieldGuests:
		return "Guests"
	case FieldBedrooms:
		return "Bedrooms"
	case FieldBathrooms:
		return "Bathrooms"
	case FieldAmenities:
		return "Amenities (comma separated)"
	default:
		return "?"
	}
}

// Required reports whether submission is blocked while the field is empty.
func (f Field) Required() bool {
	switch f {
	case FieldTitle, FieldDescription, FieldLocation:
		return true
	}
	return false
}

// Form holds the raw text of the create screen.
type Form struct {
	Title         string `validate:"required"`
	Description   string `validate:"required"`
	PricePerNight string
	Location      string `validate:"required"`
	ImageURL      string
	Guests        string
	Bedrooms      string
	Bathrooms     string
	Amenities     string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var fieldsByStructName = map[string]Field{
	"Title":       FieldTitle,
	"Description": FieldDescription,
	"Location":    FieldLocation,
}

// NewForm returns a form with the initial counts filled in.
func NewForm() Form {
	return Form{Guests: "1", Bedrooms: "1", Bathrooms: "1"}
}

// Value returns the text of field f.
func (f Form) Value(field Field) string {
	if p := f.ptr(field); p != nil {
		return *p
	}
	return ""
}

// Set replaces the text of field f.
func (f *Form) Set(field Field, value string) {
	if p := f.ptr(field); p != nil {
		*p = value
	}
}

func (f *Form) ptr(field Field) *string {
	switch field {
	case FieldTitle:
		return &f.Title
	case FieldDescription:
		return &f.Description
	case FieldPricePerNight:
		return &f.PricePerNight
	case FieldLocation:
		return &f.Location
	case FieldImageURL:
		return &f.ImageURL
	case FieldGuests:
		return &f.Guests
	case FieldBedrooms:
		return &f.Bedrooms
	case FieldBathrooms:
		return &f.Bathrooms
	case FieldAmenities:
		return &f.Amenities
	}
	return nil
}

// Missing lists the required fields that are still empty, in display order.
func (f Form) Missing() []Field {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	seen := make(map[Field]bool, len(verrs))
	for _, fe := range verrs {
		if field, ok := fieldsByStructName[fe.StructField()]; ok {
			seen[field] = true
		}
	}
	var out []Field
	for _, field := range fieldOrder {
		if seen[field] {
			out = append(out, field)
		}
	}
	return out
}

// Listing converts the form into a create payload. Unparseable numbers
// become 0.
func (f Form) Listing() homes.Listing {
	return homes.Listing{
		Title:         f.Title,
		Description:   f.Description,
		Location:      f.Location,
		ImageURL:      f.ImageURL,
		PricePerNight: homes.ParseCount(f.PricePerNight),
		Guests:        homes.ParseCount(f.Guests),
		Bedrooms:      homes.ParseCount(f.Bedrooms),
		Bathrooms:     homes.ParseCount(f.Bathrooms),
		Amenities:     homes.ParseAmenities(f.Amenities),
	}
}
