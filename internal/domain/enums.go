package domain

import "strings"

// PropertyType is the listing category
type PropertyType string

const (
	PropertyTypeRoom    PropertyType = "ROOM"
	PropertyTypePG      PropertyType = "PG"
	PropertyTypeHostel  PropertyType = "HOSTEL"
	PropertyTypeFlat    PropertyType = "FLAT"
	PropertyTypeHome    PropertyType = "HOME"
	PropertyTypeUnknown PropertyType = ""
)

// ParsePropertyType maps free text onto the closed set, anything else is unknown
func ParsePropertyType(s string) PropertyType {
	switch t := PropertyType(strings.ToUpper(strings.TrimSpace(s))); t {
	case PropertyTypeRoom, PropertyTypePG, PropertyTypeHostel, PropertyTypeFlat, PropertyTypeHome:
		return t
	default:
		return PropertyTypeUnknown
	}
}

func (t PropertyType) Valid() bool {
	return ParsePropertyType(string(t)) != PropertyTypeUnknown
}

// Purpose tells whether a listing is offered for rent or for sale
type Purpose string

const (
	PurposeRent    Purpose = "RENT"
	PurposeSale    Purpose = "SALE"
	PurposeUnknown Purpose = ""
)

func ParsePurpose(s string) Purpose {
	switch p := Purpose(strings.ToUpper(strings.TrimSpace(s))); p {
	case PurposeRent, PurposeSale:
		return p
	default:
		return PurposeUnknown
	}
}

func (p Purpose) Valid() bool {
	return ParsePurpose(string(p)) != PurposeUnknown
}

// Persona is the renter archetype used to weight type and amenity fit
type Persona string

const (
	PersonaStudent Persona = "student"
	PersonaWorker  Persona = "worker"
	PersonaFamily  Persona = "family"
	PersonaCouple  Persona = "couple"
	PersonaUnknown Persona = ""
)

func ParsePersona(s string) Persona {
	switch p := Persona(strings.ToLower(strings.TrimSpace(s))); p {
	case PersonaStudent, PersonaWorker, PersonaFamily, PersonaCouple:
		return p
	default:
		return PersonaUnknown
	}
}

func (p Persona) Valid() bool {
	return ParsePersona(string(p)) != PersonaUnknown
}
