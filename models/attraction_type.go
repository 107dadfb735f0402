package models

import "fmt"

type AttractionType string

const (
	AttractionTypePalace             AttractionType = "PALACE"
	AttractionTypePark               AttractionType = "PARK"
	AttractionTypeMuseum             AttractionType = "MUSEUM"
	AttractionTypeArchaeologicalSite AttractionType = "ARCHAEOLOGICAL_SITE"
	AttractionTypeNatureReserve      AttractionType = "NATURE_RESERVE"
)

var AttractionTypes = []AttractionType{
	AttractionTypePalace,
	AttractionTypePark,
	AttractionTypeMuseum,
	AttractionTypeArchaeologicalSite,
	AttractionTypeNatureReserve,
}

// ParseAttractionType matches the exact upper case token, e.g. "PARK"
func ParseAttractionType(s string) (AttractionType, error) {
	for _, t := range AttractionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown attraction type: %q", s)
}

func (t *AttractionType) UnmarshalText(text []byte) error {
	parsed, err := ParseAttractionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
