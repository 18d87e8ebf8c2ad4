// Package service parses .properties text into ordered key/value maps.
package service

import (
	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
)

// PropertiesParser turns properties text into an ordered key/value map.
type PropertiesParser interface {
	// Parse parses text. Returns ErrPropertiesParse on malformed input.
	Parse(text string) (*propertiesDomain.Properties, error)
}
