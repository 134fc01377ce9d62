// Package validation rejects malformed tracking parameters before they are
// handed to the native capability. All functions are pure.
package validation

import (
	"math"
	"regexp"
	"slices"
	"strconv"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/types"
)

const VisitorIDPattern string = `^[0-9a-f]{16}$`

var visitorIDRegexp = regexp.MustCompile(VisitorIDPattern)

// ValidateInteger fails unless value is a whole number.
func ValidateInteger(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Trunc(value) != value {
		return errors.NewNotIntegerError()
	}

	return nil
}

// ValidateIdentifierMap checks that every key of m is the canonical decimal
// form of an integer greater than zero. A nil map is valid. Keys are visited
// in sorted order so that the reported violation does not depend on map
// iteration order.
func ValidateIdentifierMap[M ~map[string]V, V any](m M) error {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		id, err := strconv.Atoi(key)
		if err != nil || strconv.Itoa(id) != key {
			return errors.NewKeyNotIntegerError()
		}

		if id < 1 {
			return errors.NewKeyNotPositiveError()
		}
	}

	return nil
}

// ValidateIdentifierMaps validates custom dimensions, visit custom variables
// and screen custom variables, in that order, stopping at the first violation.
func ValidateIdentifierMaps(maps types.IdentifierMaps) error {
	if err := ValidateIdentifierMap(maps.CustomDimensions); err != nil {
		return err
	}

	if err := ValidateIdentifierMap(maps.VisitCustomVariables); err != nil {
		return err
	}

	return ValidateIdentifierMap(maps.ScreenCustomVariables)
}

func ValidateVisitorID(visitorID string) error {
	if !visitorIDRegexp.MatchString(visitorID) {
		return errors.NewInvalidVisitorIDError(visitorID, VisitorIDPattern)
	}

	return nil
}

// NormalizeProfileAttributes resolves the single-or-list input into a list.
// An empty list is rejected rather than forwarded as a no-op.
func NormalizeProfileAttributes(attributes types.ProfileAttributes) ([]types.ProfileAttribute, error) {
	if attr, ok := attributes.Attribute(); ok {
		return []types.ProfileAttribute{attr}, nil
	}

	list, _ := attributes.Attributes()
	if len(list) == 0 {
		return nil, errors.NewEmptyProfileAttributesError()
	}

	return list, nil
}
