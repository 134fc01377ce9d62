package validation

import (
	goerrors "errors"
	"math"
	"strings"
	"testing"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/types"
	"github.com/matryer/is"
)

func TestValidateIntegerAcceptsWholeNumbers(t *testing.T) {
	is := is.New(t)

	for _, n := range []float64{0, 1, 5, -1, 3600, 1e9} {
		is.NoErr(ValidateInteger(n))
	}
}

func TestValidateIntegerRejectsFractions(t *testing.T) {
	is := is.New(t)

	for _, x := range []float64{5.1, 1.1, -0.5, math.NaN(), math.Inf(1)} {
		err := ValidateInteger(x)
		is.True(goerrors.Is(err, errors.ErrNotInteger))
		is.Equal(err.Error(), "parameter must be an integer number")
	}
}

func TestValidateIdentifierMapAcceptsPositiveIntegerKeys(t *testing.T) {
	is := is.New(t)

	is.NoErr(ValidateIdentifierMap(types.CustomDimensions{"1": "blue", "3": "green"}))
	is.NoErr(ValidateIdentifierMap(types.CustomVariables{"12": {Name: "food", Value: "pizza"}}))
}

func TestValidateIdentifierMapAcceptsAbsentMap(t *testing.T) {
	is := is.New(t)

	var dims types.CustomDimensions
	is.NoErr(ValidateIdentifierMap(dims))
}

func TestValidateIdentifierMapRejectsNonIntegerKey(t *testing.T) {
	is := is.New(t)

	err := ValidateIdentifierMap(types.CustomDimensions{"1.2": "blue", "3": "green"})

	is.True(goerrors.Is(err, errors.ErrKeyNotInteger))
	is.Equal(err.Error(), "ID (key) must be an integer")
}

func TestValidateIdentifierMapRejectsNonCanonicalKeys(t *testing.T) {
	is := is.New(t)

	for _, key := range []string{"01", "+1", "-0", " 1", "abc", "", "NaN", "99999999999999999999"} {
		err := ValidateIdentifierMap(types.CustomDimensions{key: "x"})
		is.True(goerrors.Is(err, errors.ErrKeyNotInteger)) // key should be rejected as non canonical
	}
}

func TestValidateIdentifierMapRejectsKeyBelowOne(t *testing.T) {
	is := is.New(t)

	err := ValidateIdentifierMap(types.CustomDimensions{"0": "blue", "3": "green"})
	is.True(goerrors.Is(err, errors.ErrKeyNotPositive))
	is.Equal(err.Error(), "ID (key) must be an integer greater than 0")

	err = ValidateIdentifierMap(types.CustomDimensions{"-4": "blue"})
	is.True(goerrors.Is(err, errors.ErrKeyNotPositive))
}

func TestValidateIdentifierMapReportsFirstKeyInSortedOrder(t *testing.T) {
	is := is.New(t)

	dims := types.CustomDimensions{"0": "a", "1.5": "b"}

	for range 20 {
		err := ValidateIdentifierMap(dims)
		is.True(goerrors.Is(err, errors.ErrKeyNotPositive)) // "0" sorts before "1.5"
	}
}

func TestValidateIdentifierMapsStopsAtFirstViolation(t *testing.T) {
	is := is.New(t)

	err := ValidateIdentifierMaps(types.IdentifierMaps{
		CustomDimensions:      types.CustomDimensions{"1": "ok"},
		VisitCustomVariables:  types.CustomVariables{"1.2": {Name: "a", Value: "b"}},
		ScreenCustomVariables: types.CustomVariables{"0": {Name: "c", Value: "d"}},
	})

	is.True(goerrors.Is(err, errors.ErrKeyNotInteger)) // visit variables are checked before screen variables
}

func TestValidateIdentifierMapsChecksScreenVariables(t *testing.T) {
	is := is.New(t)

	err := ValidateIdentifierMaps(types.IdentifierMaps{
		ScreenCustomVariables: types.CustomVariables{"0": {Name: "c", Value: "d"}},
	})

	is.True(goerrors.Is(err, errors.ErrKeyNotPositive))
}

func TestValidateVisitorID(t *testing.T) {
	is := is.New(t)

	is.NoErr(ValidateVisitorID("0123456789abcdef"))

	for _, id := range []string{"xyz", "0123456789ABCDEF", "0123456789abcde", "0123456789abcdef0", "", "0123456789abcdeg"} {
		err := ValidateVisitorID(id)
		is.True(goerrors.Is(err, errors.ErrInvalidVisitorID))
		is.True(strings.Contains(err.Error(), `"`+id+`"`))      // message should name the offending value
		is.True(strings.Contains(err.Error(), VisitorIDPattern)) // message should name the pattern
	}
}

func TestNormalizeSingleProfileAttribute(t *testing.T) {
	is := is.New(t)

	attrs, err := NormalizeProfileAttributes(types.NewProfileAttribute("food", "pizza"))

	is.NoErr(err)
	is.Equal(attrs, []types.ProfileAttribute{{Name: "food", Value: "pizza"}})
}

func TestNormalizeProfileAttributeListKeepsOrder(t *testing.T) {
	is := is.New(t)

	input := []types.ProfileAttribute{{Name: "food", Value: "pizza"}, {Name: "color", Value: "green"}}
	attrs, err := NormalizeProfileAttributes(types.NewProfileAttributeList(input...))

	is.NoErr(err)
	is.Equal(attrs, input)
}

func TestNormalizeEmptyProfileAttributeListFails(t *testing.T) {
	is := is.New(t)

	_, err := NormalizeProfileAttributes(types.NewProfileAttributeList())

	is.True(goerrors.Is(err, errors.ErrEmptyProfileAttributes))
	is.True(goerrors.Is(err, errors.ErrValidation))
}

func TestNormalizeUnsetProfileAttributesFails(t *testing.T) {
	is := is.New(t)

	_, err := NormalizeProfileAttributes(types.ProfileAttributes{})

	is.True(goerrors.Is(err, errors.ErrEmptyProfileAttributes))
}
