package types

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestScreenViewOptionsCarryAllThreeIdentifierMaps(t *testing.T) {
	is := is.New(t)

	opts := &ScreenViewOptions{
		CommonEventOptions: CommonEventOptions{
			CustomDimensions:     CustomDimensions{"1": "pizza"},
			VisitCustomVariables: CustomVariables{"2": {Name: "food", Value: "pizza"}},
		},
		ScreenCustomVariables: CustomVariables{"3": {Name: "color", Value: "green"}},
	}

	maps := opts.IdentifierMaps()

	is.Equal(maps.CustomDimensions["1"], "pizza")
	is.Equal(maps.VisitCustomVariables["2"].Value, "pizza")
	is.Equal(maps.ScreenCustomVariables["3"].Name, "color")
}

func TestNilOptionsHaveNoIdentifierMaps(t *testing.T) {
	is := is.New(t)

	var opts *ScreenViewOptions
	maps := opts.IdentifierMaps()

	is.True(maps.CustomDimensions == nil)
	is.True(maps.ScreenCustomVariables == nil)
}

func TestOptionsDecodeEmbeddedFieldsInline(t *testing.T) {
	is := is.New(t)

	opts := &SearchOptions{}
	err := json.Unmarshal([]byte(`{"category":"food","count":3,"customDimensions":{"1":"pizza"}}`), opts)
	is.NoErr(err)

	is.Equal(opts.Category, "food")
	is.Equal(*opts.Count, 3)
	is.Equal(opts.IdentifierMaps().CustomDimensions["1"], "pizza")
}

func TestDecodeSingleProfileAttribute(t *testing.T) {
	is := is.New(t)

	var attrs ProfileAttributes
	is.NoErr(json.Unmarshal([]byte(`{"name":"food","value":"pizza"}`), &attrs))

	attr, ok := attrs.Attribute()
	is.True(ok)
	is.True(!attrs.IsList())
	is.Equal(attr, ProfileAttribute{Name: "food", Value: "pizza"})
}

func TestDecodeProfileAttributeList(t *testing.T) {
	is := is.New(t)

	var attrs ProfileAttributes
	is.NoErr(json.Unmarshal([]byte(`[{"name":"food","value":"pizza"},{"name":"color","value":"green"}]`), &attrs))

	list, ok := attrs.Attributes()
	is.True(ok)
	is.Equal(len(list), 2)
	is.Equal(list[1].Name, "color")
}

func TestDecodeEmptyProfileAttributeListStaysAList(t *testing.T) {
	is := is.New(t)

	var attrs ProfileAttributes
	is.NoErr(json.Unmarshal([]byte(`[]`), &attrs))

	list, ok := attrs.Attributes()
	is.True(ok) // an explicit empty list is still a list
	is.Equal(len(list), 0)
}

func TestDecodeProfileAttributesRejectsScalars(t *testing.T) {
	is := is.New(t)

	var attrs ProfileAttributes
	err := json.Unmarshal([]byte(`"food"`), &attrs)

	is.True(err != nil)
}

func TestEncodeProfileAttributes(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(NewProfileAttribute("food", "pizza"))
	is.NoErr(err)
	is.Equal(string(b), `{"name":"food","value":"pizza"}`)

	b, err = json.Marshal(NewProfileAttributeList())
	is.NoErr(err)
	is.Equal(string(b), `[]`)
}
