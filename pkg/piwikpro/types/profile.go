package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type ProfileAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProfileAttributes holds either a single attribute or an ordered list of
// attributes, as accepted by the profile attribute tracking call.
type ProfileAttributes struct {
	single *ProfileAttribute
	list   []ProfileAttribute
	isList bool
}

func NewProfileAttribute(name, value string) ProfileAttributes {
	return ProfileAttributes{
		single: &ProfileAttribute{Name: name, Value: value},
	}
}

func NewProfileAttributeList(attributes ...ProfileAttribute) ProfileAttributes {
	if attributes == nil {
		attributes = []ProfileAttribute{}
	}

	return ProfileAttributes{
		list:   attributes,
		isList: true,
	}
}

func (p ProfileAttributes) IsList() bool {
	return p.isList
}

// Attribute returns the single attribute, if that is what p holds.
func (p ProfileAttributes) Attribute() (ProfileAttribute, bool) {
	if p.isList || p.single == nil {
		return ProfileAttribute{}, false
	}
	return *p.single, true
}

// Attributes returns the list, if that is what p holds.
func (p ProfileAttributes) Attributes() ([]ProfileAttribute, bool) {
	if !p.isList {
		return nil, false
	}
	return p.list, true
}

func (p ProfileAttributes) MarshalJSON() ([]byte, error) {
	if p.isList {
		return json.Marshal(p.list)
	}
	if p.single != nil {
		return json.Marshal(p.single)
	}
	return []byte("null"), nil
}

func (p *ProfileAttributes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("profile attributes: empty input")
	}

	switch trimmed[0] {
	case '[':
		list := []ProfileAttribute{}
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("profile attributes: %w", err)
		}
		*p = NewProfileAttributeList(list...)
	case '{':
		attr := ProfileAttribute{}
		if err := json.Unmarshal(trimmed, &attr); err != nil {
			return fmt.Errorf("profile attributes: %w", err)
		}
		*p = ProfileAttributes{single: &attr}
	case 'n':
		*p = ProfileAttributes{}
	default:
		return fmt.Errorf("profile attributes: expected an object or an array")
	}

	return nil
}
