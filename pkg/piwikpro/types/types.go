package types

// CustomDimensions maps a dimension ID (in its decimal string form) to a value.
type CustomDimensions map[string]string

type CustomVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CustomVariables maps a variable slot ID (in its decimal string form) to a
// name/value pair.
type CustomVariables map[string]CustomVariable

// IdentifierMaps collects the identifier keyed maps an options bundle may carry.
// A nil map means the bundle did not provide it.
type IdentifierMaps struct {
	CustomDimensions      CustomDimensions
	VisitCustomVariables  CustomVariables
	ScreenCustomVariables CustomVariables
}

type EventOptions interface {
	IdentifierMaps() IdentifierMaps
}

type CommonEventOptions struct {
	CustomDimensions     CustomDimensions `json:"customDimensions,omitempty"`
	VisitCustomVariables CustomVariables  `json:"visitCustomVariables,omitempty"`
}

func (o *CommonEventOptions) IdentifierMaps() IdentifierMaps {
	if o == nil {
		return IdentifierMaps{}
	}

	return IdentifierMaps{
		CustomDimensions:     o.CustomDimensions,
		VisitCustomVariables: o.VisitCustomVariables,
	}
}

type ScreenViewOptions struct {
	CommonEventOptions
	Title                 string          `json:"title,omitempty"`
	ScreenCustomVariables CustomVariables `json:"screenCustomVariables,omitempty"`
}

func (o *ScreenViewOptions) IdentifierMaps() IdentifierMaps {
	if o == nil {
		return IdentifierMaps{}
	}

	maps := o.CommonEventOptions.IdentifierMaps()
	maps.ScreenCustomVariables = o.ScreenCustomVariables

	return maps
}

type CustomEventOptions struct {
	CommonEventOptions
	Path  string   `json:"path,omitempty"`
	Name  string   `json:"name,omitempty"`
	Value *float64 `json:"value,omitempty"`
}

type ExceptionOptions struct {
	CommonEventOptions
}

type SocialInteractionOptions struct {
	CommonEventOptions
	Target string `json:"target,omitempty"`
}

type DownloadOptions struct {
	CommonEventOptions
}

type OutlinkOptions struct {
	CommonEventOptions
}

type SearchOptions struct {
	CommonEventOptions
	Category string `json:"category,omitempty"`
	Count    *int   `json:"count,omitempty"`
}

type ImpressionOptions struct {
	CommonEventOptions
	Piece  string `json:"piece,omitempty"`
	Target string `json:"target,omitempty"`
}

type InteractionOptions struct {
	CommonEventOptions
	Piece  string `json:"piece,omitempty"`
	Target string `json:"target,omitempty"`
}

type GoalOptions struct {
	CommonEventOptions
	Revenue *float64 `json:"revenue,omitempty"`
}

type EcommerceItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	Price    int    `json:"price,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

type EcommerceOptions struct {
	CommonEventOptions
	Items    []EcommerceItem `json:"items,omitempty"`
	SubTotal *int            `json:"subTotal,omitempty"`
	Tax      *int            `json:"tax,omitempty"`
	Shipping *int            `json:"shipping,omitempty"`
	Discount *int            `json:"discount,omitempty"`
}

type CampaignOptions struct {
	CommonEventOptions
}
