package piwikpro

import (
	"context"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/types"
)

//go:generate moq -rm -out capability_mock.go . NativeCapability

// NativeCapability is the set of operations offered by the native analytics
// SDK. Implementations own all tracker state; they report ErrNotInitialized
// when called before Init and ErrAlreadyInitialized on a second Init.
type NativeCapability interface {
	Init(ctx context.Context, apiURL, siteID string) error

	TrackScreen(ctx context.Context, path string, options *types.ScreenViewOptions) error
	TrackCustomEvent(ctx context.Context, category, action string, options *types.CustomEventOptions) error
	TrackException(ctx context.Context, description string, isFatal bool, options *types.ExceptionOptions) error
	TrackSocialInteraction(ctx context.Context, interaction, network string, options *types.SocialInteractionOptions) error
	TrackDownload(ctx context.Context, url string, options *types.DownloadOptions) error
	TrackOutlink(ctx context.Context, url string, options *types.OutlinkOptions) error
	TrackSearch(ctx context.Context, keyword string, options *types.SearchOptions) error
	TrackImpression(ctx context.Context, contentName string, options *types.ImpressionOptions) error
	TrackInteraction(ctx context.Context, contentName string, options *types.InteractionOptions) error
	TrackGoal(ctx context.Context, goal int, options *types.GoalOptions) error
	TrackEcommerce(ctx context.Context, orderID string, grandTotal int, options *types.EcommerceOptions) error
	TrackCampaign(ctx context.Context, url string, options *types.CampaignOptions) error
	TrackProfileAttributes(ctx context.Context, attributes []types.ProfileAttribute) error

	GetProfileAttributes(ctx context.Context) (map[string]string, error)
	CheckAudienceMembership(ctx context.Context, audienceID string) (bool, error)

	SetUserID(ctx context.Context, userID string) error
	GetUserID(ctx context.Context) (string, error)
	SetUserEmail(ctx context.Context, email string) error
	GetUserEmail(ctx context.Context) (string, error)
	SetVisitorID(ctx context.Context, visitorID string) error
	GetVisitorID(ctx context.Context) (string, error)

	// SetSessionTimeout and GetSessionTimeout use seconds.
	SetSessionTimeout(ctx context.Context, timeout int) error
	GetSessionTimeout(ctx context.Context) (int, error)
	StartNewSession(ctx context.Context) error

	Dispatch(ctx context.Context) error
	// SetDispatchInterval and GetDispatchInterval use seconds. A negative
	// interval disables automatic dispatch.
	SetDispatchInterval(ctx context.Context, interval int) error
	GetDispatchInterval(ctx context.Context) (int, error)

	SetIncludeDefaultCustomVariables(ctx context.Context, include bool) error
	GetIncludeDefaultCustomVariables(ctx context.Context) (bool, error)
	SetAnonymizationState(ctx context.Context, enabled bool) error
	IsAnonymizationOn(ctx context.Context) (bool, error)
	SetOptOut(ctx context.Context, optOut bool) error
	GetOptOut(ctx context.Context) (bool, error)
	SetDryRun(ctx context.Context, dryRun bool) error
	GetDryRun(ctx context.Context) (bool, error)
	SetPrefixing(ctx context.Context, enabled bool) error
	IsPrefixingOn(ctx context.Context) (bool, error)
}
