// Package piwikpro is the client facade of the Piwik PRO analytics SDK. Every
// operation validates its structured arguments and then makes exactly one call
// to the injected NativeCapability, returning its result or error unmodified.
package piwikpro

import (
	"context"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/types"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/validation"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type SDK interface {
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
	TrackProfileAttributes(ctx context.Context, attributes types.ProfileAttributes) error

	GetProfileAttributes(ctx context.Context) (map[string]string, error)
	CheckAudienceMembership(ctx context.Context, audienceID string) (bool, error)

	SetUserID(ctx context.Context, userID string) error
	GetUserID(ctx context.Context) (string, error)
	SetUserEmail(ctx context.Context, email string) error
	GetUserEmail(ctx context.Context) (string, error)
	SetVisitorID(ctx context.Context, visitorID string) error
	GetVisitorID(ctx context.Context) (string, error)

	SetSessionTimeout(ctx context.Context, timeout float64) error
	GetSessionTimeout(ctx context.Context) (int, error)
	StartNewSession(ctx context.Context) error

	Dispatch(ctx context.Context) error
	SetDispatchInterval(ctx context.Context, interval float64) error
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

const LinkingErrorMessage string = "the Piwik PRO native capability is not available. Make sure that:\n" +
	"- a native capability is configured (emulated tracker or remote native host)\n" +
	"- the remote native host endpoint is reachable when running in remote mode\n"

const (
	TraceAttributeOperation string = "operation"
	TraceAttributeSubject   string = "subject"
)

var tracer = otel.Tracer("piwikpro-bridge/sdk")

type sdk struct {
	native NativeCapability
}

// New returns an SDK that delegates to native. It fails with ErrNotLinked
// when no capability is given, instead of deferring that failure to the
// first call.
func New(native NativeCapability) (SDK, error) {
	if native == nil {
		return nil, errors.NewNotLinkedError(LinkingErrorMessage)
	}

	return &sdk{native: native}, nil
}

// invoke validates and then delegates. The capability receives a context
// without cancellation since an issued native call cannot be aborted.
func invoke(ctx context.Context, operation string, validate func() error, delegate func(context.Context) error, attrs ...attribute.KeyValue) error {
	var err error

	ctx, span := tracer.Start(ctx, operation,
		trace.WithAttributes(append(attrs, attribute.String(TraceAttributeOperation, operation))...),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if validate != nil {
		if err = validate(); err != nil {
			logging.GetFromContext(ctx).Debug("rejected invalid parameters", "operation", operation, "err", err.Error())
			return err
		}
	}

	err = delegate(context.WithoutCancel(ctx))
	return err
}

func query[T any](ctx context.Context, operation string, delegate func(context.Context) (T, error), attrs ...attribute.KeyValue) (T, error) {
	var result T

	err := invoke(ctx, operation, nil, func(ctx context.Context) error {
		var err error
		result, err = delegate(ctx)
		return err
	}, attrs...)

	return result, err
}

func validateOptions[T any, P interface {
	*T
	types.EventOptions
}](options P) func() error {
	return func() error {
		if options == nil {
			return nil
		}
		return validation.ValidateIdentifierMaps(options.IdentifierMaps())
	}
}

func subject(s string) attribute.KeyValue {
	return attribute.String(TraceAttributeSubject, s)
}

func (s *sdk) Init(ctx context.Context, apiURL, siteID string) error {
	return invoke(ctx, "init", nil, func(ctx context.Context) error {
		return s.native.Init(ctx, apiURL, siteID)
	}, attribute.String("site-id", siteID))
}

func (s *sdk) TrackScreen(ctx context.Context, path string, options *types.ScreenViewOptions) error {
	return invoke(ctx, "track-screen", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackScreen(ctx, path, options)
	}, subject(path))
}

func (s *sdk) TrackCustomEvent(ctx context.Context, category, action string, options *types.CustomEventOptions) error {
	return invoke(ctx, "track-custom-event", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackCustomEvent(ctx, category, action, options)
	}, subject(category+"/"+action))
}

func (s *sdk) TrackException(ctx context.Context, description string, isFatal bool, options *types.ExceptionOptions) error {
	return invoke(ctx, "track-exception", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackException(ctx, description, isFatal, options)
	}, attribute.Bool("fatal", isFatal))
}

func (s *sdk) TrackSocialInteraction(ctx context.Context, interaction, network string, options *types.SocialInteractionOptions) error {
	return invoke(ctx, "track-social-interaction", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackSocialInteraction(ctx, interaction, network, options)
	}, subject(network))
}

func (s *sdk) TrackDownload(ctx context.Context, url string, options *types.DownloadOptions) error {
	return invoke(ctx, "track-download", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackDownload(ctx, url, options)
	}, subject(url))
}

func (s *sdk) TrackOutlink(ctx context.Context, url string, options *types.OutlinkOptions) error {
	return invoke(ctx, "track-outlink", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackOutlink(ctx, url, options)
	}, subject(url))
}

func (s *sdk) TrackSearch(ctx context.Context, keyword string, options *types.SearchOptions) error {
	return invoke(ctx, "track-search", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackSearch(ctx, keyword, options)
	})
}

func (s *sdk) TrackImpression(ctx context.Context, contentName string, options *types.ImpressionOptions) error {
	return invoke(ctx, "track-impression", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackImpression(ctx, contentName, options)
	}, subject(contentName))
}

func (s *sdk) TrackInteraction(ctx context.Context, contentName string, options *types.InteractionOptions) error {
	return invoke(ctx, "track-interaction", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackInteraction(ctx, contentName, options)
	}, subject(contentName))
}

func (s *sdk) TrackGoal(ctx context.Context, goal int, options *types.GoalOptions) error {
	return invoke(ctx, "track-goal", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackGoal(ctx, goal, options)
	}, attribute.Int("goal", goal))
}

func (s *sdk) TrackEcommerce(ctx context.Context, orderID string, grandTotal int, options *types.EcommerceOptions) error {
	return invoke(ctx, "track-ecommerce", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackEcommerce(ctx, orderID, grandTotal, options)
	}, subject(orderID))
}

func (s *sdk) TrackCampaign(ctx context.Context, url string, options *types.CampaignOptions) error {
	return invoke(ctx, "track-campaign", validateOptions(options), func(ctx context.Context) error {
		return s.native.TrackCampaign(ctx, url, options)
	}, subject(url))
}

func (s *sdk) TrackProfileAttributes(ctx context.Context, attributes types.ProfileAttributes) error {
	var normalized []types.ProfileAttribute

	return invoke(ctx, "track-profile-attributes",
		func() error {
			var err error
			normalized, err = validation.NormalizeProfileAttributes(attributes)
			return err
		},
		func(ctx context.Context) error {
			return s.native.TrackProfileAttributes(ctx, normalized)
		},
	)
}

func (s *sdk) GetProfileAttributes(ctx context.Context) (map[string]string, error) {
	return query(ctx, "get-profile-attributes", s.native.GetProfileAttributes)
}

func (s *sdk) CheckAudienceMembership(ctx context.Context, audienceID string) (bool, error) {
	return query(ctx, "check-audience-membership", func(ctx context.Context) (bool, error) {
		return s.native.CheckAudienceMembership(ctx, audienceID)
	}, subject(audienceID))
}

func (s *sdk) SetUserID(ctx context.Context, userID string) error {
	return invoke(ctx, "set-user-id", nil, func(ctx context.Context) error {
		return s.native.SetUserID(ctx, userID)
	})
}

func (s *sdk) GetUserID(ctx context.Context) (string, error) {
	return query(ctx, "get-user-id", s.native.GetUserID)
}

func (s *sdk) SetUserEmail(ctx context.Context, email string) error {
	return invoke(ctx, "set-user-email", nil, func(ctx context.Context) error {
		return s.native.SetUserEmail(ctx, email)
	})
}

func (s *sdk) GetUserEmail(ctx context.Context) (string, error) {
	return query(ctx, "get-user-email", s.native.GetUserEmail)
}

func (s *sdk) SetVisitorID(ctx context.Context, visitorID string) error {
	return invoke(ctx, "set-visitor-id",
		func() error { return validation.ValidateVisitorID(visitorID) },
		func(ctx context.Context) error { return s.native.SetVisitorID(ctx, visitorID) },
	)
}

func (s *sdk) GetVisitorID(ctx context.Context) (string, error) {
	return query(ctx, "get-visitor-id", s.native.GetVisitorID)
}

func (s *sdk) SetSessionTimeout(ctx context.Context, timeout float64) error {
	return invoke(ctx, "set-session-timeout",
		func() error { return validation.ValidateInteger(timeout) },
		func(ctx context.Context) error { return s.native.SetSessionTimeout(ctx, int(timeout)) },
	)
}

func (s *sdk) GetSessionTimeout(ctx context.Context) (int, error) {
	return query(ctx, "get-session-timeout", s.native.GetSessionTimeout)
}

func (s *sdk) StartNewSession(ctx context.Context) error {
	return invoke(ctx, "start-new-session", nil, s.native.StartNewSession)
}

func (s *sdk) Dispatch(ctx context.Context) error {
	return invoke(ctx, "dispatch", nil, s.native.Dispatch)
}

func (s *sdk) SetDispatchInterval(ctx context.Context, interval float64) error {
	return invoke(ctx, "set-dispatch-interval",
		func() error { return validation.ValidateInteger(interval) },
		func(ctx context.Context) error { return s.native.SetDispatchInterval(ctx, int(interval)) },
	)
}

func (s *sdk) GetDispatchInterval(ctx context.Context) (int, error) {
	return query(ctx, "get-dispatch-interval", s.native.GetDispatchInterval)
}

func (s *sdk) SetIncludeDefaultCustomVariables(ctx context.Context, include bool) error {
	return invoke(ctx, "set-include-default-custom-variables", nil, func(ctx context.Context) error {
		return s.native.SetIncludeDefaultCustomVariables(ctx, include)
	})
}

func (s *sdk) GetIncludeDefaultCustomVariables(ctx context.Context) (bool, error) {
	return query(ctx, "get-include-default-custom-variables", s.native.GetIncludeDefaultCustomVariables)
}

func (s *sdk) SetAnonymizationState(ctx context.Context, enabled bool) error {
	return invoke(ctx, "set-anonymization-state", nil, func(ctx context.Context) error {
		return s.native.SetAnonymizationState(ctx, enabled)
	})
}

func (s *sdk) IsAnonymizationOn(ctx context.Context) (bool, error) {
	return query(ctx, "is-anonymization-on", s.native.IsAnonymizationOn)
}

func (s *sdk) SetOptOut(ctx context.Context, optOut bool) error {
	return invoke(ctx, "set-opt-out", nil, func(ctx context.Context) error {
		return s.native.SetOptOut(ctx, optOut)
	})
}

func (s *sdk) GetOptOut(ctx context.Context) (bool, error) {
	return query(ctx, "get-opt-out", s.native.GetOptOut)
}

func (s *sdk) SetDryRun(ctx context.Context, dryRun bool) error {
	return invoke(ctx, "set-dry-run", nil, func(ctx context.Context) error {
		return s.native.SetDryRun(ctx, dryRun)
	})
}

func (s *sdk) GetDryRun(ctx context.Context) (bool, error) {
	return query(ctx, "get-dry-run", s.native.GetDryRun)
}

func (s *sdk) SetPrefixing(ctx context.Context, enabled bool) error {
	return invoke(ctx, "set-prefixing", nil, func(ctx context.Context) error {
		return s.native.SetPrefixing(ctx, enabled)
	})
}

func (s *sdk) IsPrefixingOn(ctx context.Context) (bool, error) {
	return query(ctx, "is-prefixing-on", s.native.IsPrefixingOn)
}
