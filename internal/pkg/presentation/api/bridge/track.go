package bridge

import (
	"context"
	"net/http"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/types"
	"github.com/go-chi/chi/v5"
)

type screenRequest struct {
	Path    string                   `json:"path"`
	Options *types.ScreenViewOptions `json:"options"`
}

type customEventRequest struct {
	Category string                    `json:"category"`
	Action   string                    `json:"action"`
	Options  *types.CustomEventOptions `json:"options"`
}

type exceptionRequest struct {
	Description string                  `json:"description"`
	IsFatal     bool                    `json:"isFatal"`
	Options     *types.ExceptionOptions `json:"options"`
}

type socialInteractionRequest struct {
	Interaction string                          `json:"interaction"`
	Network     string                          `json:"network"`
	Options     *types.SocialInteractionOptions `json:"options"`
}

type urlRequest[O any] struct {
	URL     string `json:"url"`
	Options *O     `json:"options"`
}

type searchRequest struct {
	Keyword string               `json:"keyword"`
	Options *types.SearchOptions `json:"options"`
}

type contentRequest[O any] struct {
	ContentName string `json:"contentName"`
	Options     *O     `json:"options"`
}

type goalRequest struct {
	Goal    int                `json:"goal"`
	Options *types.GoalOptions `json:"options"`
}

type ecommerceRequest struct {
	OrderID    string                  `json:"orderId"`
	GrandTotal int                     `json:"grandTotal"`
	Options    *types.EcommerceOptions `json:"options"`
}

type profileAttributesRequest struct {
	ProfileAttributes types.ProfileAttributes `json:"profileAttributes"`
}

func registerTrackHandlers(r chi.Router, sdk piwikpro.SDK) {
	r.Post("/screen", track("track-screen", func(ctx context.Context, b screenRequest) error {
		return sdk.TrackScreen(ctx, b.Path, b.Options)
	}))
	r.Post("/custom-event", track("track-custom-event", func(ctx context.Context, b customEventRequest) error {
		return sdk.TrackCustomEvent(ctx, b.Category, b.Action, b.Options)
	}))
	r.Post("/exception", track("track-exception", func(ctx context.Context, b exceptionRequest) error {
		return sdk.TrackException(ctx, b.Description, b.IsFatal, b.Options)
	}))
	r.Post("/social-interaction", track("track-social-interaction", func(ctx context.Context, b socialInteractionRequest) error {
		return sdk.TrackSocialInteraction(ctx, b.Interaction, b.Network, b.Options)
	}))
	r.Post("/download", track("track-download", func(ctx context.Context, b urlRequest[types.DownloadOptions]) error {
		return sdk.TrackDownload(ctx, b.URL, b.Options)
	}))
	r.Post("/outlink", track("track-outlink", func(ctx context.Context, b urlRequest[types.OutlinkOptions]) error {
		return sdk.TrackOutlink(ctx, b.URL, b.Options)
	}))
	r.Post("/search", track("track-search", func(ctx context.Context, b searchRequest) error {
		return sdk.TrackSearch(ctx, b.Keyword, b.Options)
	}))
	r.Post("/impression", track("track-impression", func(ctx context.Context, b contentRequest[types.ImpressionOptions]) error {
		return sdk.TrackImpression(ctx, b.ContentName, b.Options)
	}))
	r.Post("/interaction", track("track-interaction", func(ctx context.Context, b contentRequest[types.InteractionOptions]) error {
		return sdk.TrackInteraction(ctx, b.ContentName, b.Options)
	}))
	r.Post("/goal", track("track-goal", func(ctx context.Context, b goalRequest) error {
		return sdk.TrackGoal(ctx, b.Goal, b.Options)
	}))
	r.Post("/ecommerce", track("track-ecommerce", func(ctx context.Context, b ecommerceRequest) error {
		return sdk.TrackEcommerce(ctx, b.OrderID, b.GrandTotal, b.Options)
	}))
	r.Post("/campaign", track("track-campaign", func(ctx context.Context, b urlRequest[types.CampaignOptions]) error {
		return sdk.TrackCampaign(ctx, b.URL, b.Options)
	}))
	r.Post("/profile-attributes", track("track-profile-attributes", func(ctx context.Context, b profileAttributesRequest) error {
		return sdk.TrackProfileAttributes(ctx, b.ProfileAttributes)
	}))
}

func track[B any](operation string, call func(ctx context.Context, body B) error) http.HandlerFunc {
	return command(operation, func(ctx context.Context, r *http.Request) error {
		body, err := decode[B](r)
		if err != nil {
			return err
		}
		return call(ctx, body)
	})
}
