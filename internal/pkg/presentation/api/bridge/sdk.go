package bridge

import (
	"context"
	"net/http"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro"
	"github.com/go-chi/chi/v5"
)

type initRequest struct {
	APIURL string `json:"apiUrl"`
	SiteID string `json:"siteId"`
}

func NewInitHandler(sdk piwikpro.SDK) http.HandlerFunc {
	return command("init", func(ctx context.Context, r *http.Request) error {
		body, err := decode[initRequest](r)
		if err != nil {
			return err
		}
		return sdk.Init(ctx, body.APIURL, body.SiteID)
	})
}

func NewDispatchHandler(sdk piwikpro.SDK) http.HandlerFunc {
	return command("dispatch", func(ctx context.Context, r *http.Request) error {
		return sdk.Dispatch(ctx)
	})
}

func NewStartNewSessionHandler(sdk piwikpro.SDK) http.HandlerFunc {
	return command("start-new-session", func(ctx context.Context, r *http.Request) error {
		return sdk.StartNewSession(ctx)
	})
}

func NewGetProfileAttributesHandler(sdk piwikpro.SDK) http.HandlerFunc {
	return query("get-profile-attributes", func(ctx context.Context, r *http.Request) (map[string]string, error) {
		return sdk.GetProfileAttributes(ctx)
	})
}

func NewCheckAudienceMembershipHandler(sdk piwikpro.SDK) http.HandlerFunc {
	return query("check-audience-membership", func(ctx context.Context, r *http.Request) (bool, error) {
		return sdk.CheckAudienceMembership(ctx, chi.URLParam(r, "audienceId"))
	})
}
