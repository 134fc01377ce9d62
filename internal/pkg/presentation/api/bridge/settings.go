package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/go-chi/chi/v5"
)

type setting struct {
	get func(ctx context.Context) (any, error)
	put func(ctx context.Context, value json.RawMessage) error
}

func newSetting[G, S any](get func(context.Context) (G, error), set func(context.Context, S) error) setting {
	return setting{
		get: func(ctx context.Context) (any, error) {
			return get(ctx)
		},
		put: func(ctx context.Context, raw json.RawMessage) error {
			var value S
			if err := json.Unmarshal(raw, &value); err != nil {
				return errors.NewBadRequestError(fmt.Sprintf("invalid setting value %s: %s", string(raw), err.Error()))
			}
			return set(ctx, value)
		},
	}
}

func newSettings(sdk piwikpro.SDK) map[string]setting {
	return map[string]setting{
		"user-id":                          newSetting(sdk.GetUserID, sdk.SetUserID),
		"user-email":                       newSetting(sdk.GetUserEmail, sdk.SetUserEmail),
		"visitor-id":                       newSetting(sdk.GetVisitorID, sdk.SetVisitorID),
		"session-timeout":                  newSetting(sdk.GetSessionTimeout, sdk.SetSessionTimeout),
		"dispatch-interval":                newSetting(sdk.GetDispatchInterval, sdk.SetDispatchInterval),
		"anonymization":                    newSetting(sdk.IsAnonymizationOn, sdk.SetAnonymizationState),
		"opt-out":                          newSetting(sdk.GetOptOut, sdk.SetOptOut),
		"dry-run":                          newSetting(sdk.GetDryRun, sdk.SetDryRun),
		"prefixing":                        newSetting(sdk.IsPrefixingOn, sdk.SetPrefixing),
		"include-default-custom-variables": newSetting(sdk.GetIncludeDefaultCustomVariables, sdk.SetIncludeDefaultCustomVariables),
	}
}

func NewGetSettingHandler(settings map[string]setting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "setting")

		s, ok := settings[name]
		if !ok {
			http.Error(w, fmt.Sprintf("unknown setting %q", name), http.StatusNotFound)
			return
		}

		query("get-"+name, func(ctx context.Context, r *http.Request) (any, error) {
			return s.get(ctx)
		})(w, r)
	}
}

func NewPutSettingHandler(settings map[string]setting) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "setting")

		s, ok := settings[name]
		if !ok {
			http.Error(w, fmt.Sprintf("unknown setting %q", name), http.StatusNotFound)
			return
		}

		command("set-"+name, func(ctx context.Context, r *http.Request) error {
			body, err := decode[struct {
				Value json.RawMessage `json:"value"`
			}](r)
			if err != nil {
				return err
			}

			if len(body.Value) == 0 || bytes.Equal(body.Value, []byte("null")) {
				return errors.NewBadRequestError("setting value is required")
			}

			return s.put(ctx, body.Value)
		})(w, r)
	}
}
