// Package bridge exposes the Piwik PRO SDK facade as a JSON API.
package bridge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diwise/piwikpro-bridge/internal/pkg/presentation/api/bridge/auth"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("piwikpro-bridge/api")

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, sdk piwikpro.SDK) error {

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(
			Logger(logging.GetFromContext(ctx)),
			RequiredContentTypes([]string{"application/json"}),
			Authorize(authenticator),
		)

		r.Route("/sdk", func(r chi.Router) {
			r.Post("/init", NewInitHandler(sdk))
			r.Post("/dispatch", NewDispatchHandler(sdk))
		})

		r.Route("/track", func(r chi.Router) {
			registerTrackHandlers(r, sdk)
		})

		r.Route("/audience", func(r chi.Router) {
			r.Get("/profile-attributes", NewGetProfileAttributesHandler(sdk))
			r.Get("/membership/{audienceId}", NewCheckAudienceMembershipHandler(sdk))
		})

		r.Post("/session/new", NewStartNewSessionHandler(sdk))

		settings := newSettings(sdk)
		r.Get("/settings/{setting}", NewGetSettingHandler(settings))
		r.Put("/settings/{setting}", NewPutSettingHandler(settings))
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			isValidContentType := true

			if len(contentType) > 0 {
				isValidContentType = false

				for _, t := range validTypes {
					if strings.HasPrefix(contentType, t) {
						isValidContentType = true
						break
					}
				}
			}

			if isValidContentType {
				next.ServeHTTP(w, r)
			} else {
				http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
			}
		})
	}
}

func Authorize(authenticator auth.Enticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			err := authenticator.CheckAccess(ctx, r)
			if err != nil {
				traceID, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(
					trace.SpanFromContext(ctx), logging.GetFromContext(ctx), ctx,
				)
				log.Warn("access denied", "method", r.Method, "path", r.URL.Path, "err", err.Error())
				errors.ReportError(w, err, traceID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
