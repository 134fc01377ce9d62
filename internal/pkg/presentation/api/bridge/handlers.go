package bridge

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"net/http"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const TraceAttributeOperation string = "bridge-operation"

type valueResponse struct {
	Value any `json:"value"`
}

// command wraps a call without a result. Success is answered with 204.
func command(operation string, fn func(ctx context.Context, r *http.Request) error) http.HandlerFunc {
	return handle(operation, func(ctx context.Context, r *http.Request) (any, bool, error) {
		return nil, false, fn(ctx, r)
	})
}

// query wraps a call with a result. Success is answered with 200 and the
// result as {"value": ...}.
func query[T any](operation string, fn func(ctx context.Context, r *http.Request) (T, error)) http.HandlerFunc {
	return handle(operation, func(ctx context.Context, r *http.Request) (any, bool, error) {
		value, err := fn(ctx, r)
		return value, true, err
	})
}

func handle(operation string, fn func(ctx context.Context, r *http.Request) (any, bool, error)) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), operation,
			trace.WithAttributes(attribute.String(TraceAttributeOperation, operation)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		value, hasValue, err := fn(ctx, r)
		if err != nil {
			if goerrors.Is(err, errors.ErrValidation) || goerrors.Is(err, errors.ErrBadRequest) {
				log.Info("rejected request", "operation", operation, "err", err.Error())
			} else {
				log.Error("operation failed", "operation", operation, "err", err.Error())
			}

			errors.ReportError(w, err, traceID)
			return
		}

		if !hasValue {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		body, err := json.Marshal(valueResponse{Value: value})
		if err != nil {
			errors.ReportError(w, errors.NewInternalError("failed to marshal response"), traceID)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

func decode[T any](r *http.Request) (T, error) {
	var body T

	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		return body, errors.NewBadRequestError(fmt.Sprintf("unable to decode request payload: %s", err.Error()))
	}

	return body, nil
}
