package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("piwikpro-bridge/api/authz")

type Enticator interface {
	CheckAccess(ctx context.Context, r *http.Request) error
}

type enticatorImpl struct {
	preparedQuery rego.PreparedEvalQuery
}

func NewAuthenticator(ctx context.Context, policies io.Reader) (Enticator, error) {

	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	impl := &enticatorImpl{}

	impl.preparedQuery, err = rego.New(
		rego.Query("x = data.example.authz.allow"),
		rego.Module("example.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	return impl, nil
}

// CheckAccess evaluates the policies for r and returns an ErrUnauthorized
// class error when access is denied.
func (e *enticatorImpl) CheckAccess(ctx context.Context, r *http.Request) error {
	var err error

	ctx, span := tracer.Start(ctx, "check-auth")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token := r.Header.Get("Authorization")

	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = token[7:]
	}

	path := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	input := map[string]any{
		"method": r.Method,
		"path":   path,
		"token":  token,
	}

	results, err := e.preparedQuery.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		logging.GetFromContext(ctx).Error("opa eval failed", "err", err.Error())
		err = errors.NewUnauthorizedError("authorization could not be evaluated")
		return err
	}

	if len(results) == 0 {
		err = errors.NewUnauthorizedError("auth failed: opa query could not be satisfied")
		return err
	}

	binding := results[0].Bindings["x"]

	// a denied request binds a single false, a granted one binds a result object
	allowed, ok := binding.(bool)
	if ok && !allowed {
		err = errors.NewUnauthorizedError("authorization failed")
		return err
	}

	_, ok = binding.(map[string]any)
	if !ok {
		err = errors.NewUnauthorizedError("opa error: unexpected result type")
		return err
	}

	return nil
}
