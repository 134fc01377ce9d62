package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func Debug(enabled string) func(*nativeClient) {
	return func(c *nativeClient) {
		c.debug = (enabled == "true")
	}
}

// Timeout limits the duration of each call to the native host. Zero means no
// limit.
func Timeout(timeout time.Duration) func(*nativeClient) {
	return func(c *nativeClient) {
		c.httpClient.Timeout = timeout
	}
}

// Token sends token as a bearer token with every call.
func Token(token string) func(*nativeClient) {
	return func(c *nativeClient) {
		c.token = token
	}
}

// NewNativeClient returns a NativeCapability that forwards every operation to
// a remote native host at endpoint.
func NewNativeClient(endpoint string, options ...func(*nativeClient)) piwikpro.NativeCapability {
	c := &nativeClient{
		baseURL: strings.TrimSuffix(endpoint, "/"),
		debug:   false,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeOperation string = "native-operation"
	TraceAttributeEndpoint  string = "native-endpoint"
)

var tracer = otel.Tracer("piwikpro-native-client")

type nativeClient struct {
	baseURL    string
	token      string
	debug      bool
	httpClient *http.Client
}

type args map[string]any

type result[T any] struct {
	Value T `json:"value"`
}

func (c *nativeClient) Init(ctx context.Context, apiURL, siteID string) error {
	return c.exec(ctx, "init", args{"apiUrl": apiURL, "siteId": siteID})
}

func (c *nativeClient) TrackScreen(ctx context.Context, path string, options *types.ScreenViewOptions) error {
	return c.exec(ctx, "track-screen", args{"path": path, "options": options})
}

func (c *nativeClient) TrackCustomEvent(ctx context.Context, category, action string, options *types.CustomEventOptions) error {
	return c.exec(ctx, "track-custom-event", args{"category": category, "action": action, "options": options})
}

func (c *nativeClient) TrackException(ctx context.Context, description string, isFatal bool, options *types.ExceptionOptions) error {
	return c.exec(ctx, "track-exception", args{"description": description, "isFatal": isFatal, "options": options})
}

func (c *nativeClient) TrackSocialInteraction(ctx context.Context, interaction, network string, options *types.SocialInteractionOptions) error {
	return c.exec(ctx, "track-social-interaction", args{"interaction": interaction, "network": network, "options": options})
}

func (c *nativeClient) TrackDownload(ctx context.Context, url string, options *types.DownloadOptions) error {
	return c.exec(ctx, "track-download", args{"url": url, "options": options})
}

func (c *nativeClient) TrackOutlink(ctx context.Context, url string, options *types.OutlinkOptions) error {
	return c.exec(ctx, "track-outlink", args{"url": url, "options": options})
}

func (c *nativeClient) TrackSearch(ctx context.Context, keyword string, options *types.SearchOptions) error {
	return c.exec(ctx, "track-search", args{"keyword": keyword, "options": options})
}

func (c *nativeClient) TrackImpression(ctx context.Context, contentName string, options *types.ImpressionOptions) error {
	return c.exec(ctx, "track-impression", args{"contentName": contentName, "options": options})
}

func (c *nativeClient) TrackInteraction(ctx context.Context, contentName string, options *types.InteractionOptions) error {
	return c.exec(ctx, "track-interaction", args{"contentName": contentName, "options": options})
}

func (c *nativeClient) TrackGoal(ctx context.Context, goal int, options *types.GoalOptions) error {
	return c.exec(ctx, "track-goal", args{"goal": goal, "options": options})
}

func (c *nativeClient) TrackEcommerce(ctx context.Context, orderID string, grandTotal int, options *types.EcommerceOptions) error {
	return c.exec(ctx, "track-ecommerce", args{"orderId": orderID, "grandTotal": grandTotal, "options": options})
}

func (c *nativeClient) TrackCampaign(ctx context.Context, url string, options *types.CampaignOptions) error {
	return c.exec(ctx, "track-campaign", args{"url": url, "options": options})
}

func (c *nativeClient) TrackProfileAttributes(ctx context.Context, attributes []types.ProfileAttribute) error {
	return c.exec(ctx, "track-profile-attributes", args{"profileAttributes": attributes})
}

func (c *nativeClient) GetProfileAttributes(ctx context.Context) (map[string]string, error) {
	return call[map[string]string](ctx, c, "get-profile-attributes", nil)
}

func (c *nativeClient) CheckAudienceMembership(ctx context.Context, audienceID string) (bool, error) {
	return call[bool](ctx, c, "check-audience-membership", args{"audienceId": audienceID})
}

func (c *nativeClient) SetUserID(ctx context.Context, userID string) error {
	return c.exec(ctx, "set-user-id", args{"userId": userID})
}

func (c *nativeClient) GetUserID(ctx context.Context) (string, error) {
	return call[string](ctx, c, "get-user-id", nil)
}

func (c *nativeClient) SetUserEmail(ctx context.Context, email string) error {
	return c.exec(ctx, "set-user-email", args{"email": email})
}

func (c *nativeClient) GetUserEmail(ctx context.Context) (string, error) {
	return call[string](ctx, c, "get-user-email", nil)
}

func (c *nativeClient) SetVisitorID(ctx context.Context, visitorID string) error {
	return c.exec(ctx, "set-visitor-id", args{"visitorId": visitorID})
}

func (c *nativeClient) GetVisitorID(ctx context.Context) (string, error) {
	return call[string](ctx, c, "get-visitor-id", nil)
}

func (c *nativeClient) SetSessionTimeout(ctx context.Context, timeout int) error {
	return c.exec(ctx, "set-session-timeout", args{"timeout": timeout})
}

func (c *nativeClient) GetSessionTimeout(ctx context.Context) (int, error) {
	return call[int](ctx, c, "get-session-timeout", nil)
}

func (c *nativeClient) StartNewSession(ctx context.Context) error {
	return c.exec(ctx, "start-new-session", nil)
}

func (c *nativeClient) Dispatch(ctx context.Context) error {
	return c.exec(ctx, "dispatch", nil)
}

func (c *nativeClient) SetDispatchInterval(ctx context.Context, interval int) error {
	return c.exec(ctx, "set-dispatch-interval", args{"dispatchInterval": interval})
}

func (c *nativeClient) GetDispatchInterval(ctx context.Context) (int, error) {
	return call[int](ctx, c, "get-dispatch-interval", nil)
}

func (c *nativeClient) SetIncludeDefaultCustomVariables(ctx context.Context, include bool) error {
	return c.exec(ctx, "set-include-default-custom-variables", args{"includeDefaultCustomVariables": include})
}

func (c *nativeClient) GetIncludeDefaultCustomVariables(ctx context.Context) (bool, error) {
	return call[bool](ctx, c, "get-include-default-custom-variables", nil)
}

func (c *nativeClient) SetAnonymizationState(ctx context.Context, enabled bool) error {
	return c.exec(ctx, "set-anonymization-state", args{"anonymizationState": enabled})
}

func (c *nativeClient) IsAnonymizationOn(ctx context.Context) (bool, error) {
	return call[bool](ctx, c, "is-anonymization-on", nil)
}

func (c *nativeClient) SetOptOut(ctx context.Context, optOut bool) error {
	return c.exec(ctx, "set-opt-out", args{"optOut": optOut})
}

func (c *nativeClient) GetOptOut(ctx context.Context) (bool, error) {
	return call[bool](ctx, c, "get-opt-out", nil)
}

func (c *nativeClient) SetDryRun(ctx context.Context, dryRun bool) error {
	return c.exec(ctx, "set-dry-run", args{"dryRun": dryRun})
}

func (c *nativeClient) GetDryRun(ctx context.Context) (bool, error) {
	return call[bool](ctx, c, "get-dry-run", nil)
}

func (c *nativeClient) SetPrefixing(ctx context.Context, enabled bool) error {
	return c.exec(ctx, "set-prefixing", args{"prefixingEnabled": enabled})
}

func (c *nativeClient) IsPrefixingOn(ctx context.Context) (bool, error) {
	return call[bool](ctx, c, "is-prefixing-on", nil)
}

func (c *nativeClient) exec(ctx context.Context, operation string, arguments args) error {
	_, err := call[json.RawMessage](ctx, c, operation, arguments)
	return err
}

// call posts arguments to the native host and decodes the value of a
// successful response into a T. An empty response yields the zero T.
func call[T any](ctx context.Context, c *nativeClient, operation string, arguments args) (T, error) {
	var err error
	var value T

	ctx, span := tracer.Start(ctx, operation,
		trace.WithAttributes(attribute.String(TraceAttributeOperation, operation)),
		trace.WithAttributes(attribute.String(TraceAttributeEndpoint, c.baseURL)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if arguments == nil {
		arguments = args{}
	}

	requestBody, err := json.Marshal(arguments)
	if err != nil {
		err = fmt.Errorf("failed to marshal arguments of %s: %s (%w)", operation, err.Error(), errors.ErrInternal)
		return value, err
	}

	response, responseBody, err := c.callNativeHost(ctx, c.baseURL+"/native/"+operation, bytes.NewBuffer(requestBody))
	if err != nil {
		return value, err
	}

	if response.StatusCode >= http.StatusBadRequest {
		contentType := response.Header.Get("Content-Type")
		err = errors.NewErrorFromProblemReport(response.StatusCode, contentType, responseBody)
		return value, err
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusNoContent {
		err = fmt.Errorf("unexpected response code %d (%w)", response.StatusCode, errors.ErrInternal)
		return value, err
	}

	if len(responseBody) == 0 {
		return value, nil
	}

	r := result[T]{}
	err = json.Unmarshal(responseBody, &r)
	if err != nil {
		if c.debug && len(responseBody) < 1000 {
			err = fmt.Errorf("unmarshaling of %s failed with err %s (%w)", string(responseBody), err.Error(), errors.ErrBadResponse)
		} else {
			err = fmt.Errorf("failed to unmarshal response from native host: %s (%w)", err.Error(), errors.ErrBadResponse)
		}
		return value, err
	}

	return r.Value, nil
}

func (c *nativeClient) callNativeHost(ctx context.Context, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusUnauthorized {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		logging.GetFromContext(ctx).Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	return resp, respBody, nil
}
