package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"

	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var method = expects.RequestMethod
var path = expects.RequestPath

func DefaultTestFlags() FlagMap {
	flags := DefaultFlags()
	flags[servicePort] = "0"
	return flags
}

func TestIntegrateTrackAndDispatchToWebhook(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	receiver := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			expects.RequestBodyContaining(`"type":"screen"`),
			expects.RequestBodyContaining(`"siteId":"1111-2222-3333-dddd"`),
		),
		Returns(response.Code(http.StatusOK)),
	)
	defer receiver.Close()

	app, err := initialize(ctx, DefaultTestFlags(), newTestConfig(fmt.Sprintf(emulatedConfigFmt, receiver.URL())), newAuthConfig())
	is.NoErr(err)

	ts := httptest.NewServer(app.handler)
	defer ts.Close()

	resp, _ := testRequest(ts, http.MethodPost, "/api/v1/track/screen", bytes.NewBufferString(`{"path":"menu"}`))
	is.Equal(resp.StatusCode, http.StatusNoContent)

	resp, _ = testRequest(ts, http.MethodPost, "/api/v1/sdk/dispatch", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)

	is.NoErr(app.shutdown(ctx))

	is.Equal(receiver.RequestCount(), 1)
}

func TestIntegrateSettingsRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	app, err := initialize(ctx, DefaultTestFlags(), newTestConfig(fmt.Sprintf(emulatedConfigFmt, "")), newAuthConfig())
	is.NoErr(err)
	defer app.shutdown(ctx)

	ts := httptest.NewServer(app.handler)
	defer ts.Close()

	resp, body := testRequest(ts, http.MethodGet, "/api/v1/settings/dispatch-interval", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"value":60}`)

	resp, _ = testRequest(ts, http.MethodPut, "/api/v1/settings/session-timeout", bytes.NewBufferString(`{"value":600}`))
	is.Equal(resp.StatusCode, http.StatusNoContent)

	resp, body = testRequest(ts, http.MethodGet, "/api/v1/settings/session-timeout", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"value":600}`)

	resp, _ = testRequest(ts, http.MethodPut, "/api/v1/settings/session-timeout", bytes.NewBufferString(`{"value":600.5}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestIntegrateSecondInitIsConflict(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	app, err := initialize(ctx, DefaultTestFlags(), newTestConfig(fmt.Sprintf(emulatedConfigFmt, "")), newAuthConfig())
	is.NoErr(err)
	defer app.shutdown(ctx)

	ts := httptest.NewServer(app.handler)
	defer ts.Close()

	resp, body := testRequest(ts, http.MethodPost, "/api/v1/sdk/init", bytes.NewBufferString(`{"apiUrl":"https://example.com","siteId":"1111-2222-3333-dddd"}`))

	is.Equal(resp.StatusCode, http.StatusConflict)
	is.True(strings.Contains(body, "Piwik Pro SDK has been already initialized"))
}

func TestIntegrateRemoteNativeHost(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	nativeHost := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/native/track-search"),
			expects.RequestBody(`{"keyword":"pizza","options":null}`),
		),
		Returns(response.Code(http.StatusNoContent)),
	)
	defer nativeHost.Close()

	app, err := initialize(ctx, DefaultTestFlags(), newTestConfig(fmt.Sprintf(remoteConfigFmt, nativeHost.URL())), newAuthConfig())
	is.NoErr(err)
	defer app.shutdown(ctx)

	ts := httptest.NewServer(app.handler)
	defer ts.Close()

	resp, _ := testRequest(ts, http.MethodPost, "/api/v1/track/search", bytes.NewBufferString(`{"keyword":"pizza"}`))

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(nativeHost.RequestCount(), 1)
}

func TestHealth(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	app, err := initialize(ctx, DefaultTestFlags(), newTestConfig(fmt.Sprintf(emulatedConfigFmt, "")), newAuthConfig())
	is.NoErr(err)
	defer app.shutdown(ctx)

	ts := httptest.NewServer(app.handler)
	defer ts.Close()

	resp, _ := testRequest(ts, http.MethodGet, "/health", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func testRequest(ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	req.Header.Add("Content-Type", "application/json")
	resp, _ := http.DefaultClient.Do(req)
	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}

func newAuthConfig() io.ReadCloser {
	return io.NopCloser(bytes.NewBufferString(opaModule))
}

func newTestConfig(cfg string) io.ReadCloser {
	return io.NopCloser(bytes.NewBufferString(cfg))
}

const emulatedConfigFmt string = `
capability:
  mode: emulated
tracker:
  apiUrl: https://example.piwik.pro
  siteId: 1111-2222-3333-dddd
  autoInit: true
  dispatchInterval: 60
journal:
  mode: memory
  webhook: "%s"
`

const remoteConfigFmt string = `
capability:
  mode: remote
  endpoint: %s
  timeout: 5s
`

const opaModule string = `
package example.authz

default allow := false

allow = response {
    response := {
    }
}
`
