package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(bytes.NewBufferString(configData))
	is.NoErr(err)

	is.Equal(cfg.Capability.Mode, CapabilityEmulated)
	is.Equal(cfg.Tracker.SiteID, "1111-2222-3333-dddd")
	is.True(cfg.Tracker.AutoInit)
	is.Equal(*cfg.Tracker.DispatchInterval, 30)
	is.True(cfg.Tracker.SessionTimeout == nil)
	is.Equal(cfg.Tracker.Audiences, []string{"a83d4aac-faa6-4746-96eb-5ac1e0f4fbd4"})
	is.Equal(cfg.Journal.Mode, JournalPostgres)
	is.Equal(cfg.Journal.Webhook, "http://receiver:8080/events")
	is.Equal(cfg.CORS.AllowedOrigins, []string{"https://app.example.com"})
}

func TestLoadEmptyConfigurationUsesDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(bytes.NewBufferString(""))
	is.NoErr(err)

	is.Equal(cfg.Capability.Mode, CapabilityEmulated)
	is.Equal(cfg.Journal.Mode, JournalMemory)
	is.Equal(cfg.CORS.AllowedOrigins, []string{"*"})
}

func TestRemoteCapability(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(bytes.NewBufferString(remoteConfigData))
	is.NoErr(err)

	timeout, err := cfg.Capability.RequestTimeout()
	is.NoErr(err)
	is.Equal(timeout, 5*time.Second)
	is.Equal(cfg.Capability.Endpoint, "http://native-host:8080")
}

func TestRemoteCapabilityWithoutEndpointFails(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString("capability:\n  mode: remote\n"))
	is.True(err != nil)
}

func TestUnknownModesFail(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString("capability:\n  mode: bluetooth\n"))
	is.True(err != nil)

	_, err = LoadConfiguration(bytes.NewBufferString("journal:\n  mode: redis\n"))
	is.True(err != nil)
}

func TestAutoInitRequiresSite(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString("tracker:\n  autoInit: true\n  apiUrl: https://example.com\n"))
	is.True(err != nil)
}

const configData string = `
capability:
  mode: emulated
tracker:
  apiUrl: https://example.piwik.pro
  siteId: 1111-2222-3333-dddd
  autoInit: true
  dispatchInterval: 30
  audiences:
    - a83d4aac-faa6-4746-96eb-5ac1e0f4fbd4
journal:
  mode: postgres
  webhook: http://receiver:8080/events
cors:
  allowedOrigins:
    - https://app.example.com
`

const remoteConfigData string = `
capability:
  mode: remote
  endpoint: http://native-host:8080
  timeout: 5s
`
