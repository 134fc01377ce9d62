package config

import (
	"fmt"
	"io"
	"time"

	yaml "gopkg.in/yaml.v2"
)

const (
	CapabilityEmulated string = "emulated"
	CapabilityRemote   string = "remote"

	JournalMemory   string = "memory"
	JournalPostgres string = "postgres"
)

type CapabilityConfig struct {
	Mode     string `yaml:"mode"`
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`
	Timeout  string `yaml:"timeout"`
	Debug    bool   `yaml:"debug"`
}

// RequestTimeout returns the parsed timeout of calls to a remote native host,
// or zero when none is configured.
func (c CapabilityConfig) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Timeout)
}

type TrackerConfig struct {
	APIURL           string   `yaml:"apiUrl"`
	SiteID           string   `yaml:"siteId"`
	AutoInit         bool     `yaml:"autoInit"`
	DispatchInterval *int     `yaml:"dispatchInterval"`
	SessionTimeout   *int     `yaml:"sessionTimeout"`
	Audiences        []string `yaml:"audiences"`
}

type JournalConfig struct {
	Mode    string `yaml:"mode"`
	Webhook string `yaml:"webhook"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type Config struct {
	Capability CapabilityConfig `yaml:"capability"`
	Tracker    TrackerConfig    `yaml:"tracker"`
	Journal    JournalConfig    `yaml:"journal"`
	CORS       CORSConfig       `yaml:"cors"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Capability.Mode == "" {
		cfg.Capability.Mode = CapabilityEmulated
	}

	if cfg.Journal.Mode == "" {
		cfg.Journal.Mode = JournalMemory
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}

	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	switch cfg.Capability.Mode {
	case CapabilityEmulated:
	case CapabilityRemote:
		if cfg.Capability.Endpoint == "" {
			return fmt.Errorf("remote capability requires an endpoint")
		}
	default:
		return fmt.Errorf("unknown capability mode %q", cfg.Capability.Mode)
	}

	if _, err := cfg.Capability.RequestTimeout(); err != nil {
		return fmt.Errorf("invalid capability timeout: %w", err)
	}

	if cfg.Journal.Mode != JournalMemory && cfg.Journal.Mode != JournalPostgres {
		return fmt.Errorf("unknown journal mode %q", cfg.Journal.Mode)
	}

	if cfg.Tracker.AutoInit && (cfg.Tracker.APIURL == "" || cfg.Tracker.SiteID == "") {
		return fmt.Errorf("tracker auto init requires both apiUrl and siteId")
	}

	return nil
}
