package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types so that durations can be written as strings like "24h" or "30s".
type StructuredJSONConfig struct {
	App struct {
		SecretKey      string `json:"secret_key"`
		SessionSignKey string `json:"session_sign_key"`
		Environment    string `json:"environment"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Session struct {
		Dir          string   `json:"dir"`
		TTL          Duration `json:"ttl"`
		ReapInterval Duration `json:"reap_interval"`
	} `json:"session,omitempty"`

	Plaid struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"plaid,omitempty"`

	Webhooks struct {
		AllowedIPs            string   `json:"allowed_ips"`
		Retention             Duration `json:"retention"`
		RateLimit             int      `json:"rate_limit"`
		RateWindow            Duration `json:"rate_window"`
		RegistryTTL           Duration `json:"registry_ttl"`
		RegistrySweepInterval Duration `json:"registry_sweep_interval"`
	} `json:"webhooks,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var allowList []string
	if jsonCfg.Webhooks.AllowedIPs != "" {
		for _, ip := range strings.Split(jsonCfg.Webhooks.AllowedIPs, ",") {
			if ip = strings.TrimSpace(ip); ip != "" {
				allowList = append(allowList, ip)
			}
		}
	}

	cfg := &StructuredConfig{
		App: App{
			SecretKey:      jsonCfg.App.SecretKey,
			SessionSignKey: jsonCfg.App.SessionSignKey,
			Environment:    jsonCfg.App.Environment,
			Version:        jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Session: Session{
			Dir:          jsonCfg.Session.Dir,
			TTL:          time.Duration(jsonCfg.Session.TTL),
			ReapInterval: time.Duration(jsonCfg.Session.ReapInterval),
		},
		Plaid: Plaid{
			BaseURL:        jsonCfg.Plaid.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Plaid.RequestTimeout),
		},
		Webhooks: Webhooks{
			AllowedIPs:            allowList,
			Retention:             time.Duration(jsonCfg.Webhooks.Retention),
			RateLimit:             jsonCfg.Webhooks.RateLimit,
			RateWindow:            time.Duration(jsonCfg.Webhooks.RateWindow),
			RegistryTTL:           time.Duration(jsonCfg.Webhooks.RegistryTTL),
			RegistrySweepInterval: time.Duration(jsonCfg.Webhooks.RegistrySweepInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
