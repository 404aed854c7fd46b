package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-secret-key credential encryption secret
//	-session-sign-key session JWT signing key
//	-session-dir session file directory
//	-session-ttl session lifetime (e.g., "24h")
//	-environment runtime environment (development|production)
//	-plaid-base-url vendor API base URL
//	-webhook-allowed-ips comma-separated webhook source allow-list
//	-webhook-retention webhook retention window (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var secretKey string
	var sessionSignKey string
	var sessionDir string
	var sessionTTL time.Duration
	var environment string
	var plaidBaseURL string
	var allowedIPs string
	var retention time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&secretKey, "secret-key", "", "Credential encryption secret")
	flag.StringVar(&sessionSignKey, "session-sign-key", "", "Session JWT signing key")
	flag.StringVar(&sessionDir, "session-dir", "", "Session file directory")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	flag.StringVar(&environment, "environment", "", "Runtime environment (development|production)")
	flag.StringVar(&plaidBaseURL, "plaid-base-url", "", "Vendor API base URL")
	flag.StringVar(&allowedIPs, "webhook-allowed-ips", "", "Comma-separated webhook source allow-list")
	flag.DurationVar(&retention, "webhook-retention", 0, "Webhook retention window (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	var allowList []string
	if allowedIPs != "" {
		for _, ip := range strings.Split(allowedIPs, ",") {
			if ip = strings.TrimSpace(ip); ip != "" {
				allowList = append(allowList, ip)
			}
		}
	}

	return &StructuredConfig{
		App: App{
			SecretKey:      secretKey,
			SessionSignKey: sessionSignKey,
			Environment:    environment,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			Dir: sessionDir,
			TTL: sessionTTL,
		},
		Plaid: Plaid{
			BaseURL: plaidBaseURL,
		},
		Webhooks: Webhooks{
			AllowedIPs: allowList,
			Retention:  retention,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
