package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultClientRequestTimeout = 15 * time.Second

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the auth server.
	// Env: AUTH_CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: AUTH_CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter

	// Email and Password are the credentials to log in (or register) with.
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`

	// Name is the display name sent on registration.
	Name string `env:"NAME"`

	// Register switches the client from login to registration.
	Register bool

	// Profile fetches the profile with the obtained token after login.
	Profile bool

	// CopyToken copies the issued token to the system clipboard.
	CopyToken bool
}

// GetClientConfig builds and validates the client configuration from
// AUTH_CLIENT_* environment variables and command-line flags. Flags win.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "AUTH_CLIENT_"}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	var serverAddress string
	var requestTimeout time.Duration
	var email, password, name string

	fs := flag.NewFlagSet("go-auth-gate-client", flag.ContinueOnError)
	fs.StringVar(&serverAddress, "a", "", "Auth server address (host:port or URL)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&email, "email", "", "Account email")
	fs.StringVar(&password, "password", "", "Account password")
	fs.StringVar(&name, "name", "", "Display name used on registration")
	fs.BoolVar(&cfg.Register, "register", false, "Register a new account instead of logging in")
	fs.BoolVar(&cfg.Profile, "profile", false, "Fetch the profile after authenticating")
	fs.BoolVar(&cfg.CopyToken, "copy", false, "Copy the issued token to the clipboard")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if serverAddress != "" {
		cfg.Adapter.HTTPAddress = serverAddress
	}
	if requestTimeout != 0 {
		cfg.Adapter.RequestTimeout = requestTimeout
	}
	if email != "" {
		cfg.Email = email
	}
	if password != "" {
		cfg.Password = password
	}
	if name != "" {
		cfg.Name = name
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientRequestTimeout
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
