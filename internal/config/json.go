package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey           string   `json:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		TokenDuration          Duration `json:"token_duration"`
		BcryptCost             int      `json:"bcrypt_cost"`
		RevealCredentialErrors bool     `json:"reveal_credential_errors"`
		Version                string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN                 string   `json:"dsn"`
			MaxOpenConns        int      `json:"max_open_conns"`
			MaxIdleConns        int      `json:"max_idle_conns"`
			ConnMaxLifetime     Duration `json:"conn_max_lifetime"`
			HealthCheckInterval Duration `json:"health_check_interval"`
			Migrate             bool     `json:"migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:           jsonCfg.App.TokenSignKey,
			TokenIssuer:            jsonCfg.App.TokenIssuer,
			TokenDuration:          time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:             jsonCfg.App.BcryptCost,
			RevealCredentialErrors: jsonCfg.App.RevealCredentialErrors,
			Version:                jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:                 jsonCfg.Storage.DB.DSN,
				MaxOpenConns:        jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:        jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxLifetime:     time.Duration(jsonCfg.Storage.DB.ConnMaxLifetime),
				HealthCheckInterval: time.Duration(jsonCfg.Storage.DB.HealthCheckInterval),
				Migrate:             jsonCfg.Storage.DB.Migrate,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
