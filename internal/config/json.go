package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the on-disk layout of the JSON config file.
// The "alphasense" section carries the credential set, matching the section
// name the tool has always used; the remaining sections are optional.
type StructuredJSONConfig struct {
	AlphaSense struct {
		APIKey           string `json:"api_key"`
		Username         string `json:"username"`
		Password         string `json:"password"`
		ClientID         string `json:"client_id"`
		ClientSecret     string `json:"client_secret"`
		AuthURL          string `json:"auth_url"`
		IngestionBaseURL string `json:"ingestion_base_url"`
	} `json:"alphasense"`

	Ingestion struct {
		ClientID       string   `json:"client_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"ingestion,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	App struct {
		Verbose bool   `json:"verbose"`
		Version string `json:"version"`
	} `json:"app,omitempty"`
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
		Auth: Auth{
			APIKey:           jsonCfg.AlphaSense.APIKey,
			Username:         jsonCfg.AlphaSense.Username,
			Password:         jsonCfg.AlphaSense.Password,
			ClientID:         jsonCfg.AlphaSense.ClientID,
			ClientSecret:     jsonCfg.AlphaSense.ClientSecret,
			URL:              jsonCfg.AlphaSense.AuthURL,
			IngestionBaseURL: jsonCfg.AlphaSense.IngestionBaseURL,
		},
		Ingestion: Ingestion{
			ClientID:       jsonCfg.Ingestion.ClientID,
			RequestTimeout: time.Duration(jsonCfg.Ingestion.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		App: App{
			Verbose: jsonCfg.App.Verbose,
			Version: jsonCfg.App.Version,
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
