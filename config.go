package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogFile         string `yaml:"log"`
	BackendURL      string `yaml:"backend_url"`
	TimeoutSec      int    `yaml:"request_timeout_s"`
	Results         int    `yaml:"results"`
	HistoryDB       string `yaml:"history_db"`
	WatchDebounceMs int    `yaml:"watch_debounce_ms"`
	MCPAddr         string `yaml:"mcp_addr"`
}

func defaultConfig() *Config {
	return &Config{
		LogFile:         "pdfsearch.log",
		BackendURL:      "http://127.0.0.1:9000",
		TimeoutSec:      30,
		Results:         5,
		HistoryDB:       "history.db",
		WatchDebounceMs: 500,
		MCPAddr:         "127.0.0.1:8812",
	}
}

// readConfig loads the yaml config file if it exists and applies environment
// overrides on top. A missing file is not an error; the defaults already
// describe a local backend.
func readConfig(cfgPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	cfgFile, err := os.Open(cfgPath)
	switch {
	case err == nil:
		defer cfgFile.Close()
		dec := yaml.NewDecoder(cfgFile)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("unable to parse config file: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("unable to open config file: %w", err)
	}

	if v := os.Getenv("PDFSEARCH_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("PDFSEARCH_LOG"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("PDFSEARCH_HISTORY_DB"); v != "" {
		cfg.HistoryDB = v
	}

	return cfg, nil
}
