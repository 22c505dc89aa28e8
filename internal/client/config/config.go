// Package config holds runtime settings for the stockctl client.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
)

// Config drives the client: where the server lives and where the
// credential cache file sits.
type Config struct {
	ServerAddr string
	CredFile   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.CredFile = filepath.Join(home, ".stockctl", "credentials.json")
}

type jsonConfig struct {
	ServerAddr string `json:"server_addr"`
	CredFile   string `json:"cred_file"`
}

// LoadConfig constructs a Config: defaults first, then an optional JSON file
// (-c), then command-line flags. Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs := flag.NewFlagSet("stockctl", flag.ContinueOnError)
	cfgFile := fs.String("c", "", "path to JSON config file")
	addr := fs.String("a", cfg.ServerAddr, "base URL of the stockroom server")
	creds := fs.String("creds", cfg.CredFile, "path to the credential cache file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *cfgFile != "" {
		data, err := os.ReadFile(*cfgFile)
		if err != nil {
			return nil, err
		}
		var jc jsonConfig
		if err := json.Unmarshal(data, &jc); err != nil {
			return nil, err
		}
		if jc.ServerAddr != "" {
			cfg.ServerAddr = jc.ServerAddr
		}
		if jc.CredFile != "" {
			cfg.CredFile = jc.CredFile
		}
	}

	// Explicit flags win over the JSON file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.ServerAddr = *addr
		case "creds":
			cfg.CredFile = *creds
		}
	})

	return cfg, nil
}
