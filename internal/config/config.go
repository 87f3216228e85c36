package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "osf-api-mcp.yaml"

type Config struct {
	Spec         string `koanf:"spec"`
	Transport    string `koanf:"transport"`
	Addr         string `koanf:"addr"`
	ValidateSpec bool   `koanf:"validate"`
}

// BindFlags binds the shared flags to a command.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: osf-api-mcp.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path")
	flags.StringP("transport", "t", "", "MCP transport: stdio, http")
	flags.String("addr", "", "Listen address for the http transport")
	flags.Bool("validate", false, "Validate the OpenAPI document before indexing")
}

// Load builds the effective configuration: defaults, then the config file
// when one exists, then any flags set on the command line.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"transport": "stdio",
		"addr":      "localhost:8080",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			configFile = defaultConfigFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	if v, err := cmd.Flags().GetString("spec"); err == nil && v != "" {
		m["spec"] = v
	}
	if v, err := cmd.Flags().GetString("transport"); err == nil && v != "" {
		m["transport"] = v
	}
	if v, err := cmd.Flags().GetString("addr"); err == nil && v != "" {
		m["addr"] = v
	}
	if cmd.Flags().Changed("validate") {
		v, _ := cmd.Flags().GetBool("validate")
		m["validate"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}

	validTransports := map[string]bool{"stdio": true, "http": true}
	if !validTransports[c.Transport] {
		return fmt.Errorf("invalid transport: %s (valid: stdio, http)", c.Transport)
	}

	if c.Transport == "http" && c.Addr == "" {
		return fmt.Errorf("addr is required for the http transport")
	}

	return nil
}
