package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings of a cssfmt run.
type Config struct {
	LineOffset        int
	ValidateSelectors bool
	HTML              bool
	SourceURLs        bool // format: write source-map directives
	GraphViz          bool // tree: output GraphViz DOT
}

var flagKeys = map[string]string{
	"line-offset":        "line_offset",
	"validate-selectors": "validate_selectors",
	"html":               "html",
	"source-urls":        "source_urls",
	"graphviz":           "graphviz",
}

// LoadConfig loads the configuration of a command.
// Flags > environment (CSSFMT_…) > config file > defaults.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetDefault("line_offset", 0)
	v.SetDefault("validate_selectors", true)
	v.SetDefault("html", false)
	v.SetDefault("source_urls", false)
	v.SetDefault("graphviz", false)

	v.SetEnvPrefix("CSSFMT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "binding flag --%s", flag)
			}
		}
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}
	cfg := &Config{
		LineOffset:        v.GetInt("line_offset"),
		ValidateSelectors: v.GetBool("validate_selectors"),
		HTML:              v.GetBool("html"),
		SourceURLs:        v.GetBool("source_urls"),
		GraphViz:          v.GetBool("graphviz"),
	}
	if cfg.LineOffset < 0 {
		return nil, errors.Errorf("line offset must not be negative, is %d", cfg.LineOffset)
	}
	return cfg, nil
}
