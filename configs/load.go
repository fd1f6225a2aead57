package configs

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys,
// e.g. SUBGROUP_RESULT_SET_SIZE
const EnvPrefix = "SUBGROUP"

// Load reads discovery parameters from defaults, an optional config file and the
// environment. Precedence: env > config file > defaults. An empty path skips the file.
func Load(path string) (*Discovery, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := NewDefaultDiscovery()
	v.SetDefault("result_set_size", def.ResultSetSize)
	v.SetDefault("beam_width", def.BeamWidth)
	v.SetDefault("depth", def.Depth)
	v.SetDefault("a", def.A)
	v.SetDefault("num_bins", def.NumBins)
	v.SetDefault("dedup_policy", string(def.DedupPolicy))
	v.SetDefault("min_selectors", def.MinSelectors)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Discovery
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
