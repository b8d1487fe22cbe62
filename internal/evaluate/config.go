package evaluate

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/ner-eval/internal/metrics"
	"github.com/DjordjeVuckovic/ner-eval/internal/ner"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// PerClassPolicy is the matching algorithm behind Result.PerClass.
	PerClassPolicy metrics.MatchPolicy `yaml:"per_class_policy"`
	// OutsideLabel is the tag the true negative counter treats as non-entity.
	OutsideLabel string `yaml:"outside_label"`
}

func DefaultConfig() Config {
	return Config{
		PerClassPolicy: metrics.Keyed,
		OutsideLabel:   ner.OutsideLabel,
	}
}

func LoadConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read eval config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse eval config YAML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.PerClassPolicy {
	case metrics.Keyed, metrics.Exhaustive:
	default:
		return fmt.Errorf("invalid per_class_policy %s", c.PerClassPolicy)
	}
	if c.OutsideLabel == "" {
		c.OutsideLabel = ner.OutsideLabel
	}
	return nil
}
