package level

import (
	"os"

	"github.com/hjson/hjson-go/v4"

	"github.com/skybreak-gg/skybreak/serror"
)

// Load reads and validates a level file. Level files are hjson so designers
// can comment them.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, serror.New("unable to read level file %s: %v", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a raw level document.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := hjson.Unmarshal(raw, cfg); err != nil {
		return nil, serror.New("unable to decode level: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
