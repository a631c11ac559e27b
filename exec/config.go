package exec

import "gopkg.in/yaml.v3"

// Config holds the Executor's tunables, unmarshaled from YAML the way the
// rest of the ambient stack configures in-process components (no file
// watching, no remote config service — just a struct a host fills in
// before calling New).
type Config struct {
	// Workers overrides the hardware_concurrency-1 worker count. Zero
	// means auto-detect (§4.6).
	Workers int `yaml:"workers"`

	// DirtyOnChange selects the change-detection Step policy (§4.7): when
	// true, a Steppable only marks its downstream components outdated if
	// its sampled state actually differs from before. When false, every
	// Step unconditionally marks downstream outdated.
	DirtyOnChange bool `yaml:"dirty_on_change"`

	// TaskSizeDivisor overrides the Planner's default divisor of 200 for
	// Stage C task partitioning. Zero means use the Planner default.
	TaskSizeDivisor int `yaml:"task_size_divisor"`
}

// DefaultConfig is the configuration the original ships with: auto-detect
// worker count, dirty-on-change propagation enabled, default task
// partitioning.
func DefaultConfig() Config {
	return Config{DirtyOnChange: true}
}

// ParseConfig unmarshals a YAML document into a Config seeded with
// DefaultConfig's values, so a partial document only overrides the fields
// it mentions.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
