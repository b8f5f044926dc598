package picowire

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"picowire/internal/logging"
)

// PortRange defines an inclusive range of ports
type PortRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Contains reports whether port falls inside the range.
func (r PortRange) Contains(port int) bool {
	return port >= r.Start && port <= r.End
}

// Size returns the number of ports in the range.
func (r PortRange) Size() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Config holds the externally supplied settings of the resolution core.
// The zero value is not usable directly; load one through DefaultConfig,
// ParseConfig or LoadConfig.
type Config struct {
	// DynamicPorts is the range the anonymous-port pool draws from.
	DynamicPorts PortRange `yaml:"dynamic_ports"`
	// ValidPorts bounds explicitly supplied ports. Narrower than the
	// full 0-65535 so reserved low ports are rejected.
	ValidPorts PortRange `yaml:"valid_ports"`
	// PreferredNetworks ranks local IPv4 candidates, most-preferred
	// pattern first.
	PreferredNetworks []string `yaml:"preferred_networks"`
	// LogFile receives all diagnostic levels. Empty disables the sink.
	LogFile string `yaml:"log_file"`
	// ConsoleLevel is the minimum level echoed to the console.
	ConsoleLevel string `yaml:"console_level"`
}

// DefaultConfig returns the built-in settings: the conventional dynamic
// port range, explicit ports above the reserved block, and a preference
// for the usual private network.
func DefaultConfig() *Config {
	cfg := &Config{}
	SetConfigDefaults(cfg)
	return cfg
}

// LoadConfig reads a YAML config file, fills defaults, applies
// environment overrides and validates the result. An empty path skips
// the file and yields defaults plus environment overrides.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(content)
}

// ParseConfig parses YAML content into a Config with validation
func ParseConfig(content []byte) (*Config, error) {
	var cfg Config

	// Parse YAML
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Set defaults
	SetConfigDefaults(&cfg)

	// Environment wins over the file
	applyEnvOverrides(&cfg)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetConfigDefaults fills unset Config fields with their default values
func SetConfigDefaults(cfg *Config) {
	if cfg.DynamicPorts.Start == 0 && cfg.DynamicPorts.End == 0 {
		cfg.DynamicPorts = PortRange{Start: 0xC000, End: 0xFFFF}
	}
	if cfg.ValidPorts.Start == 0 && cfg.ValidPorts.End == 0 {
		cfg.ValidPorts = PortRange{Start: 1024, End: 65535}
	}
	if len(cfg.PreferredNetworks) == 0 {
		cfg.PreferredNetworks = []string{"192.168.*"}
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "picowire.log"
	}
	if cfg.ConsoleLevel == "" {
		cfg.ConsoleLevel = "warn"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PICOWIRE_DYNAMIC_PORTS"); v != "" {
		if r, err := parsePortRange(v); err == nil {
			cfg.DynamicPorts = r
		}
	}
	if v := os.Getenv("PICOWIRE_VALID_PORTS"); v != "" {
		if r, err := parsePortRange(v); err == nil {
			cfg.ValidPorts = r
		}
	}
	if v := os.Getenv("PICOWIRE_PREFER"); v != "" {
		var patterns []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		if len(patterns) > 0 {
			cfg.PreferredNetworks = patterns
		}
	}
	if v := os.Getenv("PICOWIRE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("PICOWIRE_CONSOLE_LEVEL"); v != "" {
		cfg.ConsoleLevel = v
	}
}

// parsePortRange parses a "low-high" string into a PortRange.
func parsePortRange(s string) (PortRange, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return PortRange{}, fmt.Errorf("port range %q must be of the form low-high", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return PortRange{}, fmt.Errorf("port range %q has a non-numeric low bound", s)
	}
	end, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return PortRange{}, fmt.Errorf("port range %q has a non-numeric high bound", s)
	}
	return PortRange{Start: start, End: end}, nil
}

// Validate checks a Config for usable values.
func (c *Config) Validate() error {
	if err := validatePortRange("dynamic_ports", c.DynamicPorts); err != nil {
		return err
	}
	if err := validatePortRange("valid_ports", c.ValidPorts); err != nil {
		return err
	}
	for _, pattern := range c.PreferredNetworks {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("preferred_networks must not contain empty patterns")
		}
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("preferred_networks pattern %q is malformed", pattern)
		}
	}
	if _, err := logging.ParseLevel(c.ConsoleLevel); err != nil {
		return fmt.Errorf("console_level: %w", err)
	}
	return nil
}

func validatePortRange(name string, r PortRange) error {
	if r.Start < 0 || r.End > 65535 {
		return fmt.Errorf("%s must stay within 0-65535, got %d-%d", name, r.Start, r.End)
	}
	if r.End < r.Start {
		return fmt.Errorf("%s range is inverted: %d-%d", name, r.Start, r.End)
	}
	return nil
}
