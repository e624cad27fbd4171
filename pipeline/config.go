package pipeline

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/npillmayer/textnorm/internal/tracing"
)

// profilesConfig is the on-disk shape of a profile configuration file:
//
//	[profiles.search]
//	stages = ["nfc", "casefold", "whitespace"]
type profilesConfig struct {
	Profiles map[string]profileConfig `toml:"profiles"`
}

type profileConfig struct {
	Stages []string `toml:"stages"`
}

// LoadProfiles reads profile definitions from a TOML file and registers
// them, replacing built-ins of the same name. It returns the loaded
// profiles.
func LoadProfiles(path string) ([]*Profile, error) {
	var cfg profilesConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot load profile configuration: %w", err)
	}
	return registerConfig(cfg)
}

// ParseProfiles reads profile definitions from TOML text and registers
// them. Intended for embedded or generated configuration.
func ParseProfiles(data string) ([]*Profile, error) {
	var cfg profilesConfig
	if err := toml.Unmarshal([]byte(data), &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse profile configuration: %w", err)
	}
	return registerConfig(cfg)
}

func registerConfig(cfg profilesConfig) ([]*Profile, error) {
	profiles := make([]*Profile, 0, len(cfg.Profiles))
	for name, pc := range cfg.Profiles {
		for _, stage := range pc.Stages {
			if _, err := StageByName(stage); err != nil {
				return nil, fmt.Errorf("profile %q: %w", name, err)
			}
		}
		p := &Profile{Name: name, Stages: pc.Stages}
		RegisterProfile(p)
		tracing.P("profile", name).Debugf("registered with %d stages", len(pc.Stages))
		profiles = append(profiles, p)
	}
	return profiles, nil
}
