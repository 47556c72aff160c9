package fsmx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a YAML mapping of state ID to state config, keeping
// the document order of the keys.
func (s *States) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: states must be a mapping", value.Line)
	}

	states := NewStates()
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		var id StateID
		if err := keyNode.Decode(&id); err != nil {
			return fmt.Errorf("line %d: state id: %w", keyNode.Line, err)
		}
		if states.Has(id) {
			return fmt.Errorf("line %d: duplicate state %q", keyNode.Line, id)
		}

		var state StateConfig
		if err := valNode.Decode(&state); err != nil {
			return fmt.Errorf("line %d: state %q: %w", valNode.Line, id, err)
		}
		states.Add(id, state)
	}

	*s = states
	return nil
}

// MarshalYAML encodes the states as a mapping in insertion order.
func (s States) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, id := range s.order {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(id)}
		val := &yaml.Node{}
		if err := val.Encode(s.byID[id]); err != nil {
			return nil, fmt.Errorf("state %q: %w", id, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// ParseYAML decodes and validates a YAML configuration:
//
//	initial: off
//	states:
//	  off:
//	    transitions: {power: on}
//	  on:
//	    transitions: {power: off}
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// tomlConfig is the TOML layout. TOML tables are unordered, so states are an
// array of tables.
type tomlConfig struct {
	Initial string      `toml:"initial"`
	States  []tomlState `toml:"states"`
}

type tomlState struct {
	ID          string            `toml:"id"`
	Transitions map[string]string `toml:"transitions,omitempty"`
}

// ParseTOML decodes and validates a TOML configuration:
//
//	initial = "off"
//
//	[[states]]
//	id = "off"
//	transitions = { power = "on" }
//
//	[[states]]
//	id = "on"
//	transitions = { power = "off" }
func ParseTOML(data []byte) (*Config, error) {
	var raw tomlConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("toml unmarshal: %w", err)
	}

	cfg := &Config{Initial: StateID(raw.Initial), States: NewStates()}
	for i, st := range raw.States {
		id := StateID(st.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: states[%d] has no id", ErrInvalidConfig, i)
		}
		if cfg.States.Has(id) {
			return nil, fmt.Errorf("%w: duplicate state %q", ErrInvalidConfig, id)
		}
		transitions := make(map[EventID]StateID, len(st.Transitions))
		for event, to := range st.Transitions {
			transitions[EventID(event)] = StateID(to)
		}
		cfg.States.Add(id, StateConfig{Transitions: transitions})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EncodeTOML renders the configuration in the layout ParseTOML reads.
func (c *Config) EncodeTOML() ([]byte, error) {
	raw := tomlConfig{Initial: string(c.Initial)}
	for _, id := range c.States.order {
		st := tomlState{ID: string(id)}
		if transitions := c.States.byID[id].Transitions; len(transitions) > 0 {
			st.Transitions = make(map[string]string, len(transitions))
			for event, to := range transitions {
				st.Transitions[string(event)] = string(to)
			}
		}
		raw.States = append(raw.States, st)
	}

	data, err := toml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("toml marshal: %w", err)
	}
	return data, nil
}

// LoadFile reads a configuration from a .yaml, .yml or .toml file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data)
	case ".toml":
		cfg, err = ParseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}
