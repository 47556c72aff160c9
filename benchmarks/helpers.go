// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/fsmx"
)

// GenFlatConfig creates a flat machine with n states cycling via "tick"
// events. Every state also has a "home" transition back to s0.
func GenFlatConfig(n int) *fsmx.Config {
	if n < 1 {
		n = 1
	}
	b := fsmx.NewConfigBuilder("s0")
	for i := 0; i < n; i++ {
		b.State(stateID(i)).On("tick", stateID((i+1)%n)).On("home", "s0")
	}
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

// GenFlatYAML renders GenFlatConfig(n) as YAML.
func GenFlatYAML(n int) []byte {
	data, err := yaml.Marshal(GenFlatConfig(n))
	if err != nil {
		panic(err)
	}
	return data
}

func stateID(i int) fsmx.StateID {
	return fsmx.StateID(fmt.Sprintf("s%d", i))
}
