package weight

import (
	"fmt"
	"strconv"

	"github.com/ritamzico/linkweight/kvconfig"
)

// Config is the textual configuration surface for selecting and tuning a
// Policy — "policy=pagerank iterations=32 damping=0.85" or
// "policy=indegree" — grounded on strusPageWeight.cpp's -i/-r argument
// handling (SPEC_FULL.md "Supplemented features").
type Config struct {
	Policy     string
	Iterations int
	Damping    float64
}

// ParseConfig parses a kvconfig string into a Config and the Policy it
// selects.
func ParseConfig(s string) (Config, Policy, error) {
	kv, err := kvconfig.Parse(s)
	if err != nil {
		return Config{}, nil, fmt.Errorf("weight: %w", err)
	}

	cfg := Config{Policy: kv["policy"]}
	if v, ok := kv["iterations"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, nil, fmt.Errorf("weight: invalid iterations %q: %w", v, err)
		}
		cfg.Iterations = n
	}
	if v, ok := kv["damping"]; ok {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, nil, fmt.Errorf("weight: invalid damping %q: %w", v, err)
		}
		cfg.Damping = d
	}

	switch cfg.Policy {
	case "", "pagerank", "P1":
		return cfg, PageRank{Iterations: cfg.Iterations, Damping: cfg.Damping}, nil
	case "indegree", "P2":
		return cfg, InDegree{}, nil
	default:
		return cfg, nil, fmt.Errorf("weight: unknown policy %q", cfg.Policy)
	}
}
