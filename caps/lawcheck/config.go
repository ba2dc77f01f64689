package lawcheck

import (
	"os"
	"strconv"
)

// Environment overrides for the property loops, read by FromEnv.
const (
	EnvIterations = "CAP_ABLE_LAWCHECK_ITERATIONS"
	EnvSeed       = "CAP_ABLE_LAWCHECK_SEED"
)

const (
	DefaultIterations = 1000
	DefaultSeed       = 42
)

// Options tunes the property loops. The zero value means defaults, so
// callers that do not care can pass Options{}.
type Options struct {
	Iterations int
	Seed       uint64
}

func (o Options) normalized() Options {
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	return o
}

// FromEnv reads Options from the environment, falling back to defaults for
// anything unset or unparsable. Useful to crank iterations up in CI without
// touching test code.
func FromEnv() Options {
	var o Options
	if raw, ok := os.LookupEnv(EnvIterations); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			o.Iterations = n
		}
	}
	if raw, ok := os.LookupEnv(EnvSeed); ok {
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			o.Seed = n
		}
	}
	return o.normalized()
}
