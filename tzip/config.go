package tzip

import (
	"fmt"
	"strings"

	"github.com/dendrascience/tzip/codec"
)

const (
	// DefaultMaxWorkers keeps the process at 20 execution units or fewer
	// (the caller plus 19 workers).
	DefaultMaxWorkers = 19
	// DefaultArchiveName is the archive written into the working directory.
	DefaultArchiveName = "text.tzip"
)

// Policy decides what happens to a run when some files fail.
type Policy string

const (
	// PolicyAbort writes no archive if any file failed.
	PolicyAbort Policy = "abort"
	// PolicySkip leaves failed files out of the archive and reports them.
	PolicySkip Policy = "skip"
)

// ParsePolicy parses a policy name, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(s)); p {
	case PolicyAbort, PolicySkip:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Logf is the signature used for optional progress logging.
type Logf func(format string, args ...any)

// Config holds the settings for a run.
type Config struct {
	MaxWorkers int    // upper bound on concurrent workers
	Output     string // archive path
	Codec      string // codec registry name
	OnError    Policy // failure policy
	Logf       Logf   // nil disables per-file logging
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		MaxWorkers: DefaultMaxWorkers,
		Output:     DefaultArchiveName,
		Codec:      codec.Default,
		OnError:    PolicyAbort,
	}
}

// Validate checks the configuration before any work is scheduled.
func (c Config) Validate() error {
	if c.MaxWorkers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.MaxWorkers)
	}
	if c.Output == "" {
		return fmt.Errorf("output path is empty")
	}
	if !codec.Valid(c.Codec) {
		return fmt.Errorf("%w %q", codec.ErrUnknownCodec, c.Codec)
	}
	if _, err := ParsePolicy(string(c.OnError)); err != nil {
		return err
	}
	return nil
}

func (c Config) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}
