// Package rerr defines the four error categories shared across the router's
// packages, per the propagation policy: a ConfigError aborts before stage 1
// ever runs, a RoutingFailure is a result code rather than a Go-level
// failure, an InternalInvariant indicates a bug and always carries a
// diagnostic string, and an OracleError flags a malformed Steiner tree
// returned by the external RSMT collaborator.
//
// Every package in this module wraps its own sentinel errors with one of
// these four via errors.Is/errors.As so that a caller several layers up can
// branch on category without caring which package raised it.
package rerr

import (
	"errors"
	"fmt"
)

// Category classifies an error into one of the four kinds from the error
// handling design. It exists so callers can switch on category without a
// type assertion.
type Category int

const (
	// CategoryConfig marks a malformed routing region, out-of-range pin, or
	// negative capacity, detected before stage 1 begins.
	CategoryConfig Category = iota

	// CategoryRoutingFailure marks non-zero overflow remaining after stage 2
	// and post-processing. It is not fatal; the caller decides whether to
	// accept the result.
	CategoryRoutingFailure

	// CategoryInternalInvariant marks a violated data-structure invariant:
	// a negative used_net count, a non-unit path step, an asymmetric
	// VertexFlute neighbor list, or an unreachable direction code.
	CategoryInternalInvariant

	// CategoryOracle marks a Steiner-tree oracle that returned a tree with
	// the wrong branch count or an out-of-range parent index.
	CategoryOracle
)

func (c Category) String() string {
	switch c {
	case CategoryConfig:
		return "config"
	case CategoryRoutingFailure:
		return "routing-failure"
	case CategoryInternalInvariant:
		return "internal-invariant"
	case CategoryOracle:
		return "oracle"
	default:
		return "unknown"
	}
}

// ErrConfig, ErrRoutingFailure, ErrInternalInvariant, and ErrOracle are the
// sentinels every package-level error wraps. Use errors.Is(err, rerr.ErrX)
// to test category membership regardless of which package raised err.
var (
	ErrConfig            = errors.New("rerr: configuration error")
	ErrRoutingFailure    = errors.New("rerr: routing failure")
	ErrInternalInvariant = errors.New("rerr: internal invariant violated")
	ErrOracle            = errors.New("rerr: oracle error")
)

// sentinelFor returns the package sentinel matching a category.
func sentinelFor(c Category) error {
	switch c {
	case CategoryConfig:
		return ErrConfig
	case CategoryRoutingFailure:
		return ErrRoutingFailure
	case CategoryInternalInvariant:
		return ErrInternalInvariant
	case CategoryOracle:
		return ErrOracle
	default:
		return ErrInternalInvariant
	}
}

// Wrap produces an error that is both a %w of the given cause and of the
// category's sentinel, so errors.Is matches either. site identifies the
// component and operation, e.g. "congestion.InsertNet".
func Wrap(c Category, site string, cause error) error {
	return fmt.Errorf("%s: %w: %w", site, sentinelFor(c), cause)
}

// New constructs a category error from a message without an underlying
// cause, still satisfying errors.Is(err, sentinelFor(c)).
func New(c Category, site, msg string) error {
	return fmt.Errorf("%s: %s: %w", site, msg, sentinelFor(c))
}

// Is reports whether err belongs to category c.
func Is(err error, c Category) bool {
	return errors.Is(err, sentinelFor(c))
}
