// Package version carries build information and checks version constraints.
package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information injected by ldflags.
var (
	// Version is the release version (e.g., "1.2.0")
	Version = "dev"
	// Commit is the git commit hash
	Commit = "unknown"
	// BuildDate is the build timestamp
	BuildDate = "unknown"
)

// ErrIncompatible is returned when a version does not satisfy a constraint
var ErrIncompatible = errors.New("incompatible version")

// String describes the build
func String() string {
	return fmt.Sprintf("tabfit %s (commit %s, built %s)", Version, Commit, BuildDate)
}

// Satisfies checks the running version against a constraint such as ">= 1.2, < 2"
func Satisfies(constraint string) error {
	return Check(Version, constraint)
}

// Check reports whether current satisfies constraint. An empty constraint
// and development builds satisfy everything.
func Check(current, constraint string) error {
	if strings.TrimSpace(constraint) == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	if current == "" || current == "dev" {
		return nil
	}

	v, err := semver.NewVersion(current)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", current, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %q", ErrIncompatible, v, constraint)
	}
	return nil
}
