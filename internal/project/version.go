package project

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/modkit-dev/modkit/internal/branding"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// ValidateMinecraftVersion checks that v has the form <major>.<minor> and is
// not older than the oldest version templates exist for. Malformed strings
// are validation errors; well-formed but too old versions are
// KindUnsupportedVersion.
func ValidateMinecraftVersion(v string) error {
	if !versionPattern.MatchString(v) {
		return validationError("invalid Minecraft version %q: expected <major>.<minor>, e.g. 1.19", v)
	}

	ver, err := semver.NewVersion(v)
	if err != nil {
		return validationError("invalid Minecraft version %q: %w", v, err)
	}

	minimum := branding.MinMinecraftVersion()
	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return fmt.Errorf("parsing minimum Minecraft version %q: %w", minimum, err)
	}
	if !constraint.Check(ver) {
		return &Error{
			Kind: KindUnsupportedVersion,
			Op:   "validate",
			Err:  fmt.Errorf("minecraft version %s is not supported: Fabric templates start at %s", v, minimum),
		}
	}
	return nil
}
