package project

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	textlang "golang.org/x/text/language"

	"github.com/modkit-dev/modkit/internal/refactor"
)

var (
	modIDPattern      = regexp.MustCompile(`^[a-z][a-z0-9_-]{1,63}$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// DefaultModID derives a mod id from the destination directory's base name.
func DefaultModID(path string) string {
	return filepath.Base(filepath.Clean(path))
}

// DefaultName turns a mod id into a display name: "my_cool-mod" becomes
// "My Cool Mod".
func DefaultName(modID string) string {
	words := strings.FieldsFunc(modID, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return cases.Title(textlang.English).String(strings.Join(words, " "))
}

// ValidateModID checks a mod id against Fabric's id rules.
func ValidateModID(id string) error {
	if !modIDPattern.MatchString(id) {
		return validationError("invalid mod id %q: must be 2-64 characters of a-z, 0-9, '-' or '_', starting with a letter", id)
	}
	return nil
}

// ValidateMainClass checks that class is a fully qualified class name with
// at least a package and a simple name.
func ValidateMainClass(class string) error {
	if !refactor.ValidDotted(class) || refactor.PackageOf(class) == "" {
		return validationError("invalid main class %q: expected a fully qualified name such as com.example.MyMod", class)
	}
	for _, seg := range strings.Split(class, ".") {
		if !identifierPattern.MatchString(seg) {
			return validationError("invalid main class %q: %q is not a valid identifier", class, seg)
		}
	}
	return nil
}

// ValidatePackageMove rejects a target package that encloses the template's
// package, since the template package would have to move into its own
// parent directory.
func ValidatePackageMove(templatePkg, pkg string) error {
	if strings.HasPrefix(templatePkg, pkg+".") {
		return validationError("invalid main class package %q: it encloses the template package %q", pkg, templatePkg)
	}
	return nil
}
