package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownKey is returned by Set for keys modkit does not read.
var ErrUnknownKey = errors.New("unknown config key")

var minecraftVersionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Key describes a setting modkit reads from the config file.
type Key struct {
	Name        string
	Description string
	validate    func(value string) error
}

var knownKeys = []Key{
	{Name: "templates.java", Description: "Git URL of the Java template", validate: nonEmpty},
	{Name: "templates.kotlin", Description: "Git URL of the Kotlin template", validate: nonEmpty},
	{Name: "new.language", Description: "Default language for new projects (java or kotlin)", validate: oneOf("java", "kotlin")},
	{Name: "new.minecraft_version", Description: "Default Minecraft version for new projects, as <major>.<minor>", validate: minecraftVersion},
}

// Known returns the settings modkit reads, in display order.
func Known() []Key {
	return append([]Key(nil), knownKeys...)
}

// Validate checks value against the rules of key.
func Validate(key, value string) error {
	for _, k := range knownKeys {
		if k.Name == key {
			return k.validate(value)
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownKey, key)
}

func nonEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value must not be empty")
	}
	return nil
}

func oneOf(allowed ...string) func(string) error {
	return func(value string) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf("value %q must be one of %s", value, strings.Join(allowed, ", "))
	}
}

func minecraftVersion(value string) error {
	if !minecraftVersionPattern.MatchString(value) {
		return fmt.Errorf("value %q must be <major>.<minor>, e.g. 1.19", value)
	}
	return nil
}
