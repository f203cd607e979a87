// Package config manages user-level settings stored at ~/.modkit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template repository overrides under templates.java and
// templates.kotlin.
package config
