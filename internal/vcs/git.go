package vcs

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// gitBinary is the executable name looked up on PATH.
const gitBinary = "git"

var versionPattern = regexp.MustCompile(`(\d+\.\d+(\.\d+)?)`)

// Context runs git in a single working directory.
type Context struct {
	dir    string
	runner Runner
}

// Option configures a Context.
type Option func(*Context)

// WithRunner sets a custom command runner. Tests use it to avoid invoking
// the real git binary.
func WithRunner(runner Runner) Option {
	return func(c *Context) {
		c.runner = runner
	}
}

// NewContext returns a Context bound to dir. An empty dir means the current
// directory.
func NewContext(dir string, opts ...Option) *Context {
	if dir == "" {
		dir = "."
	}
	c := &Context{
		dir:    dir,
		runner: NewExecRunner(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the working directory commands run in.
func (c *Context) Dir() string {
	return c.dir
}

// Git runs git with args and returns its standard output.
func (c *Context) Git(args ...string) (string, error) {
	return c.runner.Run(c.dir, gitBinary, args...)
}

// CloneOptions tunes Clone.
type CloneOptions struct {
	Depth  int    // Shallow clone depth; 0 clones full history
	Branch string // Branch or tag to check out; empty uses the remote default
}

// Args returns the git arguments for cloning url into dest.
func (o CloneOptions) Args(url, dest string) []string {
	args := []string{"clone"}
	if o.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(o.Depth))
	}
	if o.Branch != "" {
		args = append(args, "--branch", o.Branch)
	}
	return append(args, url, dest)
}

// Clone clones url into dest. A relative dest resolves against the
// context's directory.
func (c *Context) Clone(url, dest string, opts CloneOptions) error {
	_, err := c.Git(opts.Args(url, dest)...)
	return err
}

// Init creates an empty repository in the context's directory.
func (c *Context) Init() error {
	_, err := c.Git("init")
	return err
}

// Version returns the numeric git version, e.g. "2.43.0".
func (c *Context) Version() (string, error) {
	out, err := c.Git("--version")
	if err != nil {
		return "", err
	}
	if m := versionPattern.FindString(out); m != "" {
		return m, nil
	}
	return strings.TrimSpace(out), nil
}

// RemoveMetadata deletes the .git directory under root.
func RemoveMetadata(root string) error {
	return os.RemoveAll(filepath.Join(root, ".git"))
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
