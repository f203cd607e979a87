package vcs

import (
	"fmt"
	"strings"
)

// call records one Runner invocation.
type call struct {
	Dir  string
	Name string
	Args []string
}

// mockRunner returns queued results in order and records every call.
type mockRunner struct {
	calls   []call
	outputs []string
	errs    []error
}

func (m *mockRunner) add(output string, err error) {
	m.outputs = append(m.outputs, output)
	m.errs = append(m.errs, err)
}

func (m *mockRunner) Run(dir, name string, args ...string) (string, error) {
	m.calls = append(m.calls, call{Dir: dir, Name: name, Args: args})
	i := len(m.calls) - 1
	if i >= len(m.outputs) {
		return "", fmt.Errorf("unexpected call: %s %s", name, strings.Join(args, " "))
	}
	return m.outputs[i], m.errs[i]
}
