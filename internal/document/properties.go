package document

import (
	"os"
	"sort"
	"strings"
)

// PatchProperties sets keys in a Java-style properties file. Existing
// "key=value", "key = value" and "key: value" lines are rewritten in place
// keeping their separator and spacing; comments, blank lines and other keys
// are left as they are. Keys that are not present are appended in sorted
// order.
func PatchProperties(path string, values map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Error{Kind: KindIO, Path: path, Err: err}
	}

	content := string(data)
	trailingNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if content == "" {
		lines = nil
	}

	// CRLF files keep their "\r" on rewritten and appended lines.
	eol := ""
	if strings.Contains(content, "\r\n") {
		eol = "\r"
	}

	seen := make(map[string]bool, len(values))
	for i, line := range lines {
		body, cr := strings.CutSuffix(line, "\r")
		key, prefix, ok := splitProperty(body)
		if !ok {
			continue
		}
		v, want := values[key]
		if !want {
			continue
		}
		lines[i] = prefix + v
		if cr {
			lines[i] += "\r"
		}
		seen[key] = true
	}

	var missing []string
	for k := range values {
		if !seen[k] {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	for _, k := range missing {
		lines = append(lines, k+"="+values[k]+eol)
	}

	out := strings.Join(lines, "\n")
	if trailingNewline || len(missing) > 0 {
		out += "\n"
	}

	info, err := os.Stat(path)
	if err != nil {
		return &Error{Kind: KindIO, Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return &Error{Kind: KindIO, Path: path, Err: err}
	}
	return nil
}

// ReadProperties returns the key/value pairs of a properties file. Later
// duplicates win.
func ReadProperties(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: path, Err: err}
	}

	props := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		key, prefix, ok := splitProperty(line)
		if !ok {
			continue
		}
		props[key] = strings.TrimSpace(line[len(prefix):])
	}
	return props, nil
}

// splitProperty returns the key of a property line and the line prefix up to
// the start of its value (key, separator and surrounding spaces). Comments and
// blank lines report ok=false.
func splitProperty(line string) (key, prefix string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
		return "", "", false
	}

	sep := strings.IndexAny(line, "=:")
	if sep < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:sep])
	if key == "" {
		return "", "", false
	}

	end := sep + 1
	for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
		end++
	}
	return key, line[:end], true
}
