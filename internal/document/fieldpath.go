package document

import (
	"strconv"
	"strings"
)

// step is one hop in a field path: an object key or an array index.
type step struct {
	key   string
	index int
	isIdx bool
}

// parseFieldPath splits "entrypoints.main[0].value" into steps.
func parseFieldPath(field string) ([]step, error) {
	if field == "" {
		return nil, formatError(field, "empty field path")
	}

	var steps []step
	for _, part := range strings.Split(field, ".") {
		name := part
		var indexes []int
		if i := strings.IndexByte(part, '['); i >= 0 {
			name = part[:i]
			rest := part[i:]
			for rest != "" {
				end := strings.IndexByte(rest, ']')
				if rest[0] != '[' || end < 0 {
					return nil, formatError(field, "malformed index in %q", part)
				}
				n, err := strconv.Atoi(rest[1:end])
				if err != nil || n < 0 {
					return nil, formatError(field, "malformed index in %q", part)
				}
				indexes = append(indexes, n)
				rest = rest[end+1:]
			}
		}

		if name == "" && len(indexes) == 0 {
			return nil, formatError(field, "empty segment")
		}
		if name != "" {
			steps = append(steps, step{key: name})
		}
		for _, n := range indexes {
			steps = append(steps, step{index: n, isIdx: true})
		}
	}
	return steps, nil
}
