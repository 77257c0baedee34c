// Package values implements the restricted YAML subset used by the dev
// values file. The parser is deliberately self-contained: it supports
// indentation-nested mappings, plain and quoted scalar values, the empty
// `{}` and `[]` tokens, blank lines and `#` comments, and nothing else.
// It never fails; input it cannot interpret is absorbed as a best-effort
// scalar or mapping.
package values

import (
	"bufio"
	"io"
	"strings"
)

// frame pairs an indentation depth with the mapping being populated at
// that depth. The stack of frames is strictly increasing in depth from
// the root (depth -1) to the current insertion point.
type frame struct {
	indent  int
	mapping *Mapping
}

// Parse converts raw lines into a tree of nested mappings and scalars,
// using indentation depth as the sole structural delimiter.
//
// Indentation counts leading space characters only. A line whose value
// part is empty (either `key:` or a bare `key`) opens a nested mapping
// that deeper lines populate. Any line indented at or below the depth of
// the current mapping closes it and re-attaches to the nearest shallower
// ancestor, so inconsistent indentation degrades gracefully instead of
// erroring.
func Parse(lines []string) *Mapping {
	root := NewMapping()
	stack := []frame{{indent: -1, mapping: root}}

	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indent := len(raw) - len(strings.TrimLeft(raw, " "))

		// Split at the first colon only, so URL values such as
		// smtp://localhost:1025 stay intact. The key is used verbatim.
		key, value, _ := strings.Cut(trimmed, ":")
		value = strings.TrimSpace(value)

		for len(stack) > 1 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].mapping

		if value == "" {
			child := NewMapping()
			parent.Set(key, child)
			stack = append(stack, frame{indent: indent, mapping: child})
			continue
		}

		parent.Set(key, scalarOrEmptyContainer(value))
	}

	return root
}

// ParseReader reads all lines from r and parses them. The only possible
// error is a read failure; the grammar itself never rejects input.
func ParseReader(r io.Reader) (*Mapping, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Parse(lines), nil
}

// ParseBytes parses an in-memory document.
func ParseBytes(data []byte) *Mapping {
	return Parse(strings.Split(string(data), "\n"))
}

// scalarOrEmptyContainer interprets a non-empty value: the `[]` and `{}`
// tokens become empty containers (which do not open a nesting frame),
// everything else is a scalar with at most one wrapping quote pair
// removed.
func scalarOrEmptyContainer(value string) Node {
	switch value {
	case "[]":
		return &Sequence{}
	case "{}":
		return NewMapping()
	}
	return &Scalar{Value: stripSurroundingQuotes(value)}
}

// stripSurroundingQuotes removes exactly one pair of matching wrapping
// quotes, double or single. Unbalanced or interior quotes are left alone.
func stripSurroundingQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
