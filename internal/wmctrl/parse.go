package wmctrl

import (
	"fmt"
	"strconv"
	"strings"
)

// token is a whitespace-delimited field plus its end offset in the source
// line, so the untokenized remainder after any field can be recovered with
// its internal spacing intact (window titles may contain runs of spaces).
type token struct {
	text string
	end  int
}

func tokenize(line string) []token {
	var tokens []token
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		tokens = append(tokens, token{text: line[start:i], end: i})
	}
	return tokens
}

// restAfter returns the trimmed remainder of line after the given token.
func restAfter(line string, t token) string {
	return strings.TrimSpace(line[t.end:])
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return n, nil
}

// parsePair parses an "x,y" field.
func parsePair(field, value string) (x, y int, err error) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid %s %q", field, value)
	}
	if x, err = parseInt(field, parts[0]); err != nil {
		return 0, 0, err
	}
	if y, err = parseInt(field, parts[1]); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseSize parses a "WxH" field.
func parseSize(field, value string) (w, h int, err error) {
	parts := strings.SplitN(value, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid %s %q", field, value)
	}
	if w, err = parseInt(field, parts[0]); err != nil {
		return 0, 0, err
	}
	if h, err = parseInt(field, parts[1]); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
