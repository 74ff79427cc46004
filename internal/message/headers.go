package message

import (
	"bufio"
	"strings"
)

// Headers is an ordered, case-insensitive header collection. Field order and
// original spelling are preserved; lookups resolve to the first field with a
// matching name.
type Headers struct {
	keys   map[string]int // lowercased name -> index of first field
	fields []headerField
}

type headerField struct {
	name  string
	lines []string // value followed by any folded continuation lines
}

// ParseHeaders parses a raw header block. Continuation lines (leading SP or
// HT) attach to the preceding field; lines without a colon are skipped.
func ParseHeaders(raw string) Headers {
	var h Headers
	var current *headerField
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if current != nil {
				current.lines = append(current.lines, strings.TrimLeft(line, " \t"))
			}
			continue
		}
		i := strings.IndexByte(line, ':')
		if i < 0 {
			current = nil
			continue
		}
		h.Add(strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]))
		current = &h.fields[len(h.fields)-1]
	}
	return h
}

// Add appends a field, keeping insertion order. Duplicate names are kept;
// Get resolves to the first.
func (h *Headers) Add(name, value string) {
	h.AddLines(name, []string{value})
}

// AddLines appends a field whose value is already folded into physical
// lines.
func (h *Headers) AddLines(name string, lines []string) {
	if h.keys == nil {
		h.keys = map[string]int{}
	}
	key := strings.ToLower(name)
	if _, exists := h.keys[key]; !exists {
		h.keys[key] = len(h.fields)
	}
	h.fields = append(h.fields, headerField{name: name, lines: lines})
}

// Get returns the first value for name with continuation lines joined by a
// single space, or "" when the field is absent.
func (h Headers) Get(name string) string {
	i, ok := h.keys[strings.ToLower(name)]
	if !ok {
		return ""
	}
	return strings.TrimSpace(strings.Join(h.fields[i].lines, " "))
}

// Has reports whether a field with the given name exists.
func (h Headers) Has(name string) bool {
	_, ok := h.keys[strings.ToLower(name)]
	return ok
}

// Len returns the number of fields.
func (h Headers) Len() int {
	return len(h.fields)
}

// Field returns the name and joined value of field i in insertion order.
func (h Headers) Field(i int) (name, value string) {
	f := h.fields[i]
	return f.name, strings.TrimSpace(strings.Join(f.lines, " "))
}

// String renders the block back to wire form, continuation lines indented
// with a tab.
func (h Headers) String() string {
	var b strings.Builder
	for _, f := range h.fields {
		b.WriteString(f.name)
		b.WriteString(": ")
		b.WriteString(f.lines[0])
		b.WriteByte('\n')
		for _, line := range f.lines[1:] {
			b.WriteByte('\t')
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
