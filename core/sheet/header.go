package sheet

import "strings"

// Normalize folds a header or alias for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Header is the header row of a sheet.
type Header struct {
	names []string
	index map[string]int
}

// NewHeader builds the header index. When two columns normalize to the same
// name the leftmost one wins.
func NewHeader(names []string) *Header {
	h := &Header{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for col, name := range names {
		key := Normalize(name)
		if key == "" {
			continue
		}
		if _, dup := h.index[key]; !dup {
			h.index[key] = col
		}
	}
	return h
}

// Names returns the header text as written in the file.
func (h *Header) Names() []string {
	return h.names
}

// Resolve returns the column of the first alias present in the header.
func (h *Header) Resolve(aliases ...string) (int, bool) {
	for _, alias := range aliases {
		if col, ok := h.index[Normalize(alias)]; ok {
			return col, true
		}
	}
	return -1, false
}
