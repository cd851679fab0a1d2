// Package mapping implements the webhook field-mapping layer: path extraction
// over arbitrary JSON payloads, payload fingerprinting for dedup, and the
// whitelist-bounded resolver that turns an inbound record into entity
// attributes.
package mapping

import (
	"regexp"
	"strconv"
	"strings"
)

var bracketIndex = regexp.MustCompile(`(\[\d+\])`)

// Extract walks root along a dotted path and returns the value it finds.
// Path segments are object keys; a segment may carry trailing bracketed
// integer indices, e.g. "data.callers[1].name". Absence is never an error:
// a missing key, an out-of-range index, a type mismatch, or an intermediate
// null all yield (nil, false).
func Extract(root interface{}, path string) (interface{}, bool) {
	current := root
	for _, part := range strings.Split(path, ".") {
		tokens := bracketIndex.Split(part, -1)
		indices := bracketIndex.FindAllString(part, -1)

		// Interleave name and index tokens in their original order. The
		// regexp split leaves the key name (possibly empty) before the
		// first bracket.
		ordered := make([]string, 0, len(tokens)+len(indices))
		for i, tok := range tokens {
			if tok != "" {
				ordered = append(ordered, tok)
			}
			if i < len(indices) {
				ordered = append(ordered, indices[i])
			}
		}

		for _, token := range ordered {
			if strings.HasPrefix(token, "[") {
				idx, err := strconv.Atoi(token[1 : len(token)-1])
				if err != nil {
					return nil, false
				}
				arr, ok := current.([]interface{})
				if !ok || idx < 0 || idx >= len(arr) {
					return nil, false
				}
				current = arr[idx]
			} else {
				obj, ok := current.(map[string]interface{})
				if !ok {
					return nil, false
				}
				current, ok = obj[token]
				if !ok {
					return nil, false
				}
			}
			if current == nil {
				return nil, false
			}
		}
	}
	return current, true
}
