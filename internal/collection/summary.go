// Package collection summarizes API request collections (Postman v2 JSON)
// for the documents preview.
package collection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PreviewLimit is the number of requests shown in a preview.
const PreviewLimit = 60

var ErrMalformed = errors.New("malformed collection")

// Request is one request of the collection, with its folder path as name.
type Request struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	URL    string `json:"url"`
}

// Summary is the digest shown next to a collection download.
type Summary struct {
	Name          string    `json:"name"`
	Schema        string    `json:"schema"`
	RequestCount  int       `json:"requestCount"`
	VariableCount int       `json:"variableCount"`
	Requests      []Request `json:"requests"`
	RawKeys       []string  `json:"rawKeys"`
}

// Preview returns at most limit requests and whether the list was cut.
func (s Summary) Preview(limit int) ([]Request, bool) {
	if limit <= 0 || len(s.Requests) <= limit {
		return s.Requests, false
	}
	return s.Requests[:limit], true
}

// Summarize parses data and walks its item tree. Invalid JSON is an error;
// anything else that does not look like a collection degrades to zero values.
func Summarize(data []byte) (Summary, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return Summary{}, nil
	}

	var s Summary
	if info, ok := obj["info"].(map[string]any); ok {
		s.Name, _ = info["name"].(string)
		s.Schema, _ = info["schema"].(string)
	}
	if vars, ok := obj["variable"].([]any); ok {
		s.VariableCount = len(vars)
	}
	if items, ok := obj["item"].([]any); ok {
		s.Requests = walk(items, nil)
	}
	s.RequestCount = len(s.Requests)

	s.RawKeys = topLevelKeys(data)
	return s, nil
}

// topLevelKeys lists the keys of the root object in document order. A key
// repeated in the document keeps its first position.
func topLevelKeys(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}
	keys := []string{}
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		key, ok := tok.(string)
		if !ok {
			break
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			break
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

func walk(items []any, path []string) []Request {
	var out []Request
	for _, it := range items {
		node, ok := it.(map[string]any)
		if !ok {
			continue
		}
		name, ok := node["name"].(string)
		if !ok {
			name = "Untitled"
		}
		here := append(append([]string{}, path...), name)

		if children, ok := node["item"].([]any); ok {
			out = append(out, walk(children, here)...)
			continue
		}
		req, ok := node["request"].(map[string]any)
		if !ok {
			continue
		}
		out = append(out, toRequest(req, strings.Join(here, " / ")))
	}
	return out
}

func toRequest(req map[string]any, name string) Request {
	r := Request{Name: name, Method: "REQ", URL: normalizeURL(req["url"])}
	if m, ok := req["method"].(string); ok {
		r.Method = strings.ToUpper(m)
	}
	return r
}

// normalizeURL accepts either a plain string or a Postman URL object.
func normalizeURL(u any) string {
	switch v := u.(type) {
	case string:
		return v
	case map[string]any:
		if raw, ok := v["raw"].(string); ok {
			return raw
		}
		var b strings.Builder
		if proto, ok := v["protocol"].(string); ok {
			b.WriteString(proto + "://")
		}
		b.WriteString(joinParts(v["host"], "."))
		if path := joinParts(v["path"], "/"); path != "" {
			b.WriteString("/" + path)
		}
		return b.String()
	}
	return ""
}

// joinParts joins the string elements of a JSON array.
func joinParts(v any, sep string) string {
	arr, ok := v.([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(arr))
	for _, x := range arr {
		if s, ok := x.(string); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}
