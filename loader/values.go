package loader

import (
	"errors"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

var errNotCollection = errors.New("expected a json array or object")

// recordValues returns the raw json of every value of a top level array or
// object. Object values come in the order a browser enumerates them: keys that
// are array indices ascending, then the other keys in document order. A
// repeated key keeps its first position and its last value.
func recordValues(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid json")
	}
	root := gjson.ParseBytes(body)

	if root.IsArray() {
		out := make([]string, 0)
		root.ForEach(func(_, v gjson.Result) bool {
			out = append(out, v.Raw)
			return true
		})
		return out, nil
	}

	if !root.IsObject() {
		return nil, errNotCollection
	}

	type indexed struct {
		idx uint64
		key string
	}
	var indices []indexed
	var names []string
	raw := make(map[string]string)

	root.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if _, seen := raw[key]; !seen {
			if idx, ok := arrayIndex(key); ok {
				indices = append(indices, indexed{idx: idx, key: key})
			} else {
				names = append(names, key)
			}
		}
		raw[key] = v.Raw
		return true
	})

	sort.Slice(indices, func(i, j int) bool { return indices[i].idx < indices[j].idx })

	out := make([]string, 0, len(raw))
	for _, ik := range indices {
		out = append(out, raw[ik.key])
	}
	for _, name := range names {
		out = append(out, raw[name])
	}
	return out, nil
}

// arrayIndex reports whether key is the canonical form of an integer in
// [0, 2^32-2].
func arrayIndex(key string) (uint64, bool) {
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	if strconv.FormatUint(n, 10) != key {
		return 0, false
	}
	return n, true
}
