// Package confkey looks up nested keys in a JSON configuration document.
//
// When an object repeats a key the last occurrence wins.
package confkey

import "github.com/tidwall/gjson"

// Last returns the value at path in raw, following the last occurrence of
// each key. The result does not exist if any step is missing or is not an
// object.
func Last(raw []byte, path ...string) gjson.Result {
	cur := gjson.ParseBytes(raw)
	for _, key := range path {
		if !cur.IsObject() {
			return gjson.Result{}
		}
		var next gjson.Result
		cur.ForEach(func(k, v gjson.Result) bool {
			if k.Str == key {
				next = v
			}
			return true
		})
		cur = next
	}
	return cur
}

// String returns the non-empty string at path, or def.
func String(raw []byte, def string, path ...string) string {
	if v := Last(raw, path...); v.Type == gjson.String && v.Str != "" {
		return v.Str
	}
	return def
}
