// Package jsonutil provides defensive field extraction from loosely
// typed tracker JSON.
package jsonutil

import "github.com/tidwall/gjson"

// Extract returns the string value at a gjson path, or def when the
// path is absent, null, or the document is malformed. It never fails:
// tracker schemas carry optional and custom fields, and rendering code
// should degrade instead of erroring.
func Extract(json, path, def string) string {
	result := gjson.Get(json, path)
	if !result.Exists() || result.Type == gjson.Null {
		return def
	}
	return result.String()
}
