package formatting

import (
	"encoding/json"
	"fmt"
)

// PrettyJSON formats v as indented JSON for log and debug output. Values
// that cannot be marshalled fall back to their %v representation.
func PrettyJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
