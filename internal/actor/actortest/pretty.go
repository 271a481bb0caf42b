package actortest

import (
	"encoding/json"
	"fmt"
)

// Pretty renders v for failure messages, preferring indented JSON and falling
// back to Go syntax when v cannot be marshaled.
func Pretty(v any) string {
	if v == nil {
		return "<nil>"
	}
	if data, err := json.MarshalIndent(v, "", "  "); err == nil {
		return fmt.Sprintf("%T %s", v, data)
	}
	return fmt.Sprintf("%#v", v)
}
