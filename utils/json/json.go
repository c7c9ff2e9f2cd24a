package json

import (
	"bytes"
	"encoding/json"
)

// Marshal marshals the struct to json data.
//escapeHTML=false
//disables this behavior.escape &, <, and > to &, <, and >
func Marshal(v interface{}) ([]byte, error) {
	var byteBuf bytes.Buffer
	encoder := json.NewEncoder(&byteBuf)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(v)
	if err == nil && byteBuf.Len() > 0 {
		// drop the trailing newline added by Encoder.Encode
		return byteBuf.Bytes()[:byteBuf.Len()-1], err
	}
	return byteBuf.Bytes(), err
}

// Unmarshal json data to struct
func Unmarshal(b []byte, m interface{}) error {
	return json.Unmarshal(b, m)
}
