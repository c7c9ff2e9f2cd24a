package maps

import "github.com/mitchellh/mapstructure"

// Map2Struct decodes a loosely typed input, usually a map produced by json
// unmarshalling, into the output structure using reflection. output must be a
// pointer to a map or struct.
func Map2Struct(input interface{}, output interface{}) error {
	return mapstructure.Decode(input, output)
}
