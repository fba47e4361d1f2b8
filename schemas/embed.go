// Package schemas carries the JSON Schema documents shipped with the binary.
package schemas

import _ "embed"

// ReadingListSchema is the schema for reading-list input files.
//
//go:embed reading_list.schema.json
var ReadingListSchema string
