// Package schemas embeds the JSON Schema files for resume documents and protocol frames.
package schemas

import _ "embed"

// Resume is the JSON Schema for a complete resume document
//
//go:embed resume.schema.json
var Resume string

// Answer is the JSON Schema for the outbound answer frame
//
//go:embed answer.schema.json
var Answer string
