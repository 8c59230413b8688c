package schemas

import "embed"

// SchemasFS holds the JSON schemas of every event this service consumes or
// publishes, embedded so validation needs no files on disk.
//
//go:embed events
var SchemasFS embed.FS
