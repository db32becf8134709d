// Package schemas embeds the JSON Schemas describing the on-disk exchange
// formats.
package schemas

import _ "embed"

// ShareExport is the schema for pattern share-export files.
//
//go:embed share_export.schema.json
var ShareExport string
