// Package docs embeds the OpenAPI document served at /docs
package docs

import _ "embed"

// Spec is the OpenAPI 3 document for the ML service
//
//go:embed openapi.json
var Spec []byte
