// Package static embeds the API documentation served on /docs and /static.
package static

import "embed"

const (
	OpenAPIUI   = "openapi.html"
	OpenAPISpec = "openapi.json"
)

//go:embed openapi.html openapi.json
var Files embed.FS
