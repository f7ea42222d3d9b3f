// Package web holds the embedded rater page served at the root route.
package web

import "embed"

//go:embed index.html
var FS embed.FS
