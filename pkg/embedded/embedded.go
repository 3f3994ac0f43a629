// Package embedded provides embedded static assets for the application.
package embedded

import (
	"embed"
)

// Files contains the dashboard page served at "/".
// The page only talks to the JSON API; it holds no state of its own.
//
//go:embed frontend
var Files embed.FS
