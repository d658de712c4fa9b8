// Package web embeds the dashboard. The page is a thin client over the
// JSON API: all state lives server-side or in the browser's localStorage.
package web

import "embed"

//go:embed static
var Static embed.FS
