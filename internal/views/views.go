// Package views embeds the HTML templates rendered by the screens.
package views

import "embed"

//go:embed *.html */*.html
var FS embed.FS
