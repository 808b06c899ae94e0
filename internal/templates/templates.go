// Package templates embeds the console's HTML templates so handlers render
// the same files regardless of the working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
