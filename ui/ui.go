// Package ui embeds the HTML templates of the converter page.
package ui

import "embed"

//go:embed "gohtml"
var Files embed.FS
