// Package assets holds the markdown book bundled into the binary.
package assets

import _ "embed"

//go:embed book.md
var Book string
