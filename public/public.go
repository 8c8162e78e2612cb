// Package public embeds the static storefront assets.
package public

import (
	"embed"
	"io/fs"
)

//go:embed assets
var files embed.FS

// Assets is the static asset tree, rooted at assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(files, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
