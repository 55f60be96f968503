package web

import (
	"embed"
	"io/fs"
)

// FS contains all embedded web assets.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static/*
var FS embed.FS

// StaticFS returns the assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}
