package wifiprof

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var embeddedTopics embed.FS

func helpTopics() fs.FS {
	sub, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		return nil
	}
	return sub
}
