package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wifiprof/cmd/wifiprof"
	"github.com/arthur-debert/wifiprof/internal/version"
)

func main() {
	dir := flag.String("dir", "", "write one page per command into this directory")
	flag.Parse()

	rootCmd := wifiprof.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "WIFIPROF",
		Section: "1",
		Source:  "wifiprof " + version.Version,
		Manual:  "wifiprof manual",
	}

	var err error
	if *dir != "" {
		err = doc.GenManTree(rootCmd, header, *dir)
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
