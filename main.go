package main

import (
	"os"

	"github.com/bs2352/youtube-script-search/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
