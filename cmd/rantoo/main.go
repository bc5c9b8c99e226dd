package main

import (
	"os"

	"rantoo/cmd/rantoo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
