package main

import (
	"fmt"
	"os"

	"airplane-seating/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := cmd.Execute(version, commit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
