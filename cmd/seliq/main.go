package main

import (
	"os"

	"github.com/seliq/seliq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
