package main

import (
	"os"

	"github.com/convolab/lessonsmith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
