package main

import (
	"os"

	"github.com/nilay/quizcast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
