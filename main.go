package main

import (
	"os"

	"github.com/pathoquiz/quizaudit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
