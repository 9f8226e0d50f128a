package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.Bold, color.FgRed).Sprint("error:"), err)
		os.Exit(1)
	}
}
