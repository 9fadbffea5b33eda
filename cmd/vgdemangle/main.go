package main

import (
	"os"
)

func main() {
	err := rootCmd.Execute()
	finish()
	if err != nil {
		os.Exit(1)
	}
}
