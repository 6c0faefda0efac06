package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "jdt",
	Short:         "Apply and inspect JSON Document Transform documents",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func readInputFlag(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return readStdin()
	}
	return readFile(path)
}
