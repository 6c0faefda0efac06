// Command jdt applies JSON Document Transform documents from the
// command line: apply a transform to a document, validate a transform
// document on its own, or evaluate a bare JSONPath selector against a
// document.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
