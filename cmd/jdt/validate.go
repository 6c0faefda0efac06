package main

import (
	"fmt"

	"github.com/mibar/jdt/pkg/jdt"
	"github.com/spf13/cobra"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a document is valid JSON and a usable transform object",
	Example: "  jdt validate --file t.json\n" +
		"  jdt validate < t.json",
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFile, "file", "", "path to the transform JSON document (default: read from stdin)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readInputFlag(validateFile)
	if err != nil {
		return fmt.Errorf("read transform: %w", err)
	}
	if err := jdt.Validate(data); err != nil {
		return fmt.Errorf("invalid transform: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
