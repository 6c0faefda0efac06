package main

import (
	"fmt"

	"github.com/mibar/jdt/pkg/jdt"
	"github.com/spf13/cobra"
)

var (
	applyTransformFile string
	applySourceFile    string
	applyOutputFile    string
	applyPretty        bool
	applyIndent        string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a transform document to a source document",
	Example: "  jdt apply --transform t.json --source in.json\n" +
		"  jdt apply --transform t.json < in.json > out.json",
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyTransformFile, "transform", "", "path to the transform JSON document (required)")
	applyCmd.Flags().StringVar(&applySourceFile, "source", "", "path to the source JSON document (default: read from stdin)")
	applyCmd.Flags().StringVar(&applyOutputFile, "output", "", "path to write the result (default: write to stdout)")
	applyCmd.Flags().BoolVar(&applyPretty, "pretty", false, "pretty-print the result")
	applyCmd.Flags().StringVar(&applyIndent, "indent", "  ", "indent string used with --pretty")
	_ = applyCmd.MarkFlagRequired("transform")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	transformDoc, err := readFile(applyTransformFile)
	if err != nil {
		return fmt.Errorf("read transform: %w", err)
	}

	source, err := readInputFlag(applySourceFile)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	var out []byte
	if applyPretty {
		out, err = jdt.ApplyPretty(source, transformDoc, applyIndent)
	} else {
		out, err = jdt.Apply(source, transformDoc)
	}
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	return writeOutput(applyOutputFile, out)
}
