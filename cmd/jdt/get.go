package main

import (
	"fmt"

	"github.com/mibar/jdt/internal/jsonpath"
	"github.com/mibar/jdt/internal/jsonvalue"
	"github.com/spf13/cobra"
)

var (
	getPath       string
	getSourceFile string
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Evaluate a JSONPath selector against a document and print every match",
	Example: "  jdt get --path '$.items[?(@.active)]' --source in.json\n" +
		"  jdt get --path '$.name' < in.json",
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getPath, "path", "", "JSONPath selector (required)")
	getCmd.Flags().StringVar(&getSourceFile, "source", "", "path to the source JSON document (default: read from stdin)")
	_ = getCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	source, err := readInputFlag(getSourceFile)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	root, err := jsonvalue.Decode(source)
	if err != nil {
		return fmt.Errorf("decode source: %w", err)
	}

	matches, err := jsonpath.Select(root, getPath)
	if err != nil {
		return fmt.Errorf("parse path: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, path := range matches {
		v, _ := jsonvalue.GetAt(root, path)
		b, err := jsonvalue.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal match at %s: %w", path, err)
		}
		fmt.Fprintf(out, "%s: %s\n", path, b)
	}
	return nil
}
