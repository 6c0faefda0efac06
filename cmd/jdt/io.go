package main

import (
	"io"
	"os"
)

func readStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	data = append(data, '\n')
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
