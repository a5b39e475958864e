package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// readInput returns the contents of the named file, or of stdin for "-".
func readInput(stdin io.Reader, name string) (string, error) {
	if name == "-" {
		d, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(d), nil
	}
	d, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// readPair reads two inputs, at most one of which may be stdin.
func readPair(stdin io.Reader, name1, name2 string) (string, string, error) {
	if name1 == "-" && name2 == "-" {
		return "", "", fmt.Errorf("%w: stdin may only be used once", cli.ErrUsage)
	}
	text1, err := readInput(stdin, name1)
	if err != nil {
		return "", "", err
	}
	text2, err := readInput(stdin, name2)
	if err != nil {
		return "", "", err
	}
	return text1, text2, nil
}
