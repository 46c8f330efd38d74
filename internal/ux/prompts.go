// Package ux provides terminal output formatting and the small
// interactive prompts shared by the commands.
package ux

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm prompts for yes/no confirmation. Destructive operations call
// this before touching the backend; a non-interactive caller passes
// --yes instead and never reaches here.
func Confirm(message string, defaultYes bool) bool {
	return ConfirmFrom(os.Stdin, os.Stderr, message, defaultYes)
}

// ConfirmFrom is Confirm with injectable streams for tests
func ConfirmFrom(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	reader := bufio.NewReader(in)

	prompt := message
	if defaultYes {
		prompt += " (Y/n): "
	} else {
		prompt += " (y/N): "
	}

	fmt.Fprint(out, prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response == "" {
		return defaultYes
	}
	return response == "y" || response == "yes"
}
