package core

import (
	"fmt"
	"syscall"

	"golang.org/x/term"
)

// Prompter reads a secret from an interactive source without echoing it.
type Prompter interface {
	ReadSecret(prompt string) (string, error)
}

// TerminalPrompter reads secrets from the controlling terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) ReadSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(secret), nil
}
