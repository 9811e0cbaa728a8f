package core

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Outcome classifies a single external transform invocation.
type Outcome int

const (
	// OutcomeSuccess means the tool transformed the file.
	OutcomeSuccess Outcome = iota
	// OutcomeSkipped means the file was already in the requested target state.
	OutcomeSkipped
)

// Transformer performs the encryption transform for a single file. It is the
// sole point of contact with the external tool; the batch processor makes no
// assumption beyond this contract.
type Transformer interface {
	Transform(ctx context.Context, mode Mode, relPath, secret string) (Outcome, error)
}

// DefaultSkipPatterns returns the stderr substrings classified as a benign
// skip rather than a hard failure. These match ansible-vault's diagnostics
// for files that are not vault encrypted; the boundary is configurable on
// VaultTool because the exact wording varies across tool versions.
func DefaultSkipPatterns() []string {
	return []string{
		"not vault encrypted data",
		"is not a vault encrypted file",
	}
}

// VaultTool invokes an ansible-vault compatible command for one file at a
// time, supplying the secret via a transient credential file that is removed
// on every exit path.
type VaultTool struct {
	Root         string   // working directory for invocations
	Command      string   // external executable
	SkipPatterns []string // stderr substrings treated as benign skips
}

// NewVaultTool returns a VaultTool bound to root, invoking ansible-vault
// with the default skip patterns.
func NewVaultTool(root string) *VaultTool {
	return &VaultTool{
		Root:         root,
		Command:      "ansible-vault",
		SkipPatterns: DefaultSkipPatterns(),
	}
}

// Transform runs `<tool> <mode> <relPath> --vault-password-file <transient>`
// with the working directory set to the tool's root.
func (v *VaultTool) Transform(ctx context.Context, mode Mode, relPath, secret string) (Outcome, error) {
	passFile, err := writeCredentialFile(secret)
	if err != nil {
		return 0, err
	}
	defer os.Remove(passFile)

	cmd := exec.CommandContext(ctx, v.Command, string(mode), relPath, "--vault-password-file", passFile)
	cmd.Dir = v.Root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		for _, pattern := range v.SkipPatterns {
			if strings.Contains(diag, pattern) {
				return OutcomeSkipped, nil
			}
		}
		if diag == "" {
			diag = err.Error()
		}
		return 0, fmt.Errorf("running %s %s: %s", v.Command, mode, diag)
	}
	return OutcomeSuccess, nil
}

// writeCredentialFile writes the secret to a fresh owner-only temp file and
// returns its path. The caller removes the file when the invocation returns.
func writeCredentialFile(secret string) (string, error) {
	f, err := os.CreateTemp("", "vaultdir-pass-*")
	if err != nil {
		return "", fmt.Errorf("creating credential file: %w", err)
	}
	if _, err := f.WriteString(secret); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing credential file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing credential file: %w", err)
	}
	return f.Name(), nil
}
