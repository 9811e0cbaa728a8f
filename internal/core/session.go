package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

const secretPrompt = "Enter Ansible Vault password: "

// Session composes batch runs, ignore-file sync and interactive prompts for
// the user-facing modes. Prompter and Continue are injectable so tests can
// drive a session without a terminal.
type Session struct {
	Root     string
	Batch    *Batch
	Prompter Prompter
	Continue io.Reader // acknowledgment source for temporary mode
	Out      io.Writer
}

// NewSession returns a Session over root backed by the real external tool
// and the terminal.
func NewSession(root string, out io.Writer) *Session {
	return &Session{
		Root:     root,
		Batch:    NewBatch(root, NewVaultTool(root), out),
		Prompter: TerminalPrompter{},
		Continue: os.Stdin,
		Out:      out,
	}
}

// Encrypt collects a confirmed secret, encrypts every candidate and writes
// the ignore file for encrypted posture.
func (s *Session) Encrypt(ctx context.Context, opts Options) error {
	secret, err := s.confirmedSecret()
	if err != nil {
		return err
	}
	if err := s.Batch.Run(ctx, ModeEncrypt, secret, opts); err != nil {
		return err
	}
	return SyncIgnoreFile(s.Root, ModeEncrypt, opts, s.Out)
}

// Decrypt collects the secret once, decrypts every candidate and removes the
// ignore file.
func (s *Session) Decrypt(ctx context.Context, opts Options) error {
	secret, err := s.Prompter.ReadSecret(secretPrompt)
	if err != nil {
		return err
	}
	if err := s.Batch.Run(ctx, ModeDecrypt, secret, opts); err != nil {
		return err
	}
	return SyncIgnoreFile(s.Root, ModeDecrypt, opts, s.Out)
}

// Temporary decrypts every candidate, blocks until the user acknowledges,
// then re-encrypts. The ignore file is left untouched in both directions.
func (s *Session) Temporary(ctx context.Context, opts Options) error {
	secret, err := s.Prompter.ReadSecret(secretPrompt)
	if err != nil {
		return err
	}
	if err := s.Batch.Run(ctx, ModeDecrypt, secret, opts); err != nil {
		return err
	}
	if err := s.awaitContinue(); err != nil {
		return err
	}
	return s.Batch.Run(ctx, ModeEncrypt, secret, opts)
}

// Close removes every plaintext candidate, leaving only encrypted files.
// No secret is collected and no transform is invoked.
func (s *Session) Close(ctx context.Context, opts Options) error {
	return s.Batch.RemovePlaintext(ctx, opts)
}

// confirmedSecret prompts for the secret twice and reprompts until both
// entries match.
func (s *Session) confirmedSecret() (string, error) {
	for {
		secret, err := s.Prompter.ReadSecret(secretPrompt)
		if err != nil {
			return "", err
		}
		confirm, err := s.Prompter.ReadSecret("Confirm password: ")
		if err != nil {
			return "", err
		}
		if secret == confirm {
			return secret, nil
		}
		fmt.Fprintln(s.Out, "Passwords do not match. Please try again.")
	}
}

// awaitContinue blocks until a line arrives on the continuation source.
// There is no timeout; the only way out is the acknowledgment or process
// termination.
func (s *Session) awaitContinue() error {
	fmt.Fprint(s.Out, "Press Enter to re-encrypt files...")
	reader := bufio.NewReader(s.Continue)
	if _, err := reader.ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("waiting for acknowledgment: %w", err)
	}
	return nil
}
