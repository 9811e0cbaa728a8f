package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakePrompter replays a fixed sequence of secret entries.
type fakePrompter struct {
	entries []string
	next    int
}

func (f *fakePrompter) ReadSecret(prompt string) (string, error) {
	if f.next >= len(f.entries) {
		panic("fakePrompter: out of entries")
	}
	secret := f.entries[f.next]
	f.next++
	return secret, nil
}

// newTestSession wires a session over root with a fake transformer, replayed
// prompts and an immediate continuation signal.
func newTestSession(root string, fake *fakeTransformer, entries ...string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	s := &Session{
		Root:     root,
		Batch:    NewBatch(root, fake, &out),
		Prompter: &fakePrompter{entries: entries},
		Continue: strings.NewReader("\n"),
		Out:      &out,
	}
	return s, &out
}

func TestConfirmedSecretRepromptsOnMismatch(t *testing.T) {
	s, out := newTestSession(t.TempDir(), &fakeTransformer{}, "first", "second", "match", "match")

	secret, err := s.confirmedSecret()
	if err != nil {
		t.Fatalf("confirmedSecret failed: %v", err)
	}
	if secret != "match" {
		t.Fatalf("got secret %q, want %q", secret, "match")
	}
	if !strings.Contains(out.String(), "do not match") {
		t.Fatalf("missing mismatch notice in output: %q", out.String())
	}
}

func TestSessionEncryptThenDecryptRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "notes.txt", "secrets.yml", "Readme.md")

	s, _ := newTestSession(root, &fakeTransformer{}, "pw", "pw")
	if err := s.Encrypt(context.Background(), Options{}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	for _, rel := range []string{"notes.txt.vault", "secrets.yml.vault"} {
		if !exists(t, root, rel) {
			t.Fatalf("expected %s after encrypt", rel)
		}
	}
	data, err := os.ReadFile(filepath.Join(root, IgnoreFileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "*\n!*.vault\n!Readme.md\n" {
		t.Fatalf("unexpected ignore file content: %q", string(data))
	}

	s, _ = newTestSession(root, &fakeTransformer{}, "pw")
	if err := s.Decrypt(context.Background(), Options{}); err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	// Final names equal the originals.
	for _, rel := range []string{"notes.txt", "secrets.yml", "Readme.md"} {
		if !exists(t, root, rel) {
			t.Fatalf("expected %s after decrypt", rel)
		}
	}
	if exists(t, root, IgnoreFileName) {
		t.Fatal("expected ignore file to be removed after decrypt")
	}
}

func TestSessionTemporaryLeavesIgnoreFileAlone(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "notes.txt.vault")
	ignorePath := filepath.Join(root, IgnoreFileName)
	if err := os.WriteFile(ignorePath, []byte("*\n!*.vault\n!Readme.md\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fake := &fakeTransformer{}
	s, out := newTestSession(root, fake, "pw")
	if err := s.Temporary(context.Background(), Options{}); err != nil {
		t.Fatalf("Temporary failed: %v", err)
	}

	// Decrypted then re-encrypted: back to the vault name.
	if !exists(t, root, "notes.txt.vault") || exists(t, root, "notes.txt") {
		t.Fatal("expected notes.txt.vault after the round trip")
	}
	if len(fake.calls) != 2 {
		t.Fatalf("expected 2 transforms, got %v", fake.calls)
	}
	if _, err := os.Stat(ignorePath); err != nil {
		t.Fatal("temporary mode must not touch the ignore file")
	}
	if !strings.Contains(out.String(), "Press Enter to re-encrypt") {
		t.Fatalf("missing continuation prompt in output: %q", out.String())
	}
}

func TestSessionCloseRemovesPlaintextOnly(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "notes.txt", "secrets.yml.vault", "Readme.md")

	s, _ := newTestSession(root, &fakeTransformer{})
	if err := s.Close(context.Background(), Options{}); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if exists(t, root, "notes.txt") {
		t.Fatal("expected notes.txt to be removed")
	}
	if !exists(t, root, "secrets.yml.vault") || !exists(t, root, "Readme.md") {
		t.Fatal("expected encrypted and preserved files to survive")
	}
}

func TestSessionEncryptPreviewChangesNothing(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "notes.txt")

	fake := &fakeTransformer{}
	s, _ := newTestSession(root, fake, "pw", "pw")
	if err := s.Encrypt(context.Background(), Options{Preview: true}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if len(fake.calls) != 0 {
		t.Fatalf("preview invoked the transformer: %v", fake.calls)
	}
	if !exists(t, root, "notes.txt") || exists(t, root, "notes.txt.vault") {
		t.Fatal("preview changed file names")
	}
	if exists(t, root, IgnoreFileName) {
		t.Fatal("preview wrote the ignore file")
	}
}
