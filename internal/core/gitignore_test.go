package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSyncIgnoreFileEncryptWritesFixedRules(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	if err := SyncIgnoreFile(root, ModeEncrypt, Options{}, &out); err != nil {
		t.Fatalf("SyncIgnoreFile failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, IgnoreFileName))
	if err != nil {
		t.Fatal(err)
	}
	want := "*\n!*.vault\n!Readme.md\n"
	if string(data) != want {
		t.Fatalf("ignore file contains %q, want %q", string(data), want)
	}
}

func TestSyncIgnoreFileEncryptIsIdempotent(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	for i := 0; i < 2; i++ {
		if err := SyncIgnoreFile(root, ModeEncrypt, Options{}, &out); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(root, IgnoreFileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "*\n!*.vault\n!Readme.md\n" {
		t.Fatalf("repeated sync changed content: %q", string(data))
	}
}

func TestSyncIgnoreFileDecryptRemoves(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, IgnoreFileName)
	if err := os.WriteFile(path, []byte("*\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := SyncIgnoreFile(root, ModeDecrypt, Options{}, &out); err != nil {
		t.Fatalf("SyncIgnoreFile failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected ignore file to be removed")
	}

	// Absence is not an error; decrypt is idempotent.
	if err := SyncIgnoreFile(root, ModeDecrypt, Options{}, &out); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
}

func TestSyncIgnoreFilePreviewMakesNoChanges(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, IgnoreFileName)
	var out bytes.Buffer

	if err := SyncIgnoreFile(root, ModeEncrypt, Options{Preview: true}, &out); err != nil {
		t.Fatalf("SyncIgnoreFile failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("preview created the ignore file")
	}

	if err := os.WriteFile(path, []byte("*\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := SyncIgnoreFile(root, ModeDecrypt, Options{Preview: true}, &out); err != nil {
		t.Fatalf("SyncIgnoreFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal("preview removed the ignore file")
	}
}
