package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Options control a batch run.
type Options struct {
	Recursive bool
	FileTypes []string // extension suffixes; empty means no restriction
	Preview   bool
	Verbose   bool
}

// Batch drives the selector and the transformer for one mode over a
// directory. Processing is strictly sequential and fail-fast: the first hard
// failure aborts the run, leaving earlier files transformed.
type Batch struct {
	Root        string
	Transformer Transformer
	Out         io.Writer
}

// NewBatch returns a Batch over root writing progress to out.
func NewBatch(root string, t Transformer, out io.Writer) *Batch {
	return &Batch{Root: root, Transformer: t, Out: out}
}

// Run processes every candidate file under the batch root in selector order.
// A successful transform is followed by the naming-convention rename; the
// rename is attempted only after the transform succeeds. A skipped file is
// left untouched and the batch continues.
func (b *Batch) Run(ctx context.Context, mode Mode, secret string, opts Options) error {
	files, err := SelectFiles(b.Root, DefaultExclusions(), opts.Recursive, opts.FileTypes)
	if err != nil {
		return err
	}

	for _, rel := range files {
		// Suffix says the file is already in encrypted form; encrypting it
		// again would double-wrap it.
		if mode == ModeEncrypt && strings.HasSuffix(rel, VaultSuffix) {
			continue
		}

		target := targetName(mode, rel)
		if opts.Preview || opts.Verbose {
			if target != rel {
				fmt.Fprintf(b.Out, "%sing: %s -> %s\n", mode, filepath.FromSlash(rel), filepath.FromSlash(target))
			} else {
				fmt.Fprintf(b.Out, "%sing: %s\n", mode, filepath.FromSlash(rel))
			}
		}
		if opts.Preview {
			continue
		}

		outcome, err := b.Transformer.Transform(ctx, mode, rel, secret)
		if err != nil {
			return fmt.Errorf("failed to %s %s: %w", mode, filepath.FromSlash(rel), err)
		}
		if outcome == OutcomeSkipped {
			fmt.Fprintf(b.Out, "skipping: %s (not vault encrypted)\n", filepath.FromSlash(rel))
			continue
		}

		if target != rel {
			oldPath := filepath.Join(b.Root, filepath.FromSlash(rel))
			newPath := filepath.Join(b.Root, filepath.FromSlash(target))
			if err := os.Rename(oldPath, newPath); err != nil {
				return fmt.Errorf("renaming %s: %w", filepath.FromSlash(rel), err)
			}
		}
	}
	return nil
}

// RemovePlaintext deletes every candidate file that is not in encrypted
// form. No transform is invoked; the delete is irreversible.
func (b *Batch) RemovePlaintext(ctx context.Context, opts Options) error {
	files, err := SelectFiles(b.Root, DefaultExclusions(), opts.Recursive, opts.FileTypes)
	if err != nil {
		return err
	}

	for _, rel := range files {
		if strings.HasSuffix(rel, VaultSuffix) {
			continue
		}
		if opts.Preview || opts.Verbose {
			fmt.Fprintf(b.Out, "removing: %s\n", filepath.FromSlash(rel))
		}
		if opts.Preview {
			continue
		}
		if err := os.Remove(filepath.Join(b.Root, filepath.FromSlash(rel))); err != nil {
			return fmt.Errorf("removing %s: %w", filepath.FromSlash(rel), err)
		}
	}
	return nil
}

// targetName returns the post-transform name for a candidate: encryption
// appends the vault suffix, decryption trims it when present.
func targetName(mode Mode, rel string) string {
	switch mode {
	case ModeEncrypt:
		return rel + VaultSuffix
	case ModeDecrypt:
		return strings.TrimSuffix(rel, VaultSuffix)
	}
	return rel
}
