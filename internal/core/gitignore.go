package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// ignoreRules hides everything from version control except encrypted files
// and the preserved readme.
const ignoreRules = "*\n!*" + VaultSuffix + "\n!" + PreservedFile + "\n"

// SyncIgnoreFile rewrites or removes the ignore file at root to match the
// directory posture: encrypt writes the fixed rule set, decrypt removes the
// file (absence is not an error). Running the same mode twice yields the
// same final state.
func SyncIgnoreFile(root string, mode Mode, opts Options, out io.Writer) error {
	path := filepath.Join(root, IgnoreFileName)

	switch mode {
	case ModeEncrypt:
		if opts.Preview || opts.Verbose {
			fmt.Fprintf(out, "writing: %s\n", IgnoreFileName)
		}
		if opts.Preview {
			return nil
		}
		if err := atomic.WriteFile(path, strings.NewReader(ignoreRules)); err != nil {
			return fmt.Errorf("writing %s: %w", IgnoreFileName, err)
		}
	case ModeDecrypt:
		if opts.Preview || opts.Verbose {
			fmt.Fprintf(out, "removing: %s\n", IgnoreFileName)
		}
		if opts.Preview {
			return nil
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", IgnoreFileName, err)
		}
	}
	return nil
}
