// Package posture reports whether a directory is in encrypted posture and
// which plaintext files its ignore rules hide from version control.
package posture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/user/vaultdir/internal/core"
)

// Report describes the current state of a processed directory.
type Report struct {
	IgnorePresent bool
	Encrypted     []string // candidates carrying the vault suffix
	Plaintext     []string // candidates still in plaintext
	Hidden        []string // plaintext candidates the ignore file hides
}

// Inspect walks root with the default exclusions and classifies every
// candidate. When the ignore file is present its patterns are compiled and
// matched against the plaintext candidates.
func Inspect(root string, recursive bool) (*Report, error) {
	files, err := core.SelectFiles(root, core.DefaultExclusions(), recursive, nil)
	if err != nil {
		return nil, err
	}

	report := &Report{}

	var ignorer *ignore.GitIgnore
	ignorePath := filepath.Join(root, core.IgnoreFileName)
	if _, err := os.Stat(ignorePath); err == nil {
		report.IgnorePresent = true
		ignorer, err = ignore.CompileIgnoreFile(ignorePath)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", core.IgnoreFileName, err)
		}
	}

	for _, rel := range files {
		if strings.HasSuffix(rel, core.VaultSuffix) {
			report.Encrypted = append(report.Encrypted, rel)
			continue
		}
		report.Plaintext = append(report.Plaintext, rel)
		if ignorer != nil && ignorer.MatchesPath(rel) {
			report.Hidden = append(report.Hidden, rel)
		}
	}
	return report, nil
}

// Posture names the directory state: the presence of the ignore file is the
// single source of truth for encrypted posture.
func (r *Report) Posture() string {
	if r.IgnorePresent {
		return "encrypted"
	}
	return "decrypted"
}
