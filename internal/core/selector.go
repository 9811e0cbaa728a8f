package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mode selects the transform direction for a batch run.
type Mode string

const (
	ModeEncrypt Mode = "encrypt"
	ModeDecrypt Mode = "decrypt"
)

const (
	// VaultSuffix marks files that are in encrypted form.
	VaultSuffix = ".vault"
	// IgnoreFileName is the ignore file maintained at the root of a processed directory.
	IgnoreFileName = ".gitignore"
	// PreservedFile stays visible to version control even in encrypted posture.
	PreservedFile = "Readme.md"
)

// vcsDirs are version-control metadata directories never descended into.
var vcsDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
}

// DefaultExclusions returns the filenames never eligible for transformation:
// the ignore file itself and the preserved readme.
func DefaultExclusions() []string {
	return []string{IgnoreFileName, PreservedFile}
}

// SelectFiles walks root and returns the candidate files for a batch run as
// forward-slash relative paths in lexical walk order. A file is a candidate
// iff its name is not in exclude (case-insensitive) and, when fileTypes is
// non-empty, its name ends with one of the given suffixes (case-insensitive).
// When recursive is false only the top-level directory is considered.
// Re-calling re-walks and yields a fresh, consistent list.
func SelectFiles(root string, exclude []string, recursive bool, fileTypes []string) ([]string, error) {
	excludeLower := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excludeLower[strings.ToLower(name)] = struct{}{}
	}
	typesLower := make([]string, 0, len(fileTypes))
	for _, t := range fileTypes {
		typesLower = append(typesLower, strings.ToLower(t))
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if _, ok := vcsDirs[d.Name()]; ok {
				return filepath.SkipDir
			}
			if !recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if !shouldProcess(d.Name(), excludeLower, typesLower) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// shouldProcess applies the exclusion set and type filter to a bare filename.
func shouldProcess(name string, excludeLower map[string]struct{}, typesLower []string) bool {
	lower := strings.ToLower(name)
	if _, ok := excludeLower[lower]; ok {
		return false
	}
	if len(typesLower) == 0 {
		return true
	}
	for _, suffix := range typesLower {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
