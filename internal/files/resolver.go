// SPDX-License-Identifier: Apache-2.0

// Package files expands glob-style source patterns into the concrete file
// list sent to the protection service.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/polyguard/protect-cli/internal/logger"
)

var (
	// ErrNoFilesMatched is returned when every supplied pattern matched
	// nothing. An entirely empty result is fatal even without strict mode.
	ErrNoFilesMatched = errors.New("no files matched any of the provided patterns")

	// ErrArchiveCombined is returned when a zip archive is supplied together
	// with other source patterns. Archive mode is single-source only.
	ErrArchiveCombined = errors.New("a zip archive cannot be combined with other source patterns")
)

// NoMatchError reports a pattern that matched nothing while strict mode
// (werror) was enabled.
type NoMatchError struct {
	Pattern string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("pattern %q matched no files", e.Pattern)
}

// Options controls pattern expansion.
type Options struct {
	// Werror makes a pattern that matches nothing fatal instead of skipped.
	Werror bool
	// Cwd is the base directory patterns are resolved against; the process
	// working directory when empty.
	Cwd string
	// Log receives per-pattern diagnostics; nil means silent.
	Log *logger.Logger
}

// Resolve expands each pattern in order against the filesystem and returns
// the flat concatenation of every pattern's matches, cwd-relative and
// without de-duplication. Globbing is synchronous; dotfiles match like any
// other file and only regular files are returned.
//
// An empty patterns slice skips resolution entirely and returns nil: the
// caller falls back to whatever sources the remote application already has.
func Resolve(patterns []string, opts Options) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	cwd := opts.Cwd
	if cwd == "" {
		cwd = "."
	}
	fsys := os.DirFS(cwd)

	var matched []string
	for _, pattern := range patterns {
		if isArchive(pattern) && len(patterns) > 1 {
			return nil, ErrArchiveCombined
		}

		names, err := doublestar.Glob(fsys, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		if len(names) == 0 {
			if opts.Werror {
				return nil, &NoMatchError{Pattern: pattern}
			}
			log.Debug().Str("pattern", pattern).Msg("pattern matched no files, skipping")
			continue
		}

		log.Debug().Str("pattern", pattern).Int("matches", len(names)).Msg("expanded pattern")
		for _, name := range names {
			matched = append(matched, filepath.FromSlash(name))
		}
	}

	if len(matched) == 0 {
		return nil, ErrNoFilesMatched
	}
	return matched, nil
}

// IsArchiveSource reports whether the resolved source list is a single zip
// archive that should be uploaded verbatim instead of being packed.
func IsArchiveSource(files []string) bool {
	return len(files) == 1 && isArchive(files[0])
}

func isArchive(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zip")
}
