package icon

import (
	"crypto/sha1" //nolint:gosec // content fingerprint for duplicate detection, not security.
	"fmt"
	"io/fs"
	"log/slog"
)

// Scanner discovers icon files in a file system tree.
type Scanner struct {
	fsys fs.FS
}

// NewScanner creates a Scanner over the given file system, typically
// os.DirFS of the icons directory.
func NewScanner(fsys fs.FS) *Scanner {
	return &Scanner{fsys: fsys}
}

// Scan walks the tree and parses every icon file into a Key, in walk order.
// Files without a recognized icon extension are logged and skipped. An icon
// file with a malformed name is fatal. Files whose content duplicates an
// already seen icon are logged and skipped, so identical images shipped
// under several names produce a single icon.
func (s *Scanner) Scan() ([]Key, error) {
	var keys []Key

	seen := map[[sha1.Size]byte]string{}

	err := fs.WalkDir(s.fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walking %q: %w", p, walkErr)
		}

		if entry.IsDir() {
			return nil
		}

		if !Recognized(p) {
			slog.Warn("skipping non-icon file", "path", p)

			return nil
		}

		key, err := Parse(p)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return fmt.Errorf("reading %q: %w", p, err)
		}

		digest := sha1.Sum(data) //nolint:gosec // see import comment.
		if first, dup := seen[digest]; dup {
			slog.Warn("skipping duplicate icon image", "path", p, "duplicate_of", first)

			return nil
		}

		seen[digest] = p
		keys = append(keys, key)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}
