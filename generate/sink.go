package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Sink writes artifacts under an output root on the local file system.
type Sink struct {
	root string
}

// NewSink creates a Sink rooted at dir.
func NewSink(dir string) *Sink {
	return &Sink{root: dir}
}

// WriteAll writes every artifact, creating directories as needed. Each file
// is written atomically so an interrupted run never leaves a truncated
// artifact behind.
func (s *Sink) WriteAll(artifacts []Artifact) error {
	for _, artifact := range artifacts {
		target := filepath.Join(s.root, filepath.FromSlash(artifact.Path))

		if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return fmt.Errorf("creating directory for %q: %w", artifact.Path, err)
		}

		if err := WriteFileAtomic(target, []byte(artifact.Content)); err != nil {
			return err
		}

		slog.Info("wrote artifact", "path", artifact.Path)
	}

	return nil
}

// WriteFileAtomic writes data to path via a temporary file in the same
// directory followed by a rename, so readers never observe a partial write
// and a failure partway through leaves any existing file untouched.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file for %q: %w", path, err)
	}

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("writing %q: %w", path, err)
	}

	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("setting mode of %q: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("replacing %q: %w", path, err)
	}

	return nil
}
