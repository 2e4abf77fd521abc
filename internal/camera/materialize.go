package camera

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const inlinePrefix = "data:image/jpeg;base64,"

// Materializer turns artifacts into results. Its counter only grows; it is
// not safe for concurrent use, the plugin calls it from the main queue.
type Materializer struct {
	dir     string
	counter int
}

// NewMaterializer writes files under dir, or os.TempDir() when dir is empty.
func NewMaterializer(dir string) *Materializer {
	return &Materializer{dir: dir}
}

func (m *Materializer) Counter() int { return m.counter }

func (m *Materializer) Dir() string {
	if m.dir == "" {
		return os.TempDir()
	}
	return m.dir
}

func (m *Materializer) Inline(a Artifact) Result {
	return Result{
		Kind:   ResultInline,
		Data:   inlinePrefix + base64.StdEncoding.EncodeToString(a.Data),
		Format: a.Format,
		Width:  a.Width,
		Height: a.Height,
	}
}

// DecodeInline strips the media-type prefix and decodes the payload.
func DecodeInline(data string) ([]byte, error) {
	if len(data) < len(inlinePrefix) || data[:len(inlinePrefix)] != inlinePrefix {
		return nil, fmt.Errorf("missing %q prefix", inlinePrefix)
	}
	return base64.StdEncoding.DecodeString(data[len(inlinePrefix):])
}

// File writes the artifact to the first unused photo-<n>.jpg. The bytes are
// staged in a temp file and linked into place, so the name only appears
// once complete and an existing file is never replaced.
func (m *Materializer) File(a Artifact) (Result, error) {
	dir, err := filepath.Abs(m.Dir())
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	tmpFile, err := os.CreateTemp(dir, "photo-*.tmp")
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer os.Remove(tmpFile.Name())

	if err := writeStaged(tmpFile, a.Data); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	for {
		m.counter++
		destPath := filepath.Join(dir, fmt.Sprintf("photo-%d.jpg", m.counter))
		if _, err := os.Lstat(destPath); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %v", ErrWrite, err)
		}

		err := publishFile(tmpFile.Name(), destPath)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrWrite, err)
		}

		return Result{
			Kind:   ResultFile,
			Path:   destPath,
			Format: a.Format,
			Width:  a.Width,
			Height: a.Height,
		}, nil
	}
}

func writeStaged(f *os.File, data []byte) error {
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// linkFile is swapped in tests to simulate filesystems without hard links.
var linkFile = os.Link

// publishFile hard-links tmpPath to destPath, which fails if destPath exists.
// Without hard links the name is reserved with an exclusive create and the
// staged file is renamed over that placeholder, so an existing file is still
// never replaced.
func publishFile(tmpPath, destPath string) error {
	err := linkFile(tmpPath, destPath)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return err
	}

	placeholder, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if err := placeholder.Close(); err != nil {
		_ = os.Remove(destPath)
		return err
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(destPath)
		return err
	}
	return nil
}
