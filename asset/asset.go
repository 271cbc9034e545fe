// Package asset resolves the files the program needs at runtime.
// A name is looked up on disk first, then in an optional pak archive,
// and finally in the assets embedded into the binary, so a plain
// checkout runs without any packaging step.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/ioutil"
	"os"
	"path/filepath"

	// Decoders for the supported texture image formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/gobuffalo/packr"

	"github.com/devblok/texel/utility/pak"
)

// ErrNotFound means no source had an asset under the requested name.
var ErrNotFound = errors.New("asset not found in any source")

// NewManager creates a Manager rooted at dir. When archivePath is not
// empty the pak archive at that location becomes the second source;
// a missing or corrupt archive is an error, not a silent skip.
func NewManager(dir, archivePath string) (*Manager, error) {
	m := Manager{
		dir: dir,
		box: packr.NewBox("../assets"),
	}

	if archivePath != "" {
		f, err := os.Open(archivePath)
		if err != nil {
			return nil, fmt.Errorf("asset archive open failed: %s", err)
		}
		archive, err := pak.Open(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("asset archive %q: %s", archivePath, err)
		}
		m.archive = archive
		m.archiveFile = f
	}

	return &m, nil
}

// Manager finds assets by name across the configured sources.
type Manager struct {
	dir         string
	archive     *pak.Archive
	archiveFile *os.File
	box         packr.Box
}

// Bytes returns the contents of the named asset.
func (m *Manager) Bytes(name string) ([]byte, error) {
	if m.dir != "" {
		contents, err := ioutil.ReadFile(filepath.Join(m.dir, name))
		if err == nil {
			return contents, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if m.archive != nil {
		contents, err := m.archive.ReadAll(name)
		if err == nil {
			return contents, nil
		}
		if err != pak.ErrNotFound {
			return nil, err
		}
	}

	if contents, err := m.box.Find(name); err == nil {
		return contents, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// String returns the contents of the named asset as a string.
func (m *Manager) String(name string) (string, error) {
	contents, err := m.Bytes(name)
	if err != nil {
		return "", err
	}
	return string(contents), nil
}

// Image resolves the named asset and decodes it. Format is detected
// from the contents, any registered decoder may claim it.
func (m *Manager) Image(name string) (image.Image, error) {
	contents, err := m.Bytes(name)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(contents))
	if err != nil {
		return nil, fmt.Errorf("decode of %q failed: %s", name, err)
	}
	return img, nil
}

// Close releases the archive file handle, if one is held.
func (m *Manager) Close() error {
	if m.archiveFile != nil {
		return m.archiveFile.Close()
	}
	return nil
}
