// Package audio stores uploaded listening audio on disk. Metadata lives in
// the database; this package only handles the bytes. Files are saved
// under opaque generated names so an upload can never overwrite another
// or escape the storage directory.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadBytes caps a single audio upload (50 MiB covers a full
// listening test at a generous bitrate).
const MaxUploadBytes = 50 << 20

// ErrUnsupportedType is returned for uploads outside the audio allowlist.
var ErrUnsupportedType = errors.New("unsupported audio content type")

// ErrTooLarge is returned when an upload exceeds MaxUploadBytes.
var ErrTooLarge = errors.New("audio file too large")

// extByType maps accepted content types to the extension used on disk.
var extByType = map[string]string{
	"audio/mpeg":  ".mp3",
	"audio/mp4":   ".m4a",
	"audio/wav":   ".wav",
	"audio/x-wav": ".wav",
	"audio/ogg":   ".ogg",
	"audio/webm":  ".webm",
}

// Store writes and reads audio files under a single directory.
type Store struct {
	dir string
}

// NewStore creates the storage directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save streams r to disk and returns the generated stored name and the
// number of bytes written. contentType must be on the allowlist.
func (s *Store) Save(r io.Reader, contentType string) (storedName string, size int64, err error) {
	ext, ok := extByType[strings.ToLower(contentType)]
	if !ok {
		return "", 0, ErrUnsupportedType
	}

	storedName = uuid.NewString() + ext
	path := filepath.Join(s.dir, storedName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create audio file: %w", err)
	}

	size, err = io.Copy(f, io.LimitReader(r, MaxUploadBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && size > MaxUploadBytes {
		err = ErrTooLarge
	}
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}
	return storedName, size, nil
}

// Open returns a reader for a stored file. storedName must be a bare name
// produced by Save; anything with a path separator is rejected.
func (s *Store) Open(storedName string) (*os.File, error) {
	if storedName != filepath.Base(storedName) || storedName == "." {
		return nil, fmt.Errorf("invalid stored name %q", storedName)
	}
	return os.Open(filepath.Join(s.dir, storedName))
}

// Remove deletes a stored file. Missing files are not an error.
func (s *Store) Remove(storedName string) error {
	if storedName != filepath.Base(storedName) {
		return fmt.Errorf("invalid stored name %q", storedName)
	}
	err := os.Remove(filepath.Join(s.dir, storedName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
