package kvstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/syp-convert/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// FileStore keeps all keys in a single YAML document on disk. Every call
// reads the file afresh; Set rewrites the whole file through a temporary file
// and a rename so a crash never leaves a half-written document.
type FileStore struct {
	path   string
	closed bool
}

// NewFileStore returns a store backed by the YAML file at path. The file and
// its directory are created on the first Set.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &parsererror.StorageError{Backend: string(BackendFile), Op: "open", Err: errors.New("path is required")}
	}
	return &FileStore{path: filepath.Clean(path)}, nil
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (string, bool, error) {
	if s.closed {
		return "", false, parsererror.ErrStorageClosed
	}
	values, err := s.read()
	if err != nil {
		return "", false, &parsererror.StorageError{Backend: string(BackendFile), Op: "get", Key: key, Err: err}
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, keeping the other keys of the document. A
// document that cannot be parsed is replaced.
func (s *FileStore) Set(key, value string) error {
	if s.closed {
		return parsererror.ErrStorageClosed
	}
	values, err := s.read()
	if err != nil {
		if !isSyntaxError(err) {
			return &parsererror.StorageError{Backend: string(BackendFile), Op: "set", Key: key, Err: err}
		}
		values = make(map[string]string)
	}
	values[key] = value

	if err := s.write(values); err != nil {
		return &parsererror.StorageError{Backend: string(BackendFile), Op: "set", Key: key, Err: err}
	}
	return nil
}

// Close marks the store closed. Further calls fail with ErrStorageClosed.
func (s *FileStore) Close() error {
	s.closed = true
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, &syntaxError{err: err}
	}
	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("error encoding store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error writing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temporary file: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("error setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("error replacing store file: %w", err)
	}
	return nil
}

// syntaxError marks a document that exists but is not a string map.
type syntaxError struct {
	err error
}

func (e *syntaxError) Error() string {
	return "error parsing store file: " + e.err.Error()
}

func (e *syntaxError) Unwrap() error {
	return e.err
}

func isSyntaxError(err error) bool {
	var se *syntaxError
	return errors.As(err, &se)
}
