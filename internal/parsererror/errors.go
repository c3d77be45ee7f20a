// Package parsererror defines the typed errors returned at the edges of the
// converter: reading configuration, reaching a storage backend and reading
// CSV price lists. Conversion itself never fails.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrStorageClosed is returned by a key-value store used after Close.
var ErrStorageClosed = errors.New("storage is closed")

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s='%s': %s", e.Key, e.Value, e.Reason)
}

// StorageError wraps a failure of a key-value backend.
type StorageError struct {
	Backend string
	Op      string
	Key     string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s storage: %s: %v", e.Backend, e.Op, e.Err)
	}
	return fmt.Sprintf("%s storage: %s %q: %v", e.Backend, e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// InvalidFormatError reports an input file that does not have the expected shape.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
