package database

import "errors"

// StorageError wraps any failure reported by the database driver:
// connection loss, constraint violation or a malformed statement.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err came from the storage layer
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
