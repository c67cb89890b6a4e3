package utils

import "os"

// EnsureDir provisions a course media directory, creating parents as needed.
// Already-existing directories are not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// RemoveDir removes a provisioned directory tree. Failures are returned to
// the caller so the handler can report them instead of discarding them.
func RemoveDir(path string) error {
	return os.RemoveAll(path)
}
