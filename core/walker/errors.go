package walker

import "fmt"

// FilesystemError is returned when the analysis root is missing, is not a
// directory or cannot be listed. Nothing is emitted in that case.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("cannot walk %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
