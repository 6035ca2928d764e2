package mov

import (
	"errors"
	"fmt"
	"os"
)

var ErrIO = errors.New("mov: i/o error")

type ioError struct {
	path string
	err  error
}

func (e *ioError) Error() string {
	return fmt.Sprintf("mov: couldn't read %s: %v", e.path, e.err)
}

func (e *ioError) Unwrap() error {
	return e.err
}

func (e *ioError) Is(target error) bool {
	return target == ErrIO
}

// Load reads the whole file at path into memory.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ioError{path: path, err: err}
	}
	return data, nil
}
