package pipelines

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/vana/vanalang"
)

// StdinPath names standard input in path arguments.
const StdinPath = "-"

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type LoadSource func(path string) (*vanalang.Source, error)

func (Module) LoadSource(
	stdin Stdin,
) LoadSource {
	return func(path string) (*vanalang.Source, error) {
		var content []byte
		var err error
		if path == StdinPath {
			path = "<stdin>"
			content, err = io.ReadAll(stdin)
		} else {
			content, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return vanalang.NewSource(path, string(content)), nil
	}
}
