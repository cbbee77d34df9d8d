package host

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// CopyText places text on the system clipboard
func CopyText(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported on this system")
	}
	return errors.Wrap(clipboard.WriteAll(text), "write clipboard")
}
