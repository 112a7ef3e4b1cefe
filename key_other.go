//go:build !unix

package termline

import "os"

func newStdinSource() KeySource {
	return NewReaderSource(os.Stdin)
}
