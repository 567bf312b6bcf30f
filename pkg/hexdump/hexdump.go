// Package hexdump renders byte buffers as offset-annotated hex dumps for
// frame diagnostics and test failure output.
package hexdump

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

const bytesPerLine = 16

// Dump returns a hex dump of data starting at display offset 0.
func Dump(data []byte) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = FDump(&b, 0, data)
	return b.String()
}

// FDump writes a hex dump of data to w. displayAddr is the offset shown for
// the first byte, so a dump of a frame slice can carry its position within a
// larger capture.
func FDump(w io.Writer, displayAddr uint, data []byte) error {
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		if err := writeLine(w, displayAddr+uint(i), data[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, offset uint, line []byte) error {
	cols := make([]string, 0, bytesPerLine)
	ascii := make([]byte, 0, bytesPerLine)
	for _, b := range line {
		cols = append(cols, fmt.Sprintf("%02x", b))
		if unicode.IsPrint(rune(b)) {
			ascii = append(ascii, b)
		} else {
			ascii = append(ascii, '.')
		}
	}
	for len(cols) < bytesPerLine {
		cols = append(cols, "  ")
	}
	// Extra gap between the two 8-byte halves, like hexdump -C.
	hex := strings.Join(cols[:8], " ") + "  " + strings.Join(cols[8:], " ")
	_, err := fmt.Fprintf(w, "%08x  %s  |%s|\n", offset, hex, ascii)
	return err
}
