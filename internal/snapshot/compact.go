package snapshot

import (
	"bufio"
	"bytes"
	"strings"
)

// CompactBlankLines trims trailing whitespace from every line and drops
// lines that end up empty. Unlike StripComments it does not preserve
// originally-blank lines; when both passes run, no blank line survives.
func CompactBlankLines(content []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(content))

	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}
