package snapshot

import (
	"bufio"
	"bytes"
	"strings"
)

// maxLineBytes bounds the line scanners; files with longer lines are rare
// enough that truncation there is acceptable for a snapshot tool.
const maxLineBytes = 16 * 1024 * 1024

// StripComments removes block (/* ... */) and line (//) comments from
// content, and '#' line comments when stripHash is set. Block comment state
// carries across lines within the file.
//
// Lines that were blank before stripping stay as single empty lines; lines
// that become empty because they held only a comment are dropped outright.
// It is a naive lexical pass: comment markers inside string literals are
// stripped too. That limitation is deliberate.
func StripComments(content []byte, stripHash bool) []byte {
	var out bytes.Buffer
	out.Grow(len(content))

	inBlock := false
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line := sc.Text()

		stripped, nowInBlock := stripLine(line, inBlock, stripHash)
		inBlock = nowInBlock

		if strings.TrimSpace(line) == "" {
			// Originally-blank lines survive as empty lines.
			out.WriteByte('\n')
			continue
		}

		stripped = strings.TrimRight(stripped, " \t\r")
		if stripped != "" {
			out.WriteString(stripped)
			out.WriteByte('\n')
		}
	}
	return out.Bytes()
}

// stripLine scans one line left to right and returns what survives plus the
// block-comment state to carry into the next line.
func stripLine(line string, inBlock, stripHash bool) (string, bool) {
	var b strings.Builder
	i := 0
	for i < len(line) {
		if inBlock {
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return b.String(), true
			}
			i += end + 2
			inBlock = false
			continue
		}
		rest := line[i:]
		switch {
		case strings.HasPrefix(rest, "/*"):
			inBlock = true
			i += 2
		case strings.HasPrefix(rest, "//"):
			return b.String(), false
		case stripHash && line[i] == '#':
			return b.String(), false
		default:
			b.WriteByte(line[i])
			i++
		}
	}
	return b.String(), inBlock
}
