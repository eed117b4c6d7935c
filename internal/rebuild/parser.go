package rebuild

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// parser states. The machine is deliberately tiny: a path line, then a
// fenced block, repeated until the stream ends.
type state int

const (
	awaitingPath state = iota
	inCodeBlock
)

// Parser consumes one logical snapshot stream (the concatenation of any
// number of artifacts) and drives a Rebuilder. One Parser instance lives
// for the whole stream, so chained artifacts parse as a single sequence.
type Parser struct {
	rb *Rebuilder

	st   state
	path string
	buf  bytes.Buffer
}

func NewParser(rb *Rebuilder) *Parser {
	return &Parser{rb: rb}
}

// maxLineBytes bounds the rebuild line scanner.
const maxLineBytes = 16 * 1024 * 1024

// Consume scans r line by line through the state machine. It may be called
// once with an io.MultiReader over all artifacts or repeatedly, one
// artifact at a time; parser state carries across calls either way.
func (p *Parser) Consume(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		p.line(sc.Text())
	}
	return sc.Err()
}

// Finish reports the rebuild totals. A block left open at end of input is
// dropped silently, never flushed.
func (p *Parser) Finish() Stats {
	return p.rb.stats
}

// line classifies a single line. CRLF input is normalized first so
// snapshots written on one platform rebuild on another.
func (p *Parser) line(s string) {
	s = strings.TrimSuffix(s, "\r")

	switch p.st {
	case awaitingPath:
		if isFenceOpen(s) {
			if p.path == "" {
				// Fence with no preceding path line: structural anomaly.
				// The block is still consumed so the stream stays aligned.
				p.rb.stats.ParseErrors++
			}
			p.buf.Reset()
			p.st = inCodeBlock
			return
		}
		// Any non-fence line is the next path; separators and stray lines
		// simply get overwritten by the line before the next fence.
		p.path = s

	case inCodeBlock:
		if isFenceClose(s) {
			p.flush()
			p.st = awaitingPath
			p.path = ""
			return
		}
		p.buf.WriteString(s)
		p.buf.WriteByte('\n')
	}
}

func (p *Parser) flush() {
	if p.path == "" {
		// already counted when the fence opened
		return
	}
	p.rb.materialize(p.path, p.buf.Bytes())
}

// isFenceOpen matches three backticks optionally followed by a language tag.
func isFenceOpen(s string) bool {
	return strings.HasPrefix(s, "```")
}

// isFenceClose matches exactly three backticks with nothing after.
func isFenceClose(s string) bool {
	return s == "```"
}
