package headline

import (
	"github.com/indigo-web/headline/http/reject"
	"github.com/indigo-web/headline/internal/bytescan"
	"github.com/indigo-web/headline/seq"
)

// ParseHeaders drives buf across zero or more header field lines, invoking
// h.OnHeader once per completed line, until either the final empty line is
// seen (done == true, consumed == examined == the position right after its
// LF) or the input runs out mid-line (done == false, consumed == the start of
// the first line not fully seen, examined == buf.End()). consumedBytes is the
// byte distance from buf.Start() to consumed. The reader position is never
// advanced past a line before that line parsed completely, so bytes whose
// terminator straddles a segment join are observed again on the next call.
func (p *Parser) ParseHeaders(h Handler, buf seq.Buffer) (done bool, consumed, examined seq.Cursor, consumedBytes int, err error) {
	p.scratch.Clear()
	start := buf.Start()
	end := buf.End()
	cur := start

	for {
		b0, b1, n := buf.Pair(cur)
		if n == 0 {
			return false, cur, end, buf.Distance(start, cur), nil
		}

		switch {
		case b0 == '\r':
			if n < 2 {
				// a lone CR at the tail may be half of the final CRLF:
				// leave it unconsumed and wait for the byte after it
				return false, cur, end, buf.Distance(start, cur), nil
			}

			if b1 != '\n' {
				return false, cur, end, buf.Distance(start, cur),
					p.rejectAt(reject.HeadersCorruptedInvalidHeaderSequence, buf, cur)
			}

			cur = buf.Move(cur, 2)

			return true, cur, cur, buf.Distance(start, cur), nil
		case b0 == ' ' || b0 == '\t':
			// obs-fold is not accepted
			return false, cur, end, buf.Distance(start, cur),
				p.rejectAt(reject.WhitespaceIsNotAllowedInHeaderName, buf, cur)
		}

		var line []byte
		if lf := bytescan.IndexByte(buf.Suffix(cur), '\n'); lf != -1 {
			line = buf.Suffix(cur)[:lf+1]
		} else {
			_, dist := buf.Seek(cur, '\n')
			if dist == -1 {
				return false, cur, end, buf.Distance(start, cur), nil
			}

			var ok bool
			if line, ok = p.materialize(buf, cur, dist+1); !ok {
				return false, cur, end, buf.Distance(start, cur),
					p.rejectAt(reject.HeaderFieldsTooLarge, buf, cur)
			}
		}

		if err = p.parseFieldLine(h, line); err != nil {
			return false, cur, end, buf.Distance(start, cur), err
		}

		cur = buf.Move(cur, len(line))
	}
}

// parseFieldLine parses one complete header field line, including its
// trailing LF, and emits it to the handler.
func (p *Parser) parseFieldLine(h Handler, line []byte) error {
	n := len(line)

	nameEnd := bytescan.IndexByte(line, ':')
	if nameEnd == -1 {
		return p.reject(reject.NoColonCharacterFoundInHeaderLine, line)
	}

	name := line[:nameEnd]
	if bytescan.Contains(name, ' ') || bytescan.Contains(name, '\t') || bytescan.Contains(name, '\r') {
		return p.reject(reject.WhitespaceIsNotAllowedInHeaderName, line)
	}

	if line[n-2] != '\r' {
		return p.reject(reject.MissingCRInHeaderLine, line)
	}

	valueStart := nameEnd + 1
	for line[valueStart] == ' ' || line[valueStart] == '\t' {
		valueStart++
	}

	if line[valueStart] == '\r' {
		// the value region opened straight into the terminator, or the
		// leading whitespace ran into a stray CR
		return p.reject(reject.HeaderValueMustNotContainCR, line)
	}

	if bytescan.Contains(line[valueStart+1:n-2], '\r') {
		return p.reject(reject.HeaderValueMustNotContainCR, line)
	}

	valueEnd := n - 3
	for valueEnd >= valueStart && (line[valueEnd] == ' ' || line[valueEnd] == '\t') {
		valueEnd--
	}

	h.OnHeader(name, line[valueStart:valueEnd+1])

	return nil
}
