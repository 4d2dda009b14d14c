package headline

import (
	"github.com/indigo-web/headline/http/method"
	"github.com/indigo-web/headline/http/proto"
	"github.com/indigo-web/headline/http/reject"
	"github.com/indigo-web/headline/internal/bytescan"
	"github.com/indigo-web/headline/internal/token"
	"github.com/indigo-web/headline/seq"
)

// ParseRequestLine recognises the request line at the beginning of buf. On
// success it invokes h.OnStartLine exactly once and returns done == true with
// consumed == examined == the position right after the trailing LF. When the
// line is not complete yet, it returns done == false with consumed ==
// buf.Start() and examined == buf.End(), asking the pipeline to wake it up
// only once more bytes arrived. Malformed lines yield a reject.Error.
func (p *Parser) ParseRequestLine(h Handler, buf seq.Buffer) (done bool, consumed, examined seq.Cursor, err error) {
	p.scratch.Clear()
	start := buf.Start()

	var line []byte
	if first := buf.First(); buf.IsSingleSegment() {
		lf := bytescan.IndexByte(first, '\n')
		if lf == -1 {
			return false, start, buf.End(), nil
		}

		line = first[:lf+1]
	} else {
		_, dist := buf.Seek(start, '\n')
		if dist == -1 {
			return false, start, buf.End(), nil
		}

		var ok bool
		if line, ok = p.materialize(buf, start, dist+1); !ok {
			return false, start, buf.End(), p.rejectAt(reject.TooLongRequestLine, buf, start)
		}
	}

	if err = p.parseStartLine(h, line); err != nil {
		return false, start, buf.End(), err
	}

	after := buf.Move(start, len(line))

	return true, after, after, nil
}

// parseStartLine walks one complete request line, including its trailing LF.
func (p *Parser) parseStartLine(h Handler, line []byte) error {
	var custom []byte

	m, i := method.Known(line)
	if i > 0 {
		// past the method and the space
		i++
	} else {
		for i < len(line) && line[i] != ' ' {
			if !token.Is(line[i]) {
				return p.reject(reject.InvalidRequestLine, line)
			}

			i++
		}

		if i == 0 || i == len(line) {
			return p.reject(reject.InvalidRequestLine, line)
		}

		custom = line[:i]
		m = method.Custom
		i++
	}

	pathStart := -1
	var pathEnd, queryStart, queryEnd int
	hasQuery := false

	for scanning := true; scanning; {
		if i == len(line) {
			return p.reject(reject.InvalidRequestLine, line)
		}

		switch line[i] {
		case ' ':
			if pathStart == -1 {
				return p.reject(reject.InvalidRequestLine, line)
			}

			pathEnd = i
			queryStart, queryEnd = i, i
			i++
			scanning = false
		case '?':
			if pathStart == -1 {
				return p.reject(reject.InvalidRequestLine, line)
			}

			pathEnd = i
			queryStart = i
			hasQuery = true
			scanning = false
		case '%':
			// a target beginning with a percent sign is never a valid path
			if pathStart == -1 {
				return p.reject(reject.InvalidRequestLine, line)
			}

			i++
		default:
			if pathStart == -1 {
				pathStart = i
			}

			i++
		}
	}

	if hasQuery {
		for {
			if i == len(line) {
				return p.reject(reject.InvalidRequestLine, line)
			}

			if line[i] == ' ' {
				queryEnd = i
				i++
				break
			}

			i++
		}
	}

	v, n := proto.Known(line[i:])
	if n > 0 {
		// past the version token and the CR
		i += n + 1
	} else {
		versionStart := i
		for i < len(line) && line[i] != '\r' {
			i++
		}

		if i == len(line) {
			return p.reject(reject.InvalidRequestLine, line)
		}

		version := line[versionStart:i]
		if len(version) == 0 {
			return p.reject(reject.InvalidRequestLine, line)
		}

		return p.reject(reject.UnrecognizedHTTPVersion, version)
	}

	if i == len(line) || line[i] != '\n' {
		return p.reject(reject.InvalidRequestLine, line)
	}

	h.OnStartLine(m, v, line[pathStart:queryEnd], line[pathStart:pathEnd], line[queryStart:queryEnd], custom)

	return nil
}
