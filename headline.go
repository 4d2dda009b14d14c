// Package headline implements an incremental, zero-copy HTTP/1.x message-head
// parser. It recognises the request line and the header section of a request
// spread across an arbitrary number of input segments, emitting every token
// to a caller-supplied handler as a borrow of the input. The parser keeps no
// progress between calls: everything it learned is encoded in the returned
// cursors, so re-feeding the same bytes is always safe.
package headline

import (
	"github.com/indigo-web/headline/config"
	"github.com/indigo-web/headline/http/method"
	"github.com/indigo-web/headline/http/proto"
	"github.com/indigo-web/headline/http/reject"
	"github.com/indigo-web/headline/internal/strutil"
	"github.com/indigo-web/headline/seq"
	"github.com/indigo-web/utils/buffer"
)

// Handler receives the tokens of a message head. OnStartLine is invoked
// exactly once per request, strictly before any OnHeader, and OnHeader calls
// follow wire order. All slices are borrows: they alias either the input
// segment or the parser's scratch region and stay valid only until the next
// Parse* call.
type Handler interface {
	// OnStartLine reports the parsed request line. custom carries the raw
	// method bytes when m == method.Custom and is nil otherwise.
	OnStartLine(m method.Method, v proto.Proto, target, path, query, custom []byte)
	// OnHeader reports one header field with OWS already trimmed from the value.
	OnHeader(name, value []byte)
}

// Level is the verbosity of a diagnostic event.
type Level uint8

const (
	Debug Level = iota
	Information
	Warning
	Error
)

// Sink gates diagnostic capture. When Enabled(Information) reports false,
// rejections carry no input excerpt at all, so raw request bytes never reach
// a log line by accident.
type Sink interface {
	Enabled(level Level) bool
}

type nopSink struct{}

func (nopSink) Enabled(Level) bool { return false }

// Discard is a Sink that suppresses all diagnostic capture.
var Discard Sink = nopSink{}

// Parser parses message heads from segmented buffers. A Parser is created
// once per connection and must not be accessed concurrently; beyond the
// scratch region for lines straddling segment boundaries it owns no state.
type Parser struct {
	scratch *buffer.Buffer
	sink    Sink
	detail  int
}

func New(cfg config.Config, sink Sink) *Parser {
	if sink == nil {
		sink = Discard
	}

	return &Parser{
		scratch: buffer.New(cfg.Scratch.Default, cfg.Scratch.Maximal),
		sink:    sink,
		detail:  cfg.Detail.MaxLength,
	}
}

// Reset prepares the parser for the next request. It is a no-op, as all
// parsing progress lives in the cursors returned to the caller; the method
// exists for symmetry with the per-request lifecycle of the frame layer.
func (p *Parser) Reset() {}

// materialize renders the n bytes following from as one contiguous span: a
// borrow of the underlying segment when the range fits in one, otherwise a
// copy into the scratch region. Scratch is reused across calls and must
// therefore never be retained past the current one. Returns ok == false when
// the range would not fit into the scratch cap (config.Scratch.Maximal).
func (p *Parser) materialize(buf seq.Buffer, from seq.Cursor, n int) (span []byte, ok bool) {
	if span, ok = buf.Contiguous(from, n); ok {
		return span, true
	}

	ok = true
	buf.Range(from, n, func(chunk []byte) {
		ok = ok && p.scratch.Append(chunk)
	})

	if !ok {
		return nil, false
	}

	return p.scratch.Finish(), true
}

//go:noinline
func (p *Parser) reject(reason reject.Reason, excerpt []byte) error {
	if !p.sink.Enabled(Information) {
		return reject.NewError(reason, "")
	}

	return reject.NewError(reason, strutil.EscapeASCII(excerpt, p.detail))
}

//go:noinline
func (p *Parser) rejectAt(reason reject.Reason, buf seq.Buffer, at seq.Cursor) error {
	return p.reject(reason, buf.Suffix(at))
}
