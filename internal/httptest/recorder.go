// Package httptest provides test-side plumbing: a recording handler and a
// JSON dump of what it observed, used for golden comparisons in parser tests.
package httptest

import (
	"github.com/indigo-web/headline/http/method"
	"github.com/indigo-web/headline/http/proto"
	"github.com/indigo-web/headline/internal/datastruct"
)

// Recorder is a Handler implementation that copies every emission into owned
// storage, and additionally remembers the raw emitted slices so tests can
// assert aliasing against the input buffer. Raw header slices accumulate
// until Reset; only those from the latest Parse* call are still valid.
type Recorder struct {
	Method       method.Method
	Proto        proto.Proto
	Target       string
	Path         string
	Query        string
	CustomMethod string
	Fields       *datastruct.Fields

	StartLines int

	// raw slices as emitted; valid only until the next Parse* call
	RawTarget []byte
	RawPath   []byte
	RawQuery  []byte
	RawNames  [][]byte
	RawValues [][]byte
}

func NewRecorder() *Recorder {
	return &Recorder{
		Fields: datastruct.NewFields(),
	}
}

func (r *Recorder) OnStartLine(m method.Method, v proto.Proto, target, path, query, custom []byte) {
	r.Method = m
	r.Proto = v
	r.Target = string(target)
	r.Path = string(path)
	r.Query = string(query)
	r.CustomMethod = string(custom)
	r.RawTarget = target
	r.RawPath = path
	r.RawQuery = query
	r.StartLines++
}

func (r *Recorder) OnHeader(name, value []byte) {
	r.Fields.Add(string(name), string(value))
	r.RawNames = append(r.RawNames, name)
	r.RawValues = append(r.RawValues, value)
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{Fields: r.Fields}
	r.Fields.Clear()
}
