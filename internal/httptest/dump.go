package httptest

import (
	json "github.com/json-iterator/go"
)

type dumpedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type dumpedHead struct {
	Method  string        `json:"method"`
	Proto   string        `json:"proto"`
	Target  string        `json:"target"`
	Path    string        `json:"path"`
	Query   string        `json:"query"`
	Custom  string        `json:"custom,omitempty"`
	Headers []dumpedField `json:"headers"`
}

// Dump serializes the recorded message head to JSON, fields in wire order.
// Handy for golden comparisons of whole parses.
func Dump(r *Recorder) (string, error) {
	head := dumpedHead{
		Method:  r.Method.String(),
		Proto:   r.Proto.String(),
		Target:  r.Target,
		Path:    r.Path,
		Query:   r.Query,
		Custom:  r.CustomMethod,
		Headers: make([]dumpedField, 0, r.Fields.Len()),
	}

	for _, field := range r.Fields.Unwrap() {
		head.Headers = append(head.Headers, dumpedField{Name: field.Name, Value: field.Value})
	}

	dumped, err := json.ConfigCompatibleWithStandardLibrary.Marshal(head)

	return string(dumped), err
}
