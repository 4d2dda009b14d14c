package datastruct

import (
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
)

type Field struct {
	Name, Value string
}

// Fields is the storage behind the test recorder: header fields exactly as
// the parser emitted them, in wire order, duplicates included. It is
// append-only while a head is being parsed and queried afterwards, so
// lookups favour simplicity over speed. Name lookups are case-insensitive.
type Fields struct {
	fields []Field
}

func NewFields() *Fields {
	return new(Fields)
}

// Add appends an emitted field.
func (f *Fields) Add(name, value string) *Fields {
	f.fields = append(f.fields, Field{
		Name:  name,
		Value: value,
	})

	return f
}

// First returns the first emitted value of the name and a flag telling
// whether the name was emitted at all.
func (f *Fields) First(name string) (string, bool) {
	for _, field := range f.fields {
		if strcomp.EqualFold(name, field.Name) {
			return field.Value, true
		}
	}

	return "", false
}

// Value is First without the presence flag.
func (f *Fields) Value(name string) string {
	value, _ := f.First(name)
	return value
}

// All collects every value emitted under the name, preserving wire order.
// Returns nil if the name was never emitted.
func (f *Fields) All(name string) (values []string) {
	for _, field := range f.fields {
		if strcomp.EqualFold(name, field.Name) {
			values = append(values, field.Value)
		}
	}

	return values
}

// Iter returns an iterator over the fields in wire order.
func (f *Fields) Iter() iter.Iterator[Field] {
	return iter.Slice(f.fields)
}

// Len returns the number of emitted fields, duplicates included.
func (f *Fields) Len() int {
	return len(f.fields)
}

// Unwrap reveals the underlying storage.
func (f *Fields) Unwrap() []Field {
	return f.fields
}

// Clear forgets all the entries without freeing the allocated space.
func (f *Fields) Clear() {
	f.fields = f.fields[:0]
}
