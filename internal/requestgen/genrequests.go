package requestgen

import (
	"github.com/dchest/uniuri"
	"github.com/indigo-web/headline/internal/datastruct"
)

// Fields produces n-1 random header fields plus a Host entry.
func Fields(n int) *datastruct.Fields {
	fields := datastruct.NewFields()

	for i := 0; i < n-1; i++ {
		fields.Add(uniuri.NewLen(16), uniuri.NewLen(32))
	}

	return fields.Add("Host", "localhost")
}

// FieldsBlock renders the fields as wire-format header lines.
func FieldsBlock(fields *datastruct.Fields) (buff []byte) {
	for _, field := range fields.Unwrap() {
		buff = append(buff, field.Name+": "+field.Value+"\r\n"...)
	}

	return buff
}

// Generate renders a whole GET request head for the given target.
func Generate(target string, fields *datastruct.Fields) (request []byte) {
	request = append(request, "GET "+target+" HTTP/1.1\r\n"...)
	request = append(request, FieldsBlock(fields)...)

	return append(request, '\r', '\n')
}
