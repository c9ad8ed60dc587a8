package apiclient

import (
	"bytes"
	"io"
	"mime/multipart"
)

type filePart struct {
	field string
	name  string
	r     io.Reader
}

// Form collects fields and file attachments for multipart endpoints
// (event creation, venue photos). The encoded body carries its own
// Content-Type with the writer's boundary.
type Form struct {
	fields [][2]string
	files  []filePart
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Set(key, value string) {
	f.fields = append(f.fields, [2]string{key, value})
}

func (f *Form) AddFile(field, name string, r io.Reader) {
	f.files = append(f.files, filePart{field: field, name: name, r: r})
}

func (f *Form) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, field := range f.fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.r); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}
