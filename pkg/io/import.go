package io

import (
	"bytes"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/re2ab/pkg/document"
	"github.com/matzehuels/re2ab/pkg/errors"
)

// File is a document loaded from disk together with what is needed to write
// it back.
type File struct {
	Path string
	Mode fs.FileMode
	Raw  []byte
	Root *document.Value
}

// ReadJSON decodes a single JSON document from r.
//
// ReadJSON returns an INVALID_JSON error if the input is empty, malformed,
// or followed by anything other than whitespace. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*document.Value, error) {
	v, err := document.Decode(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "decode")
	}
	return v, nil
}

// ImportJSON reads the file at path and decodes it.
//
// ImportJSON returns an error if the file cannot be read or if decoding
// fails. The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapFS(err, "read %s", path)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFS(err, "read %s", path)
	}

	root, err := document.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "parse %s", path)
	}

	return &File{
		Path: path,
		Mode: info.Mode().Perm(),
		Raw:  data,
		Root: root,
	}, nil
}
