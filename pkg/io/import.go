package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/node"
)

// Read decodes a graph description document from r.
//
// The document is decoded, validated as a whole and only then converted into
// a node tree. Malformed input and validation failures return an error with
// code INVALID_INPUT; every validation problem is joined into that error.
//
// The returned tree is independent of r. Read does not close r.
func Read(r io.Reader, format Format) (node.Node, error) {
	var doc document
	if err := decode(r, format, &doc); err != nil {
		return nil, err
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return doc.toNode()
}

func decode(r io.Reader, format Format, doc *document) error {
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(doc)
		if err == io.EOF {
			return errors.New(errors.ErrCodeInvalidInput, "empty graph document")
		}
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(doc)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "unknown field %q", undecoded[0].String())
			}
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", format)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", format)
	}
	return nil
}

// ReadBytes is [Read] over an in-memory document.
func ReadBytes(data []byte, format Format) (node.Node, error) {
	return Read(bytes.NewReader(data), format)
}

// Import reads the document at path and returns the decoded tree.
//
// The format is inferred with [FormatFromPath]. A path of "-" reads standard
// input. Errors opening the file are wrapped with the path for context.
func Import(path string) (node.Node, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if path == StdinPath {
		return Read(os.Stdin, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	root, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return root, nil
}
