package cxf

import (
	"io"
	"os"
)

// ReadOpt adjusts how Read ingests a document. When several options are
// passed, the last one wins.
type ReadOpt struct {
	// SkipValidation disables the standalone validation pass before
	// decoding. Decoding still rejects malformed markup, structural
	// violations, out-of-domain values and broken references; what is lost
	// is only the exhaustive issue report across the whole document.
	SkipValidation bool
}

// EncodeOpt adjusts how Encode emits a document. When several options are
// passed, the last one wins.
type EncodeOpt struct {
	// Validate re-runs full validation on the produced bytes and fails the
	// encode if the output does not conform.
	Validate bool
}

// Read validates and decodes a complete document held in memory. It is the
// usual entry point: Validate for the full issue report, then Decode for the
// typed graph.
func Read(data []byte, opts ...ReadOpt) (*Document, error) {
	var opt ReadOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if !opt.SkipValidation {
		if err := Validate(data); err != nil {
			return nil, err
		}
	}
	return Decode(data)
}

// ReadAll reads everything from r and decodes it as Read does.
func ReadAll(r io.Reader, opts ...ReadOpt) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Read(data, opts...)
}

// ReadFile reads and decodes the file at path.
func ReadFile(path string, opts ...ReadOpt) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Read(data, opts...)
}

// WriteFile encodes doc and writes the result to path with mode 0o644.
func WriteFile(path string, doc *Document, opts ...EncodeOpt) error {
	data, err := Encode(doc, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
