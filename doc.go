// Package cxf reads, validates and writes CxF3 colour-exchange documents
// (namespace http://colorexchangeformat.com/CxF3-core).
//
// It provides:
//
//   - A typed object graph mirroring the CxF3 schema (Document, Resources,
//     Object, colour-value variants, ColorSpecification, Profile, ...)
//   - Schema validation with a stable error model via Issues (path, code,
//     message)
//   - A Decoder that enforces the schema on its own, so untrusted input is
//     safe even when validation is skipped
//   - An Encoder that emits schema-ordered, round-trip-faithful UTF-8 XML
//
// Design policy:
//   - Keep only public APIs in the root package; put the XML tree layer under
//     internal/.
//   - Place auxiliary projections under codec/ and the CLI under cmd/cxf.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := cxf.Read(data)   // validate + decode
//	doc, err := cxf.Decode(data) // decode only (still strict)
//	out, err := cxf.Encode(doc)
//
//	if err := cxf.Validate(data); err != nil {
//		issues, _ := cxf.AsIssues(err)
//		...
//	}
package cxf
