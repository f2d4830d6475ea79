// Package io reads and writes graph description documents.
//
// # Overview
//
// A description document is a tree of objects with a "kind" and, for graphs,
// an ordered "children" list. The same shape is accepted in JSON, YAML and
// TOML:
//
//	kind: graph
//	children:
//	  - kind: city
//	  - kind: industrial_zone
//	  - kind: graph
//	    children:
//	      - kind: stadium
//
// Kind names are matched case-insensitively and "industrial-zone" or
// "IndustrialZone" are accepted for industrial_zone.
//
// # Import
//
// Use [Import] to read a document from a file path ("-" reads standard input)
// or [Read] to decode from any io.Reader:
//
//	root, err := io.Import("city.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Documents are validated before any node is built: every unknown kind, every
// missing kind and every leaf that declares children is reported at once.
// The returned error has code INVALID_INPUT; the individual problems can be
// listed with multierr.Errors.
//
// # Export
//
// Use [Write] to serialize a node tree back into a description document.
// Reading the result yields an equivalent tree.
//
// # Formats
//
// [FormatFromPath] picks the format from the file extension: .json, .yaml,
// .yml or .toml. Standard input defaults to YAML, which also accepts JSON.
package io
