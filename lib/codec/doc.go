// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides conquer's CBOR encoding configuration.
//
// JSON is used for everything a person reads or a script parses by
// default (the --catalog=json export, JSON logs). CBOR is the compact
// binary form of the same command catalog, for tools that cache or
// ship it. The encoder uses Core Deterministic Encoding, so the same
// registry always produces identical bytes and catalogs can be
// compared or hashed directly.
//
//	err := codec.NewEncoder(os.Stdout).Encode(command.WithoutSchemas(command.Catalog(registry)))
//
// [Diagnose] renders the same bytes in RFC 8949 diagnostic notation
// for --catalog=cbor-diag.
//
// Types that are encoded both ways carry only `json` tags;
// fxamacker/cbor reads them when `cbor` tags are absent.
package codec
