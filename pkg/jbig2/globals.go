/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package jbig2 resolves a stream's /JBIG2Globals entry into a cached
// Globals segment and dispatches JBIG2Decode through a pluggable
// Decoder, grounded on pdf_load_jbig2_globals and build_filter's
// PDF_NAME_JBIG2Decode arm in the original pdf-stream.c. The retrieval
// pack carries no standalone JBIG2 bitstream decoder, so the default
// Decoder is a passthrough; callers that need real image output wire
// in their own implementation at construction time.
package jbig2

import (
	"io"

	"github.com/tamirevan/pdfstream/pkg/itemcache"
	"github.com/tamirevan/pdfstream/pkg/types"
)

// Globals is the shared, pre-parsed form of a /JBIG2Globals stream
// (spec.md's JBig2Globals): process-wide, keyed by the identity of
// the dictionary it came from, outliving any single document for as
// long as some caller still holds a reference.
type Globals struct {
	raw []byte
}

// Bytes returns the globals segment's raw encoded bytes.
func (g *Globals) Bytes() []byte { return g.raw }

// sharedCache is the process-wide cache every document's globals
// lookups share, matching MuPDF's single global pdf_store_item pool.
var sharedCache = itemcache.New(itemcache.DefaultBudget)

// Load returns the Globals cached under key in the shared cache; on a
// miss it calls read and caches the bytes under key, weighted by their
// length. doc is not consulted: read does the loading. key must be
// stable for the lifetime of the globals dictionary it stands for (the
// dictionary's own identity is the natural choice).
func Load(doc types.Document, key interface{}, read func() ([]byte, error)) (*Globals, error) {
	if cached, ok := sharedCache.Find(key); ok {
		return cached.(*Globals), nil
	}

	raw, err := read()
	if err != nil {
		return nil, err
	}

	g := &Globals{raw: raw}
	sharedCache.Store(key, g, len(raw))
	return g, nil
}

// Decoder turns a JBIG2-encoded embedded-stream and its optional
// globals segment into decoded image data. The zero value of
// PassthroughDecoder satisfies this by handing back the encoded bytes
// unchanged, matching spec.md's framing of JBIG2 as an out-of-scope
// collaborator with an injectable seam.
type Decoder interface {
	Decode(r io.Reader, globals *Globals) (io.Reader, error)
}

// PassthroughDecoder returns the JBIG2 bitstream unchanged. It's the
// default used when no real decoder is configured.
type PassthroughDecoder struct{}

func (PassthroughDecoder) Decode(r io.Reader, globals *Globals) (io.Reader, error) {
	return r, nil
}

// NewReader applies dec to r using globals, falling back to
// PassthroughDecoder when dec is nil.
func NewReader(r io.Reader, globals *Globals, dec Decoder) (io.Reader, error) {
	if dec == nil {
		dec = PassthroughDecoder{}
	}
	return dec.Decode(r, globals)
}
