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

// Package pdfstream is the facade spec.md §4.5-4.6 describes: the
// single entry point callers use to open or fully load a PDF stream
// object, hiding the raw-framing, filter-builder and buffer-loader
// layers underneath it.
package pdfstream

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/tamirevan/pdfstream/pkg/filter"
	"github.com/tamirevan/pdfstream/pkg/log"
	"github.com/tamirevan/pdfstream/pkg/types"
)

// Facade is the stream-access entry point bound to one document. It
// carries no state of its own beyond the Document collaborator —
// spec.md §5 reserves stateful position tracking to the file and the
// pipeline stages opened against it.
type Facade struct {
	Doc types.Document
}

// New returns a Facade over doc.
func New(doc types.Document) *Facade {
	return &Facade{Doc: doc}
}

// IsStream reports whether obj (resolved if it's an indirect
// reference) is a stream object.
func (f *Facade) IsStream(obj types.Object) bool {
	ref, ok := obj.(types.IndirectRef)
	if !ok {
		return false
	}
	entry, ok := f.Doc.XrefEntry(ref.ObjectNumber)
	return ok && entry.IsStream()
}

// OpenRawStreamNumber opens the raw (compressed, decrypted) bytes of
// one stream object by number.
func (f *Facade) OpenRawStreamNumber(num int) (io.ReadCloser, error) {
	return OpenRawStreamNumber(f.Doc, num)
}

// OpenRawStream resolves ref and opens its raw bytes.
func (f *Facade) OpenRawStream(ref types.Object) (io.ReadCloser, error) {
	ind, ok := ref.(types.IndirectRef)
	if !ok {
		return nil, ErrNotAStream
	}
	return f.OpenRawStreamNumber(ind.ObjectNumber)
}

// OpenStreamNumber opens a stream object's fully filtered contents by
// number, without short-stopping.
func (f *Facade) OpenStreamNumber(num int) (io.ReadCloser, error) {
	rc, _, err := openImageStream(f.Doc, num, nil)
	return rc, err
}

// OpenStream resolves ref and opens its filtered contents.
func (f *Facade) OpenStream(ref types.Object) (io.ReadCloser, error) {
	ind, ok := ref.(types.IndirectRef)
	if !ok {
		return nil, ErrNotAStream
	}
	return f.OpenStreamNumber(ind.ObjectNumber)
}

// OpenStreamWithOffset opens dict's stream at an explicit offset
// rather than the one recorded in the document's xref table, the path
// pdf_open_stream_with_offset exists for: object streams and xref
// streams parsed ahead of the regular xref walk, where no entry
// exists yet to read an offset out of.
func (f *Facade) OpenStreamWithOffset(dict types.Dict, num int, offset int64) (io.ReadCloser, error) {
	if offset == 0 {
		return nil, notAStream(num, 0)
	}
	entry := &types.XRefEntry{ObjectNumber: num, StreamOffset: offset, Dict: dict}

	raw, err := OpenRawFilter(f.Doc, entry, num)
	if err != nil {
		return nil, err
	}

	filtersObj, _ := dict.FindEither("Filter", "F")
	parmsObj, _ := dict.FindEither("DecodeParms", "DP")

	decoded, err := buildFilterSingleOrChain(f.Doc, raw, filtersObj, parmsObj, num, 0, nil)
	if err != nil {
		raw.Close()
		return nil, err
	}
	return &chainCloser{Reader: decoded, head: decoded, raw: raw}, nil
}

// LoadStreamNumber fully decodes a stream object by number.
func (f *Facade) LoadStreamNumber(num int) ([]byte, error) {
	return LoadStream(f.Doc, num)
}

// LoadStream resolves ref and fully decodes its contents.
func (f *Facade) LoadStream(ref types.Object) ([]byte, error) {
	ind, ok := ref.(types.IndirectRef)
	if !ok {
		return nil, ErrNotAStream
	}
	return f.LoadStreamNumber(ind.ObjectNumber)
}

// LoadRawStreamNumber loads the raw (compressed, decrypted) contents
// of a stream object by number.
func (f *Facade) LoadRawStreamNumber(num int) ([]byte, error) {
	return LoadRawStreamNumber(f.Doc, num)
}

// LoadRawStream resolves ref and loads its raw contents.
func (f *Facade) LoadRawStream(ref types.Object) ([]byte, error) {
	ind, ok := ref.(types.IndirectRef)
	if !ok {
		return nil, ErrNotAStream
	}
	return f.LoadRawStreamNumber(ind.ObjectNumber)
}

// LoadImageStream loads a stream by number, short-stopping the
// terminal image filter into desc and tolerating truncated data, the
// combination an image loader's fast path wants.
func (f *Facade) LoadImageStream(num int) (data []byte, desc filter.Descriptor, truncated bool, err error) {
	opts := LoadStreamOptions{Params: &desc, Truncated: &truncated}
	data, err = LoadStreamNumber(f.Doc, num, opts)
	return data, desc, truncated, err
}

// OpenInlineStream builds a filter pipeline over chain for an inline
// image dictionary, without decryption (inline image data lives
// directly in the content stream, already past the crypt boundary).
// When the dictionary declares no filter, the result is chain limited
// to length bytes, the way raw.go's section reader bounds a normal
// stream object; when it declares filters, the pipeline reads chain
// directly and length is not applied.
func (f *Facade) OpenInlineStream(dict types.Dict, length int, chain io.Reader, imgParams *filter.Descriptor) (io.Reader, error) {
	filtersObj, _ := dict.FindEither("Filter", "F")
	parmsObj, _ := dict.FindEither("DecodeParms", "DP")

	switch filtersObj.(type) {
	case types.Name, types.Array:
		return buildFilterSingleOrChain(f.Doc, chain, filtersObj, parmsObj, 0, 0, imgParams)
	}

	if imgParams != nil {
		*imgParams = filter.Descriptor{Kind: filter.Raw}
	}
	return io.LimitReader(chain, int64(length)), nil
}

// Leech wraps r so everything read through it is also copied into the
// returned buffer — the mechanism inline image decoding uses to keep
// both the decoded image and its still-compressed original bytes from
// a single pass over the underlying stream (fz_open_leecher in the
// original source).
func Leech(r io.Reader) (io.Reader, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return io.TeeReader(r, buf), buf
}

// OpenContentsStream opens a page's /Contents entry, which may be a
// single stream reference or an array of them concatenated in order,
// per pdf_open_contents_stream/pdf_open_object_array. The returned
// ReadCloser's Close tears down every part stage it opened, so
// ownership of all of them transfers to the caller exactly as it does
// for the single-stream case.
func (f *Facade) OpenContentsStream(obj types.Object) (io.ReadCloser, error) {
	arr, isArray := obj.(types.Array)
	if !isArray {
		ind, ok := obj.(types.IndirectRef)
		if !ok || !f.IsStream(ind) {
			return nil, notAStream(0, 0)
		}
		return f.OpenStream(ind)
	}

	var parts []io.ReadCloser
	for i := 0; i < arr.Len(); i++ {
		part, err := f.OpenStream(arr.Get(i))
		if err != nil {
			if errors.Is(err, ErrTryLater) {
				closeAll(parts)
				return nil, err
			}
			log.Info.Printf("OpenContentsStream: cannot load content stream part %d/%d: %v\n", i+1, arr.Len(), err)
			continue
		}
		parts = append(parts, part)
	}

	return newConcatCloser(parts), nil
}

// concatCloser concatenates a fixed sequence of content stream parts
// the way io.MultiReader does, but also closes every part it was
// handed, cascading teardown the way pdf_drop_stream cascades through
// fz_concat_stream's chained substreams in the original source.
type concatCloser struct {
	io.Reader
	parts []io.ReadCloser
}

func newConcatCloser(parts []io.ReadCloser) *concatCloser {
	readers := make([]io.Reader, len(parts))
	for i, p := range parts {
		readers[i] = p
	}
	return &concatCloser{Reader: io.MultiReader(readers...), parts: parts}
}

func (c *concatCloser) Close() error {
	return closeAll(c.parts)
}

func closeAll(parts []io.ReadCloser) error {
	var first error
	for _, p := range parts {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
