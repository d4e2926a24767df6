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

package pdfstream

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/tamirevan/pdfstream/pkg/filter"
	"github.com/tamirevan/pdfstream/pkg/log"
	"github.com/tamirevan/pdfstream/pkg/types"
)

// guessFilterLength adjusts a stream's declared Length by the
// expansion or contraction a named filter typically produces, so the
// loader can pre-size its buffer instead of growing it incrementally.
// Per spec.md §4.4 this is applied once per filter name in the
// declared array, not just the terminal one — each stage's estimate
// feeds the next.
func guessFilterLength(n int, filterName string) int {
	switch filterName {
	case filter.ASCIIHex, filter.ASCIIHexShort:
		return n / 2
	case filter.ASCII85, filter.ASCII85Short:
		return n * 4 / 5
	case filter.Flate, filter.FlateShort, filter.RunLength, filter.RunLengthShort:
		return n * 3
	case filter.LZW, filter.LZWShort:
		return n * 2
	default:
		return n
	}
}

func estimateDecodedLength(length int, filtersObj types.Object) int {
	switch f := filtersObj.(type) {
	case types.Name:
		return guessFilterLength(length, string(f))
	case types.Array:
		n := length
		for i := 0; i < f.Len(); i++ {
			if name, ok := f.Get(i).(types.Name); ok {
				n = guessFilterLength(n, string(name))
			}
		}
		return n
	default:
		return length
	}
}

// canReuseBuffer implements can_reuse_buffer: an xref entry's cached
// stm_buf can stand in for a fresh decode only when the declared
// filter list is empty/absent (already-uncompressed data), or is a
// single filter whose descriptor short-stops to something other than
// Raw when an out-param is supplied. Anything else — in particular
// any filter array of length > 1 — is never reusable this way.
func canReuseBuffer(entry *types.XRefEntry, wantParams *filter.Descriptor) bool {
	if entry == nil || entry.StreamBuf == nil {
		return false
	}

	if wantParams != nil {
		*wantParams = filter.Descriptor{Kind: filter.Raw}
	}

	filtersObj, hasFilters := entry.Dict.FindEither("Filter", "F")
	if !hasFilters {
		return true
	}
	if types.IsNull(filtersObj) {
		return true
	}

	parmsObj, _ := entry.Dict.FindEither("DecodeParms", "DP")

	name, isName := filtersObj.(types.Name)
	var parms types.Dict

	if arr, isArray := filtersObj.(types.Array); isArray {
		if arr.Len() == 0 {
			return true
		}
		if arr.Len() != 1 {
			return false
		}
		name, isName = arr.Get(0).(types.Name)
		if parmsArr, ok := parmsObj.(types.Array); ok {
			parms, _ = parmsArr.Get(0).(types.Dict)
		}
	} else if isName {
		parms, _ = parmsObj.(types.Dict)
	}

	if !isName {
		return false
	}
	if wantParams == nil {
		// There are filters, so unless short-stopping is on the table,
		// the cached buffer is still compressed and unusable as-is.
		return false
	}

	desc := filter.Resolve(string(name), parms)
	*wantParams = desc
	return desc.Kind != filter.Raw
}

// openImageStream opens a stream's decode pipeline, optionally
// short-stopping the terminal filter into imgParams instead of
// decoding it, matching pdf_open_image_stream/pdf_open_filter.
func openImageStream(doc types.Document, num int, imgParams *filter.Descriptor) (io.ReadCloser, int, error) {
	if num <= 0 || num >= doc.XrefLen() {
		return nil, 0, objectOutOfRange(num)
	}
	entry, ok := doc.XrefEntry(num)
	if !ok || !entry.IsStream() {
		return nil, 0, notAStream(num, 0)
	}

	raw, err := OpenRawFilter(doc, entry, num)
	if err != nil {
		return nil, 0, err
	}

	filtersObj, _ := entry.Dict.FindEither("Filter", "F")
	parmsObj, _ := entry.Dict.FindEither("DecodeParms", "DP")

	length := 0
	if l := entry.Dict.IntEntry("Length"); l != nil {
		length = *l
	}

	decoded, err := buildFilterSingleOrChain(doc, raw, filtersObj, parmsObj, entry.ObjectNumber, entry.Generation, imgParams)
	if err != nil {
		raw.Close()
		return nil, 0, err
	}

	// Every stage wraps its upstream without necessarily propagating
	// Close to it (the filter package's decoders are plain io.Reader
	// values with no Close of their own, and a crypt stage's Close does
	// not reach the reader it wraps). So Close here always
	// closes both ends: whatever the pipeline head needs closed, then
	// the raw stage underneath it.
	rc := &chainCloser{Reader: decoded, head: decoded, raw: raw}

	return rc, estimateDecodedLength(length, filtersObj), nil
}

type chainCloser struct {
	io.Reader
	head io.Reader
	raw  io.Closer
}

func (c *chainCloser) Close() error {
	if closer, ok := c.head.(io.Closer); ok {
		closer.Close()
	}
	return c.raw.Close()
}

// LoadRawStreamNumber loads the raw (compressed but decrypted)
// contents of a stream into memory, reusing the cached buffer when
// one is already present (pdf_load_raw_stream_number).
func LoadRawStreamNumber(doc types.Document, num int) ([]byte, error) {
	if num > 0 && num < doc.XrefLen() {
		if entry, ok := doc.XrefEntry(num); ok && entry.StreamBuf != nil {
			return entry.StreamBuf, nil
		}
	}

	rc, err := OpenRawStreamNumber(doc, num)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var b bytes.Buffer
	if _, err := io.Copy(&b, rc); err != nil {
		return nil, errors.Wrap(err, "pdfstream: load raw stream")
	}
	return b.Bytes(), nil
}

// LoadStreamOptions configures LoadStreamNumber.
type LoadStreamOptions struct {
	// Params, if non-nil, enables the short-stop fast path: on return,
	// *Params holds the terminal filter's descriptor whenever the
	// pipeline stopped short of applying it.
	Params *filter.Descriptor

	// Truncated, if non-nil, is set to true when decoding stopped at
	// an error after at least some bytes were already produced —
	// spec.md's "read as much as you can, flag the rest" contract —
	// rather than the caller seeing a hard failure.
	Truncated *bool
}

// LoadStreamNumber loads and fully decodes (or short-stops) one
// stream object, per pdf_load_image_stream.
func LoadStreamNumber(doc types.Document, num int, opts LoadStreamOptions) ([]byte, error) {
	if num > 0 && num < doc.XrefLen() {
		if entry, ok := doc.XrefEntry(num); ok {
			if canReuseBuffer(entry, opts.Params) {
				return entry.StreamBuf, nil
			}
		}
	}

	rc, estLen, err := openImageStream(doc, num, opts.Params)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	buf := make([]byte, 0, estLen)
	w := bytes.NewBuffer(buf)
	n, err := io.Copy(w, rc)

	if err != nil {
		if opts.Truncated == nil {
			return nil, errors.Wrap(err, "pdfstream: load stream")
		}
		if n == 0 {
			return nil, errors.Wrap(err, "pdfstream: load stream")
		}
		*opts.Truncated = true
		log.Info.Printf("LoadStreamNumber: %d 0 R truncated after %d bytes: %v\n", num, n, err)
		return w.Bytes(), nil
	}

	if opts.Truncated != nil {
		*opts.Truncated = false
	}
	return w.Bytes(), nil
}

// LoadStream is the non-image convenience form: full decode, no
// short-stop, no truncation tolerance (pdf_load_stream_number).
func LoadStream(doc types.Document, num int) ([]byte, error) {
	return LoadStreamNumber(doc, num, LoadStreamOptions{})
}
