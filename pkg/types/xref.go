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

package types

import "io"

// XRefEntry is the Go shape of spec.md's CrossRefEntry: one object's
// location, generation, and optional pre-cached decoded buffer.
type XRefEntry struct {
	ObjectNumber int
	Generation   int
	Free         bool

	// StreamOffset is the file offset of the object's stream payload.
	// Zero means "this object is not a stream", unless StreamBuf is
	// set.
	StreamOffset int64

	// StreamBuf, when non-nil, is an already-decoded buffer for this
	// stream that supersedes the file (spec.md's stm_buf).
	StreamBuf []byte

	// Dict is the stream's (or regular object's) dictionary. For a
	// stream object this is expected to be convertible to StreamDict
	// by the caller via AsStreamDict.
	Dict Dict

	// FilterPipeline is the stream's already-resolved filter chain
	// (filter name + dereferenced DecodeParms), parallel arrays
	// zipped together. pkg/pdfstream does not read it: it resolves
	// Filter/F and DecodeParms/DP from Dict on every open.
	FilterPipeline []Filter
}

// IsStream implements the predicate from spec.md §4.6: an object is a
// stream iff its xref entry has a non-zero StreamOffset or a cached
// StreamBuf. It never panics on a nil entry.
func (e *XRefEntry) IsStream() bool {
	if e == nil {
		return false
	}
	return e.StreamOffset != 0 || e.StreamBuf != nil
}

// AsStreamDict assembles a StreamDict from the entry's Dict,
// StreamOffset and declared Length.
func (e *XRefEntry) AsStreamDict() StreamDict {
	length := int64(0)
	if l := e.Dict.IntEntry("Length"); l != nil {
		length = int64(*l)
	}
	return NewStreamDict(e.Dict, e.StreamOffset, length)
}

// CryptHandler is the per-document decryption collaborator (spec.md
// §6's "per-object crypt stream, named-filter crypt stream"). A
// Document with no encryption returns a nil CryptHandler from
// Document.Crypt.
type CryptHandler interface {
	// DecryptStream wraps r in the document's default per-object
	// decryption stage, keyed by (num, gen).
	DecryptStream(r io.Reader, num, gen int) (io.ReadCloser, error)

	// DecryptStreamNamed wraps r in the named crypt filter
	// configuration (e.g. a StdCF crypt filter dictionary entry, or
	// "Identity" for a no-op), keyed by (num, gen).
	DecryptStreamNamed(name string, r io.Reader, num, gen int) (io.ReadCloser, error)
}

// Document is the object/xref access collaborator enumerated in
// spec.md §6. The stream access subsystem never parses a PDF file
// itself — it only reaches into a Document for entries, dereferenced
// objects, the raw file, and (if present) the encryption handler.
type Document interface {
	// XrefLen returns one past the highest valid object number
	// (spec.md's xref_len).
	XrefLen() int

	// XrefEntry returns the entry for an object number, or
	// (nil, false) if num is out of range.
	XrefEntry(num int) (*XRefEntry, bool)

	// Dereference resolves an indirect reference to the object it
	// points to. Non-reference input is returned unchanged.
	Dereference(o Object) (Object, error)

	// Crypt returns the document's encryption handler, or nil if the
	// document is unencrypted.
	Crypt() CryptHandler

	// File returns the underlying file, shared by every raw-framing
	// stage opened over this document (spec.md §5: only one stage
	// may be positioned/read at a time).
	File() io.ReaderAt
}
