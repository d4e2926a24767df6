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

// Filter represents one element of a stream's filter pipeline: a
// filter name plus its (already-dereferenced) parameter dictionary.
// This is the Go shape of spec.md's "Filter + DecodeParms pair".
type Filter struct {
	Name        string
	DecodeParms Dict
}

// StreamDict represents a PDF stream object's dictionary, with the
// stream's file offset and length resolved alongside it.
type StreamDict struct {
	Dict

	// StreamOffset is the file offset of the stream's raw payload
	// (spec.md's stm_ofs). Zero means "not a stream by offset" — see
	// XRefEntry.IsStream.
	StreamOffset int64

	// StreamLength is the stream's declared /Length, already
	// dereferenced if it was an indirect reference.
	StreamLength int64
}

// NewStreamDict returns a StreamDict wrapping d.
func NewStreamDict(d Dict, streamOffset, streamLength int64) StreamDict {
	return StreamDict{Dict: d, StreamOffset: streamOffset, StreamLength: streamLength}
}

// FilterNames returns the raw Filter/F entry: a single Name, an Array
// of Names, or nil if the stream declares no filter. Indirect
// references inside are left unresolved; callers dereference via the
// Document they have in hand.
func (sd StreamDict) FilterNames() Object {
	o, _ := sd.Dict.FindEither("Filter", "F")
	return o
}

// DecodeParmsRaw returns the raw DecodeParms/DP entry, parallel in
// shape to FilterNames: a single Dict, an Array of Dicts (possibly
// with null holes), or nil.
func (sd StreamDict) DecodeParmsRaw() Object {
	o, _ := sd.Dict.FindEither("DecodeParms", "DP")
	return o
}

// HasExplicitCrypt reports whether the stream's filter list names
// Crypt explicitly, the way pdf_stream_has_crypt does in the original
// source. Indirect filter names are not expected (PDF does not allow
// indirect filter array elements) so no dereferencing is attempted
// here.
func (sd StreamDict) HasExplicitCrypt() bool {
	f := sd.FilterNames()
	if NameEq(f, "Crypt") {
		return true
	}
	if arr, ok := f.(Array); ok {
		for _, v := range arr {
			if NameEq(v, "Crypt") {
				return true
			}
		}
	}
	return false
}
