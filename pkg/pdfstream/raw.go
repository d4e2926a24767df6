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

	"github.com/tamirevan/pdfstream/pkg/log"
	"github.com/tamirevan/pdfstream/pkg/types"
)

// rawStage is the bottom of every pipeline: a length-bounded view
// into the document's file, optionally followed by per-object
// decryption. It corresponds to pdf_open_raw_filter in the original
// source.
type rawStage struct {
	io.Reader
	closer func() error
}

func (s *rawStage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// OpenRawFilter opens the length-constrained, decrypted-but-not-yet-
// filtered view of one stream object, per spec.md §4.1.
//
// num is the object number the caller is actually asking for, and it
// drives a distinction entry alone can't make: when num falls inside
// the document's regular xref range, entry is assumed to be that
// object's real xref entry, so its cached decoded buffer (stm_buf) is
// honored and its recorded generation is used for decryption. When num
// falls outside that range — the one caller that does this is
// OpenStreamWithOffset, parsing a new-format xref section ahead of the
// xref table being complete — entry is a synthetic placeholder, so the
// stm_buf cache is skipped and generation 0 is forced, matching
// pdf_open_raw_filter's own num-vs-xref-len branch in the original
// source.
func OpenRawFilter(doc types.Document, entry *types.XRefEntry, num int) (io.ReadCloser, error) {
	inXref := num > 0 && num < doc.XrefLen()

	gen := 0
	if inXref {
		if entry.StreamBuf != nil {
			return io.NopCloser(bytes.NewReader(entry.StreamBuf)), nil
		}
		gen = entry.Generation
	}

	sd := entry.AsStreamDict()
	section := io.NewSectionReader(doc.File(), entry.StreamOffset, sd.StreamLength)

	var r io.Reader = section
	var closer func() error

	if doc.Crypt() != nil && !sd.HasExplicitCrypt() {
		rc, err := doc.Crypt().DecryptStream(section, num, gen)
		if err != nil {
			return nil, err
		}
		r, closer = rc, rc.Close
	}

	log.Trace.Printf("OpenRawFilter: %d %d R, offset=%d length=%d\n", num, gen, entry.StreamOffset, sd.StreamLength)

	return &rawStage{Reader: r, closer: closer}, nil
}

// OpenRawStreamNumber is the by-number entry point matching
// pdf_open_raw_stream_number: validate the object number, require
// that it is in fact a stream, and open its raw framing.
func OpenRawStreamNumber(doc types.Document, num int) (io.ReadCloser, error) {
	if num <= 0 || num >= doc.XrefLen() {
		return nil, objectOutOfRange(num)
	}
	entry, ok := doc.XrefEntry(num)
	if !ok || !entry.IsStream() {
		return nil, notAStream(num, 0)
	}
	return OpenRawFilter(doc, entry, num)
}
