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
	"io"

	"github.com/tamirevan/pdfstream/pkg/filter"
	"github.com/tamirevan/pdfstream/pkg/jbig2"
	"github.com/tamirevan/pdfstream/pkg/log"
	"github.com/tamirevan/pdfstream/pkg/types"
)

// JBig2Decoder, when set, is consulted for every JBIG2Decode stage
// this package builds. A nil value (the default) leaves JBIG2 data
// untouched, matching spec.md's framing of the codec as an
// out-of-scope collaborator with an injectable seam.
var JBig2Decoder jbig2.Decoder

// buildFilter applies one (name, parms) pair to chain, returning the
// new head of the pipeline. When imgParams is non-nil and the name
// resolves to an image-style filter (Fax/Jpeg/RunLength/Flate/Lzw),
// the terminal decoder is NOT applied: *imgParams is populated and
// chain is returned unchanged, so the caller (buildFilterChain, only
// ever for the last filter in the array) can short-stop instead of
// decoding, per spec.md §4.3.
func buildFilter(doc types.Document, chain io.Reader, name string, parms types.Dict, num, gen int, last bool, imgParams *filter.Descriptor) (io.Reader, error) {
	desc := filter.Resolve(name, parms)

	if desc.Kind != filter.Raw {
		if last && imgParams != nil {
			*imgParams = desc
			return chain, nil
		}
		switch desc.Kind {
		case filter.Fax:
			return filter.NewCCITTFaxDecoder(chain, desc.Fax)
		case filter.Jpeg:
			return filter.NewDCTDecoder(chain, desc.Jpeg)
		case filter.RunLengthKind:
			return filter.NewRunLengthDecoder(chain), nil
		case filter.FlateKind:
			return filter.NewFlateDecoder(chain, desc.Flate)
		case filter.LzwKind:
			return filter.NewLZWDecoder(chain, desc.Lzw)
		}
	}

	switch name {
	case filter.ASCIIHex, filter.ASCIIHexShort:
		return filter.NewASCIIHexDecoder(chain), nil

	case filter.ASCII85, filter.ASCII85Short:
		return filter.NewASCII85Decoder(chain), nil

	case filter.JBIG2:
		var globals *jbig2.Globals
		if obj, ok := parms.Find("JBIG2Globals"); ok {
			if ref, ok := obj.(types.IndirectRef); ok {
				if stream, err := jbig2GlobalsFor(doc, ref); err == nil {
					globals = stream
				}
			}
		}
		return jbig2.NewReader(chain, globals, JBig2Decoder)

	case filter.JPX:
		// JPX decoding is special-cased in the image-loading code: this
		// layer never wraps it (spec.md §4.3).
		return chain, nil

	case filter.Crypt:
		if doc.Crypt() == nil {
			log.Info.Println("buildFilter: crypt filter in unencrypted document")
			return chain, nil
		}
		cfName, _ := parms.Find("Name")
		name, _ := cfName.(types.Name)
		rc, err := doc.Crypt().DecryptStreamNamed(string(name), chain, num, gen)
		if err != nil {
			return nil, err
		}
		return rc, nil

	default:
		log.Info.Printf("buildFilter: unknown filter name (%s)\n", name)
		return chain, nil
	}
}

// jbig2GlobalsFor loads the stream a /JBIG2Globals indirect reference
// points to, through the shared, identity-keyed cache.
func jbig2GlobalsFor(doc types.Document, ref types.IndirectRef) (*jbig2.Globals, error) {
	entry, ok := doc.XrefEntry(ref.ObjectNumber)
	if !ok || !entry.IsStream() {
		return nil, notAStream(ref.ObjectNumber, ref.GenerationNumber)
	}
	return jbig2.Load(doc, entry, func() ([]byte, error) {
		return LoadRawStreamNumber(doc, ref.ObjectNumber)
	})
}

// buildFilterChain walks a Filter array and its parallel DecodeParms
// array, feeding each stage's output into the next. Every element is
// passed imgParams, but only the last is flagged as last, so only it
// can short-stop into imgParams, mirroring build_filter_chain's
// "(i == n-1 ? params : NULL)".
func buildFilterChain(doc types.Document, chain io.Reader, filters types.Array, parmsArr types.Array, num, gen int, imgParams *filter.Descriptor) (io.Reader, error) {
	for i := 0; i < filters.Len(); i++ {
		name, _ := filters.Get(i).(types.Name)

		var parms types.Dict
		if p, ok := parmsArr.Get(i).(types.Dict); ok {
			parms = p
		}

		var err error
		chain, err = buildFilter(doc, chain, string(name), parms, num, gen, i == filters.Len()-1, imgParams)
		if err != nil {
			return nil, err
		}
	}
	return chain, nil
}

// buildFilterSingleOrChain dispatches on whether a stream's Filter
// entry is a single Name or an Array of Names, the shape
// pdf_open_filter/pdf_open_inline_stream both switch on.
func buildFilterSingleOrChain(doc types.Document, chain io.Reader, filtersObj, parmsObj types.Object, num, gen int, imgParams *filter.Descriptor) (io.Reader, error) {
	switch f := filtersObj.(type) {
	case types.Name:
		var parms types.Dict
		if p, ok := parmsObj.(types.Dict); ok {
			parms = p
		}
		return buildFilter(doc, chain, string(f), parms, num, gen, true, imgParams)

	case types.Array:
		if f.Len() == 0 {
			return chain, nil
		}
		parmsArr, _ := parmsObj.(types.Array)
		return buildFilterChain(doc, chain, f, parmsArr, num, gen, imgParams)

	default:
		return chain, nil
	}
}
