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

// Package filter resolves a PDF filter name and decode-parameter
// dictionary into a CompressionDescriptor (spec.md §4.2) and builds
// the decoder stages the pipeline builder dispatches to.
package filter

import "github.com/tamirevan/pdfstream/pkg/types"

// PDF filter names, long and short form. See 7.4 of ISO 32000.
const (
	ASCIIHex  = "ASCIIHexDecode"
	ASCIIHexShort = "AHx"
	ASCII85   = "ASCII85Decode"
	ASCII85Short = "A85"
	RunLength = "RunLengthDecode"
	RunLengthShort = "RL"
	Flate     = "FlateDecode"
	FlateShort = "Fl"
	LZW       = "LZWDecode"
	LZWShort  = "LZW"
	CCITTFax  = "CCITTFaxDecode"
	CCITTFaxShort = "CCF"
	DCT       = "DCTDecode"
	DCTShort  = "DCT"
	JBIG2     = "JBIG2Decode"
	JPX       = "JPXDecode"
	Crypt     = "Crypt"
)

// Kind tags which decoder a CompressionDescriptor describes. Raw
// means "no image-style compression" — ASCIIHex/ASCII85 (and JBIG2,
// JPX, Crypt) resolve to Raw; the builder applies them by name instead
// of through the generic image decompressor (spec.md §4.2's table).
// RunLength resolves to its own RunLengthKind.
type Kind int

const (
	Raw Kind = iota
	Fax
	Jpeg
	RunLengthKind
	FlateKind
	LzwKind
)

// FaxParams holds CCITTFaxDecode parameters, defaulted per spec.md §4.2.
type FaxParams struct {
	K                int
	EndOfLine        bool
	EncodedByteAlign bool
	Columns          int
	Rows             int
	EndOfBlock       bool
	BlackIs1         bool
}

// JpegParams holds DCTDecode parameters.
type JpegParams struct {
	// ColorTransform is -1 when absent, meaning "auto".
	ColorTransform int
}

// FlateParams holds FlateDecode (and the predictor-relevant part of
// LZWDecode) parameters.
type FlateParams struct {
	Predictor        int
	Columns          int
	Colors           int
	BitsPerComponent int
}

// LzwParams holds LZWDecode parameters.
type LzwParams struct {
	FlateParams
	EarlyChange int
}

// Descriptor is the tagged variant described in spec.md's data model
// as CompressionDescriptor: the decoder kind plus its resolved
// parameters, all defaults already substituted.
type Descriptor struct {
	Kind  Kind
	Fax   FaxParams
	Jpeg  JpegParams
	Flate FlateParams
	Lzw   LzwParams
}

func optInt(parms types.Dict, key string, def int) int {
	if parms == nil {
		return def
	}
	if v := parms.IntEntry(key); v != nil {
		return *v
	}
	return def
}

func optBool(parms types.Dict, key string, def bool) bool {
	if parms == nil {
		return def
	}
	if v := parms.BooleanEntry(key); v != nil {
		return *v
	}
	return def
}

// Resolve maps a filter name and its (possibly nil) parameter
// dictionary to a Descriptor, per the normative table in spec.md
// §4.2. It is pure and side-effect-free: callers decide what to warn
// about when Kind == Raw for a name that isn't actually one of the
// simple-Raw filters.
//
// Resolve substitutes every default at resolve time, including
// Colors, which spec.md §9 Open Question 1 leaves ambiguous in the
// original source (an absent Colors coerces to the zero value there).
// This implementation substitutes PDF's true default of 1 up front so
// no downstream decoder ever observes Colors == 0.
func Resolve(filterName string, parms types.Dict) Descriptor {
	switch filterName {

	case CCITTFax, CCITTFaxShort:
		return Descriptor{
			Kind: Fax,
			Fax: FaxParams{
				K:                optInt(parms, "K", 0),
				EndOfLine:        optBool(parms, "EndOfLine", false),
				EncodedByteAlign: optBool(parms, "EncodedByteAlign", false),
				Columns:          optInt(parms, "Columns", 1728),
				Rows:             optInt(parms, "Rows", 0),
				EndOfBlock:       optBool(parms, "EndOfBlock", true),
				BlackIs1:         optBool(parms, "BlackIs1", false),
			},
		}

	case DCT, DCTShort:
		return Descriptor{
			Kind: Jpeg,
			Jpeg: JpegParams{ColorTransform: optInt(parms, "ColorTransform", -1)},
		}

	case RunLength, RunLengthShort:
		return Descriptor{Kind: RunLengthKind}

	case Flate, FlateShort:
		return Descriptor{
			Kind: FlateKind,
			Flate: FlateParams{
				Predictor:        optInt(parms, "Predictor", 1),
				Columns:          optInt(parms, "Columns", 1),
				Colors:           optInt(parms, "Colors", 1),
				BitsPerComponent: optInt(parms, "BitsPerComponent", 8),
			},
		}

	case LZW, LZWShort:
		fp := FlateParams{
			Predictor:        optInt(parms, "Predictor", 1),
			Columns:          optInt(parms, "Columns", 1),
			Colors:           optInt(parms, "Colors", 1),
			BitsPerComponent: optInt(parms, "BitsPerComponent", 8),
		}
		return Descriptor{
			Kind: LzwKind,
			Lzw:  LzwParams{FlateParams: fp, EarlyChange: optInt(parms, "EarlyChange", 1)},
		}

	default:
		// ASCIIHexDecode, ASCII85Decode, JBIG2Decode, JPXDecode, Crypt
		// and any unrecognized name all resolve to Raw: the builder
		// handles each of those by name instead of through the
		// generic image decompressor.
		return Descriptor{Kind: Raw}
	}
}
