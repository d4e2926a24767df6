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

package filter

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/ccitt"
)

// NewCCITTFaxDecoder returns a decoder for a CCITTFaxDecode stage.
// The teacher's own CCITT support wraps a fork-internal package
// (github.com/hhrutter/pdfcpu/ccitt) that isn't independently
// resolvable outside that fork; golang.org/x/image/ccitt covers the
// same Group 3/Group 4 algorithms and is a real, already-depended-on
// module, so it stands in here.
func NewCCITTFaxDecoder(r io.Reader, fp FaxParams) (io.Reader, error) {
	if fp.K > 0 {
		return nil, errors.New("pdfstream: ccitt: mixed 1D/2D encoding (K > 0) unsupported")
	}

	mode := ccitt.Group3
	if fp.K < 0 {
		mode = ccitt.Group4
	}

	opts := &ccitt.Options{
		Invert: fp.BlackIs1,
		Align:  fp.EncodedByteAlign,
	}

	rc := ccitt.NewReader(r, ccitt.MSB, mode, fp.Columns, fp.Rows, opts)
	return rc, nil
}
