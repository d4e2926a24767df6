/*
Copyright 2021 The pdfcpu Authors.

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
	"bytes"
	"encoding/gob"
	"image/jpeg"
	"io"

	"github.com/pkg/errors"
)

// NewDCTDecoder returns a decoder for a DCTDecode stage that isn't
// short-stopped (spec.md §4.3's fast path normally defers this one,
// handing the caller the Descriptor instead). When a caller does want
// the samples, they're produced by decoding the JPEG with the
// standard library and gob-encoding the resulting image.Image, the
// same shape the teacher's dctDecode.Decode produces.
func NewDCTDecoder(r io.Reader, jp JpegParams) (io.Reader, error) {
	im, err := jpeg.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "pdfstream: dct")
	}

	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(&im); err != nil {
		return nil, errors.Wrap(err, "pdfstream: dct: encode")
	}
	return &b, nil
}
