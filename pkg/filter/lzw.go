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
	"bytes"
	"io"

	"github.com/hhrutter/lzw"
	"github.com/pkg/errors"
)

// NewLZWDecoder returns a decoder for an LZWDecode stage, reversing
// whatever TIFF/PNG prediction the parameters declare the same way
// NewFlateDecoder does.
func NewLZWDecoder(r io.Reader, lp LzwParams) (io.Reader, error) {
	rc := lzw.NewReader(r, lp.EarlyChange == 1)
	defer rc.Close()

	if lp.Predictor == PredictorNo {
		var b bytes.Buffer
		if _, err := io.Copy(&b, rc); err != nil {
			return nil, errors.Wrap(err, "pdfstream: lzw")
		}
		return &b, nil
	}
	out, err := unpredict(rc, lp.FlateParams)
	if err != nil {
		return nil, errors.Wrap(err, "pdfstream: lzw")
	}
	return out, nil
}
