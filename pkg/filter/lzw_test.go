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
	"io/ioutil"
	"testing"

	"github.com/hhrutter/lzw"
)

func encodeLZW(t *testing.T, raw []byte, earlyChange bool) []byte {
	t.Helper()
	var b bytes.Buffer
	w := lzw.NewWriter(&b, earlyChange)
	if _, err := w.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func TestLZWDecoderDefaultPredictorRoundTrips(t *testing.T) {
	want := []byte("a stream of bytes repeated, repeated, repeated for compressibility")
	enc := encodeLZW(t, want, true)

	r, err := NewLZWDecoder(bytes.NewReader(enc), LzwParams{EarlyChange: 1, FlateParams: FlateParams{Predictor: PredictorNo}})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error reading decoded stream: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}
