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
	"encoding/ascii85"
	"io"
	"io/ioutil"
	"testing"
)

func TestASCII85DecoderStripsEndMarker(t *testing.T) {
	want := []byte("Man is distinguished")

	var enc bytes.Buffer
	w := ascii85.NewEncoder(&enc)
	w.Write(want)
	w.Close()
	enc.WriteString("~>")

	got, err := ioutil.ReadAll(NewASCII85Decoder(bytes.NewReader(enc.Bytes())))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestASCII85DecoderMarkerAcrossReadBoundary(t *testing.T) {
	want := []byte("x")

	var enc bytes.Buffer
	w := ascii85.NewEncoder(&enc)
	w.Write(want)
	w.Close()
	enc.WriteString("~>")

	// oneByteReader forces the decoder's end-marker detection to see
	// the "~" and ">" bytes on two separate underlying Read calls.
	got, err := ioutil.ReadAll(NewASCII85Decoder(&oneByteReader{data: enc.Bytes()}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type oneByteReader struct {
	data []byte
	pos  int
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}
