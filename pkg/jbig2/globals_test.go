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

package jbig2

import (
	"bytes"
	"io"
	"io/ioutil"
	"testing"
)

func TestLoadReadsThroughOnceThenCaches(t *testing.T) {
	calls := 0
	key := &struct{ n int }{1}
	read := func() ([]byte, error) {
		calls++
		return []byte("globals segment bytes"), nil
	}

	g1, err := Load(nil, key, read)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := Load(nil, key, read)
	if err != nil {
		t.Fatal(err)
	}

	if g1 != g2 {
		t.Fatal("expected the second Load with the same key to return the cached Globals")
	}
	if calls != 1 {
		t.Fatalf("got %d reads, want 1 (second Load should hit the cache)", calls)
	}
	if string(g1.Bytes()) != "globals segment bytes" {
		t.Fatalf("got %q", g1.Bytes())
	}
}

func TestLoadDistinctKeysReadThroughIndependently(t *testing.T) {
	calls := 0
	read := func() ([]byte, error) {
		calls++
		return []byte("bytes"), nil
	}

	if _, err := Load(nil, &struct{ n int }{1}, read); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(nil, &struct{ n int }{2}, read); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("got %d reads, want 2 for two distinct keys", calls)
	}
}

func TestPassthroughDecoderReturnsBytesUnchanged(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte("encoded jbig2 bits")), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "encoded jbig2 bits" {
		t.Fatalf("got %q, want passthrough of the input", got)
	}
}

type stubDecoder struct{ decoded string }

func (d stubDecoder) Decode(r io.Reader, globals *Globals) (io.Reader, error) {
	return bytes.NewReader([]byte(d.decoded)), nil
}

func TestNewReaderDispatchesToConfiguredDecoder(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte("encoded")), nil, stubDecoder{decoded: "decoded pixels"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "decoded pixels" {
		t.Fatalf("got %q, want %q", got, "decoded pixels")
	}
}
