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

package pdfstream_test

import (
	"bytes"
	"compress/zlib"
	"io"
	"io/ioutil"
	"testing"

	"github.com/pkg/errors"
	"github.com/tamirevan/pdfstream/pkg/filter"
	"github.com/tamirevan/pdfstream/pkg/pdfstream"
	"github.com/tamirevan/pdfstream/pkg/types"
)

type fakeCrypt struct {
	tryLaterFor map[int]bool
}

func (c *fakeCrypt) DecryptStream(r io.Reader, num, gen int) (io.ReadCloser, error) {
	if c.tryLaterFor[num] {
		return nil, pdfstream.ErrTryLater
	}
	return ioutil.NopCloser(r), nil
}

func (c *fakeCrypt) DecryptStreamNamed(name string, r io.Reader, num, gen int) (io.ReadCloser, error) {
	return c.DecryptStream(r, num, gen)
}

type fakeDoc struct {
	file    []byte
	entries map[int]*types.XRefEntry
	crypt   types.CryptHandler
}

func (d *fakeDoc) XrefLen() int { return 1000 }

func (d *fakeDoc) XrefEntry(num int) (*types.XRefEntry, bool) {
	e, ok := d.entries[num]
	return e, ok
}

func (d *fakeDoc) Dereference(o types.Object) (types.Object, error) {
	return o, nil
}

func (d *fakeDoc) Crypt() types.CryptHandler { return d.crypt }

func (d *fakeDoc) File() io.ReaderAt { return bytes.NewReader(d.file) }

func deflate(t *testing.T, raw []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	if _, err := w.Write(raw); err != nil {
		t.Fatal(err)
	}
	w.Close()
	return b.Bytes()
}

func newDoc(streams map[int][]byte, filters map[int]types.Object) (*fakeDoc, []byte) {
	var file bytes.Buffer
	entries := make(map[int]*types.XRefEntry)

	// A leading header keeps every stream off file offset 0, which an
	// xref entry without a cached buffer treats as "not a stream".
	file.WriteString("%PDF-1.7\n")

	for num, data := range streams {
		offset := int64(file.Len())
		file.Write(data)

		d := types.NewDict()
		d["Length"] = types.Integer(len(data))
		if f, ok := filters[num]; ok {
			d["Filter"] = f
		}

		entries[num] = &types.XRefEntry{
			ObjectNumber: num,
			StreamOffset: offset,
			Dict:         d,
		}
	}

	return &fakeDoc{entries: entries}, file.Bytes()
}

func TestLoadStreamPlain(t *testing.T) {
	raw := []byte("hello, stream world")
	doc, file := newDoc(map[int][]byte{5: raw}, nil)
	doc.file = file

	got, err := pdfstream.LoadStream(doc, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("got %q, want %q", got, raw)
	}
}

func TestLoadStreamFlate(t *testing.T) {
	raw := []byte("a flate-compressed stream, decoded end to end")
	doc, file := newDoc(
		map[int][]byte{5: deflate(t, raw)},
		map[int]types.Object{5: types.Name(filter.Flate)},
	)
	doc.file = file

	got, err := pdfstream.LoadStream(doc, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("got %q, want %q", got, raw)
	}
}

func TestLoadImageStreamShortStop(t *testing.T) {
	raw := []byte("short-stopped image samples")
	doc, file := newDoc(
		map[int][]byte{5: deflate(t, raw)},
		map[int]types.Object{5: types.Name(filter.Flate)},
	)
	doc.file = file

	f := pdfstream.New(doc)
	data, desc, truncated, err := f.LoadImageStream(5)
	if err != nil {
		t.Fatal(err)
	}
	if truncated {
		t.Fatal("did not expect truncation")
	}
	if desc.Kind != filter.FlateKind {
		t.Fatalf("expected a short-stopped Flate descriptor, got kind %v", desc.Kind)
	}
	// The terminal filter was short-stopped, so data is still compressed.
	if bytes.Equal(data, raw) {
		t.Fatal("expected short-stopped data to remain compressed")
	}
}

func TestOpenRawStreamNumberObjectOutOfRange(t *testing.T) {
	doc, file := newDoc(nil, nil)
	doc.file = file

	_, err := pdfstream.OpenRawStreamNumber(doc, doc.XrefLen())
	if !errors.Is(err, pdfstream.ErrObjectOutOfRange) {
		t.Fatalf("got %v, want ErrObjectOutOfRange", err)
	}
}

func TestOpenRawStreamNumberNotAStream(t *testing.T) {
	doc, file := newDoc(nil, nil)
	doc.file = file
	doc.entries[3] = &types.XRefEntry{ObjectNumber: 3, Dict: types.NewDict()}

	_, err := pdfstream.OpenRawStreamNumber(doc, 3)
	if !errors.Is(err, pdfstream.ErrNotAStream) {
		t.Fatalf("got %v, want ErrNotAStream", err)
	}
}

func TestOpenContentsStreamSkipsPartFailuresButStopsOnTryLater(t *testing.T) {
	doc, file := newDoc(map[int][]byte{
		1: []byte("part one "),
		3: []byte("part three"),
	}, nil)
	doc.file = file
	doc.crypt = &fakeCrypt{}

	f := pdfstream.New(doc)

	arr := types.Array{
		types.NewIndirectRef(1, 0),
		types.NewIndirectRef(2, 0),
		types.NewIndirectRef(3, 0),
	}
	// object 2 isn't a stream in this xref, only 1 and 3 were loaded above,
	// which simulates a missing middle part.

	r, err := f.OpenContentsStream(arr)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "part one part three" {
		t.Fatalf("got %q, want the first and third parts with the missing middle skipped", got)
	}

	doc.crypt = &fakeCrypt{tryLaterFor: map[int]bool{1: true}}
	_, err = f.OpenContentsStream(arr)
	if !errors.Is(err, pdfstream.ErrTryLater) {
		t.Fatalf("got %v, want ErrTryLater to propagate immediately", err)
	}
}
