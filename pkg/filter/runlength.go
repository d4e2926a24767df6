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
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const eodRunLength = 0x80

// runLengthDecoder streams the RunLengthDecode algorithm (7.4.5 of
// ISO 32000): a length byte followed by either a literal run or a
// single byte to repeat, terminated by an EOD byte (0x80).
type runLengthDecoder struct {
	src *bufio.Reader
	buf []byte
	err error
}

// NewRunLengthDecoder returns a streaming decoder for a
// RunLengthDecode stage.
func NewRunLengthDecoder(r io.Reader) io.Reader {
	return &runLengthDecoder{src: bufio.NewReader(r)}
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return errors.New("pdfstream: runlength: missing EOD marker in encoded stream")
	}
	return err
}

// fill decodes the next run into d.buf. Called only once d.buf is
// exhausted.
func (d *runLengthDecoder) fill() error {
	b, err := d.src.ReadByte()
	if err != nil {
		return unexpectedEOF(err)
	}
	if b == eodRunLength {
		return io.EOF
	}
	if b < 0x80 {
		n := int(b) + 1
		lit := make([]byte, n)
		if _, err := io.ReadFull(d.src, lit); err != nil {
			return unexpectedEOF(err)
		}
		d.buf = lit
		return nil
	}
	n := 257 - int(b)
	rep, err := d.src.ReadByte()
	if err != nil {
		return unexpectedEOF(err)
	}
	run := make([]byte, n)
	for i := range run {
		run[i] = rep
	}
	d.buf = run
	return nil
}

func (d *runLengthDecoder) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	for len(d.buf) == 0 {
		if err := d.fill(); err != nil {
			d.err = err
			return 0, err
		}
	}
	n := copy(p, d.buf)
	d.buf = d.buf[n:]
	return n, nil
}
