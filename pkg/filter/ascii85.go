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
	"encoding/ascii85"
	"io"
)

// asciiEndStripper drops the PDF-specific "~>" end-of-data marker
// before handing bytes to the standard library's ascii85 decoder,
// which doesn't know about it. It reads one byte at a time through a
// bufio.Reader so the marker is never split across two underlying
// Read calls.
type asciiEndStripper struct {
	src  *bufio.Reader
	done bool
}

func (s *asciiEndStripper) Read(p []byte) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) {
		b, err := s.src.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		if b == '~' {
			next, err := s.src.Peek(1)
			if err == nil && len(next) == 1 && next[0] == '>' {
				s.src.ReadByte()
				s.done = true
				if n > 0 {
					return n, nil
				}
				return 0, io.EOF
			}
		}
		p[n] = b
		n++
	}
	return n, nil
}

// NewASCII85Decoder returns a streaming decoder for an ASCII85Decode
// stage.
func NewASCII85Decoder(r io.Reader) io.Reader {
	return ascii85.NewDecoder(&asciiEndStripper{src: bufio.NewReader(r)})
}
