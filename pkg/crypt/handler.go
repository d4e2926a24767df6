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

package crypt

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

// Method is a crypt filter's CFM entry (7.6.5 of ISO 32000-1 and the
// R6 addition from ISO 32000-2).
type Method int

const (
	MethodIdentity Method = iota
	MethodRC4
	MethodAESV2
	MethodAESV3
)

// CFEntry mirrors one entry of a document's /CF crypt filter
// dictionary.
type CFEntry struct {
	Method Method
	Length int // key length in bytes; 0 means "use the handler default"
}

// StandardHandler implements types.CryptHandler for the PDF standard
// security handler: one file encryption key, derived once during
// authentication, decrypts every object after per-object key mixing
// (R2-R4) or directly (R5/R6, AESV3).
type StandardHandler struct {
	// Key is the file encryption key recovered during authentication.
	Key []byte

	// R is the standard security handler revision (2, 3, 4 or 6).
	R int

	// StmF and StrF name the default crypt filter for streams and
	// strings respectively ("Identity" or a /CF entry name).
	StmF, StrF string

	// CF holds the document's named crypt filters.
	CF map[string]CFEntry
}

func (h *StandardHandler) entry(name string) CFEntry {
	if name == "" || name == "Identity" {
		return CFEntry{Method: MethodIdentity}
	}
	if e, ok := h.CF[name]; ok {
		return e
	}
	return CFEntry{Method: MethodRC4, Length: len(h.Key)}
}

// DecryptStream implements types.CryptHandler using the document's
// default stream crypt filter (StmF).
func (h *StandardHandler) DecryptStream(r io.Reader, num, gen int) (io.ReadCloser, error) {
	return h.DecryptStreamNamed(h.StmF, r, num, gen)
}

// DecryptStreamNamed implements types.CryptHandler for an explicitly
// named crypt filter, used when a stream carries its own /Crypt
// filter entry naming something other than StmF.
func (h *StandardHandler) DecryptStreamNamed(name string, r io.Reader, num, gen int) (io.ReadCloser, error) {
	e := h.entry(name)

	switch e.Method {
	case MethodIdentity:
		return ioutil.NopCloser(r), nil

	case MethodRC4:
		return newRC4Reader(r, objectKey(h.Key, num, gen, false))

	case MethodAESV2:
		return newAESCBCReader(r, objectKey(h.Key, num, gen, true))

	case MethodAESV3:
		// R6/AESV3 uses the file encryption key directly; there is no
		// per-object mixing step (ISO 32000-2 §7.6.2).
		return newAESCBCReader(r, h.Key)

	default:
		return nil, errors.Errorf("pdfstream: crypt: unsupported crypt filter method %d", e.Method)
	}
}
