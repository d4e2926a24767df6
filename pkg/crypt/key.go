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

// Package crypt implements the per-object decryption collaborator
// spec.md §6 assumes: RC4 and AES-CBC (AESV2, R2-R4) via the classic
// MD5 key-derivation algorithm, the AESV3/R6 hardened-hash path added
// in PDF 2.0, and a public-key (certificate/PKCS#7) security handler,
// all behind the single types.CryptHandler interface.
package crypt

import "crypto/md5"

// objectKey implements Algorithm 1 of ISO 32000-1 §7.6.2: derive the
// per-object RC4/AES key from the file encryption key and the
// object's (number, generation) pair. needAES appends the "sAlT"
// constant required for the AES variant of the algorithm.
func objectKey(fileKey []byte, objNum, genNum int, needAES bool) []byte {
	m := md5.New()

	m.Write(fileKey)

	nr := uint32(objNum)
	m.Write([]byte{byte(nr), byte(nr >> 8), byte(nr >> 16)})

	gen := uint16(genNum)
	m.Write([]byte{byte(gen), byte(gen >> 8)})

	if needAES {
		m.Write([]byte("sAlT"))
	}

	dk := m.Sum(nil)

	l := len(fileKey) + 5
	if l < 16 {
		return dk[:l]
	}
	return dk
}
