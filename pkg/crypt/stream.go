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
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rc4"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

// newRC4Reader streams RC4 decryption over the wrapped reader; RC4 is
// a synchronous stream cipher so this needs no buffering beyond the
// cipher's own keystream state.
func newRC4Reader(r io.Reader, key []byte) (io.ReadCloser, error) {
	c, err := rc4.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "pdfstream: crypt: rc4 key")
	}
	return ioutil.NopCloser(&cipher.StreamReader{S: c, R: r}), nil
}

// aesCBCReader decrypts AES-CBC, PDF-style: the first block of
// ciphertext is the IV, the rest must divide evenly into block-size
// chunks. CBC mode can't be unwound a few bytes at a time without
// reassembling whole blocks, so the ciphertext is read in full before
// any plaintext is produced — matching the teacher's decryptStream.
func newAESCBCReader(r io.Reader, key []byte) (io.ReadCloser, error) {
	ciphertext, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "pdfstream: crypt: aes read")
	}
	if len(ciphertext) < aes.BlockSize {
		return nil, errors.New("pdfstream: crypt: aes ciphertext too short")
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, errors.New("pdfstream: crypt: aes ciphertext not block aligned")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "pdfstream: crypt: aes key")
	}

	iv := ciphertext[:aes.BlockSize]
	data := ciphertext[aes.BlockSize:]
	if len(data) == 0 {
		return ioutil.NopCloser(bytes.NewReader(nil)), nil
	}

	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(data, data)

	data = stripPKCS7Padding(data)

	return ioutil.NopCloser(bytes.NewReader(data)), nil
}

// stripPKCS7Padding removes the PKCS#7 padding PDF's AES filters
// apply. A malformed or absent padding byte is tolerated by returning
// the input unchanged: upstream stream-length truncation already
// covers most corrupt-stream cases (spec.md §4.4).
func stripPKCS7Padding(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	n := int(data[len(data)-1])
	if n <= 0 || n > aes.BlockSize || n > len(data) {
		return data
	}
	return data[:len(data)-n]
}
