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
	"crypto/rsa"
	"crypto/x509"
	"io"
	"io/ioutil"
	"time"

	"github.com/hhrutter/pkcs7"
	"github.com/pkg/errors"
)

// defaultOCSPTimeout bounds the live revocation check FileKey performs
// before trusting a recipient certificate. Kept short since this runs
// synchronously on the decrypt path of every stream the first time it's
// needed.
const defaultOCSPTimeout = 5 * time.Second

// PubKeyHandler implements types.CryptHandler for the PDF public-key
// security handler (7.6.5 of ISO 32000-1): each recipient's copy of
// the file encryption key is wrapped in a PKCS#7 EnvelopedData blob
// the recipient's certificate can open. The teacher already depends
// on github.com/hhrutter/pkcs7 for signature verification
// (pkg/pdfcpu/sign); this reuses the same library for the decryption
// side of the same format.
type PubKeyHandler struct {
	Cert *x509.Certificate
	Key  *rsa.PrivateKey

	// Recipients holds the DER-encoded PKCS#7 EnvelopedData blobs from
	// the document's /Recipients array. Only one needs to decrypt
	// under the caller's certificate.
	Recipients [][]byte

	// AESV2 selects AES-CBC over RC4 for the per-object wrap, mirroring
	// StandardHandler's CFM distinction.
	AESV2 bool

	// CheckRevocation, when set, is consulted by FileKey before any
	// /Recipients entry is tried, on every call until a file key has
	// been recovered and cached. A confirmed-revoked certificate
	// fails FileKey outright rather than silently decrypting content
	// under a key whose owner has been revoked. A revocation-unknown
	// result (the common case: recipient certs are rarely OCSP-backed
	// the way signing certs are) is not treated as fatal.
	CheckRevocation func(cert *x509.Certificate) (RevocationStatus, error)

	fileKey []byte
}

// FileKey recovers and caches the file encryption key by decrypting
// whichever /Recipients entry was enveloped for h.Cert.
func (h *PubKeyHandler) FileKey() ([]byte, error) {
	if h.fileKey != nil {
		return h.fileKey, nil
	}

	if h.CheckRevocation != nil {
		status, err := h.CheckRevocation(h.Cert)
		if err == nil && status == RevocationRevoked {
			return nil, errors.New("pdfstream: crypt: recipient certificate is revoked")
		}
	}

	var lastErr error
	for _, der := range h.Recipients {
		p7, err := pkcs7.Parse(der)
		if err != nil {
			lastErr = err
			continue
		}
		key, err := p7.Decrypt(h.Cert, h.Key)
		if err != nil {
			lastErr = err
			continue
		}
		h.fileKey = key
		return key, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no recipients")
	}
	return nil, errors.Wrap(lastErr, "pdfstream: crypt: no recipient entry decrypts under this certificate")
}

// NewOCSPRevocationChecker builds a CheckRevocation func for PubKeyHandler
// that checks the recipient certificate against its own OCSP responder,
// adapted from the live-lookup path in pkg/pdfcpu/sign's signature
// revocation checker (there it validates a signer's certificate chain at
// verification time; here it validates a recipient's certificate before
// trusting it to gate the file key).
func NewOCSPRevocationChecker(issuer *x509.Certificate) func(cert *x509.Certificate) (RevocationStatus, error) {
	return func(cert *x509.Certificate) (RevocationStatus, error) {
		return CheckRevocationOCSP(cert, issuer, defaultOCSPTimeout)
	}
}

func (h *PubKeyHandler) DecryptStream(r io.Reader, num, gen int) (io.ReadCloser, error) {
	key, err := h.FileKey()
	if err != nil {
		return nil, err
	}
	if h.AESV2 {
		return newAESCBCReader(r, objectKey(key, num, gen, true))
	}
	return newRC4Reader(r, objectKey(key, num, gen, false))
}

func (h *PubKeyHandler) DecryptStreamNamed(name string, r io.Reader, num, gen int) (io.ReadCloser, error) {
	if name == "Identity" {
		return ioutil.NopCloser(r), nil
	}
	return h.DecryptStream(r, num, gen)
}
