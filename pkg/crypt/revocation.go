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
	"crypto/x509"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ocsp"
)

// RevocationStatus is the outcome of a live OCSP check against a recipient
// certificate used by a public-key security handler.
type RevocationStatus int

const (
	RevocationUnknown RevocationStatus = iota
	RevocationGood
	RevocationRevoked
)

// CheckRevocationOCSP asks the certificate's own OCSP responder whether cert
// is still valid. Recipient certificates embedded in a /Recipients entry
// rarely ship a CRL or stapled OCSP response, so unlike signature
// verification (see pkg/pdfcpu/sign) there is nothing archived to fall back
// to: this only ever does a live lookup.
func CheckRevocationOCSP(cert, issuer *x509.Certificate, timeout time.Duration) (RevocationStatus, error) {
	if len(cert.OCSPServer) == 0 {
		return RevocationUnknown, errors.New("no OCSP responder found in certificate")
	}

	req, err := ocsp.CreateRequest(cert, issuer, nil)
	if err != nil {
		return RevocationUnknown, errors.Errorf("ocsp: failed to create request: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	ocspURL := cert.OCSPServer[0]

	resp, err := client.Post(ocspURL, "application/ocsp-request", bytes.NewReader(req))
	if err != nil {
		return RevocationUnknown, errors.Errorf("ocsp: failed to reach %s: %v", ocspURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RevocationUnknown, errors.Errorf("ocsp: responder at %s returned status %d", ocspURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return RevocationUnknown, errors.Errorf("ocsp: failed to read response: %v", err)
	}

	parsed, err := ocsp.ParseResponse(data, issuer)
	if err != nil {
		return RevocationUnknown, errors.Errorf("ocsp: failed to parse response: %v", err)
	}

	switch parsed.Status {
	case ocsp.Good:
		return RevocationGood, nil
	case ocsp.Revoked:
		return RevocationRevoked, nil
	default:
		return RevocationUnknown, nil
	}
}
