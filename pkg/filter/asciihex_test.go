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
	"io/ioutil"
	"testing"
)

func TestASCIIHexDecoder(t *testing.T) {
	for _, tt := range []struct {
		name string
		enc  string
		want string
	}{
		{"even", "48656C6C6F>", "Hello"},
		{"odd-trailing-nibble", "48656C6C6>", "Hell\x60"},
		{"whitespace-ignored", "48 65 6C\n6C 6F>", "Hello"},
		{"lowercase", "48656c6c6f>", "Hello"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ioutil.ReadAll(NewASCIIHexDecoder(bytes.NewReader([]byte(tt.enc))))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
