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

func TestRunLengthDecoderLiteralAndRepeatRuns(t *testing.T) {
	for _, tt := range []struct {
		name string
		enc  string
		want string
	}{
		{"literal", "\x00\x01\x80", "\x01"},
		{"literal-multi", "\x03\x00\x01\x02\x03\x80", "\x00\x01\x02\x03"},
		{"repeat", "\xFF\x01\x80", "\x01\x01"},
		{"mixed", "\xFF\x00\xFF\x02\x80", "\x00\x00\x02\x02"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ioutil.ReadAll(NewRunLengthDecoder(bytes.NewReader([]byte(tt.enc))))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Fatalf("got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestRunLengthDecoderMissingEOD(t *testing.T) {
	_, err := ioutil.ReadAll(NewRunLengthDecoder(bytes.NewReader([]byte{0x00, 0x01})))
	if err == nil {
		t.Fatal("expected an error for a stream missing its EOD marker")
	}
}
