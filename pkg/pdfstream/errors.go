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

package pdfstream

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrObjectOutOfRange and ErrNotAStream are kept as two distinct
// sentinels even though the original source raises both as the same
// generic fz_throw(FZ_ERROR_GENERIC, ...): callers of this package
// routinely need to tell "there is no such object" apart from "there
// is such an object, it just isn't a stream", and a single sentinel
// can't carry that distinction.
var (
	ErrObjectOutOfRange = errors.New("pdfstream: object id out of range")
	ErrNotAStream       = errors.New("pdfstream: object is not a stream")

	// ErrTryLater is returned by a collaborator when the data needed
	// to complete an operation isn't available yet (e.g. a streamed,
	// not-fully-received document) and the caller should retry once
	// more data has arrived. It is never wrapped: callers type-check
	// with errors.Is against this exact sentinel (spec.md §7,
	// "distinguished retryable try-later error").
	ErrTryLater = errors.New("pdfstream: try again, data not yet available")
)

func objectOutOfRange(num int) error {
	return errors.Wrap(ErrObjectOutOfRange, fmt.Sprintf("%d 0 R", num))
}

func notAStream(num, gen int) error {
	return errors.Wrap(ErrNotAStream, fmt.Sprintf("%d %d R", num, gen))
}
