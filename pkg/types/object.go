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

// Package types holds the slice of the PDF object model the stream
// access subsystem needs: dict/array/name/integer values, the stream
// dictionary, the cross reference entry, and the Document interface
// through which the subsystem reaches the (externally owned) object
// store, encryption handler and file.
//
// Everything else a PDF engine needs — parsing, validation, content
// interpretation, writing — lives outside this package's concern.
package types

import "strconv"

// Object is the minimal PDF object contract this subsystem consumes.
type Object interface {
	Clone() Object
	String() string
}

// Name represents a PDF name object, e.g. /FlateDecode.
type Name string

func (n Name) Clone() Object  { return n }
func (n Name) String() string { return string(n) }

// Integer represents a PDF integer object.
type Integer int

func (i Integer) Clone() Object  { return i }
func (i Integer) String() string { return strconv.Itoa(int(i)) }
func (i Integer) Value() int     { return int(i) }

// Boolean represents a PDF boolean object.
type Boolean bool

func (b Boolean) Clone() Object  { return b }
func (b Boolean) String() string { if b { return "true" }; return "false" }
func (b Boolean) Value() bool    { return bool(b) }

// IndirectRef represents "N G R" — a reference to an indirect object.
type IndirectRef struct {
	ObjectNumber     int
	GenerationNumber int
}

func NewIndirectRef(num, gen int) IndirectRef { return IndirectRef{num, gen} }

func (ir IndirectRef) Clone() Object { return ir }
func (ir IndirectRef) String() string {
	return strconv.Itoa(ir.ObjectNumber) + " " + strconv.Itoa(ir.GenerationNumber) + " R"
}

// ToNum returns the object number a reference or bare object resolves
// to for identity purposes (0 for anything that isn't a reference).
func ToNum(o Object) int {
	if ir, ok := o.(IndirectRef); ok {
		return ir.ObjectNumber
	}
	return 0
}

func IsIndirect(o Object) bool {
	_, ok := o.(IndirectRef)
	return ok
}

func IsName(o Object) bool {
	_, ok := o.(Name)
	return ok
}

func IsArray(o Object) bool {
	_, ok := o.(Array)
	return ok
}

func IsNull(o Object) bool {
	return o == nil
}

func NameEq(o Object, name string) bool {
	n, ok := o.(Name)
	return ok && string(n) == name
}
