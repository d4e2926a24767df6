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

package types

import (
	"sort"
	"strings"
)

// Dict represents a PDF dictionary object.
type Dict map[string]Object

// NewDict returns a new, empty Dict.
func NewDict() Dict { return Dict{} }

func (d Dict) Clone() Object {
	d1 := NewDict()
	for k, v := range d {
		if v != nil {
			v = v.Clone()
		}
		d1[k] = v
	}
	return d1
}

func (d Dict) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteString("<<")
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('/')
		sb.WriteString(k)
		sb.WriteByte(' ')
		if d[k] == nil {
			sb.WriteString("null")
		} else {
			sb.WriteString(d[k].String())
		}
	}
	sb.WriteString(">>")
	return sb.String()
}

// Find returns the object for key, the way dict_get does.
func (d Dict) Find(key string) (Object, bool) {
	v, ok := d[key]
	return v, ok
}

// FindEither looks up a or, failing that, b — the way PDF's long-form
// and one-letter-abbreviated key pairs are resolved throughout this
// subsystem (Filter/F, DecodeParms/DP). It is the Go counterpart of
// the collaborator named dict_get_either in spec.md §6.
func (d Dict) FindEither(a, b string) (Object, bool) {
	if v, ok := d[a]; ok {
		return v, true
	}
	v, ok := d[b]
	return v, ok
}

// NameEntry returns the Name value for key, or nil if key is absent
// or not a Name.
func (d Dict) NameEntry(key string) *string {
	v, ok := d.Find(key)
	if !ok {
		return nil
	}
	n, ok := v.(Name)
	if !ok {
		return nil
	}
	s := string(n)
	return &s
}

// IntEntry returns the Integer value for key, or nil if key is absent
// or not an Integer.
func (d Dict) IntEntry(key string) *int {
	v, ok := d.Find(key)
	if !ok {
		return nil
	}
	i, ok := v.(Integer)
	if !ok {
		return nil
	}
	n := i.Value()
	return &n
}

// BooleanEntry returns the Boolean value for key, or nil if key is
// absent or not a Boolean.
func (d Dict) BooleanEntry(key string) *bool {
	v, ok := d.Find(key)
	if !ok {
		return nil
	}
	b, ok := v.(Boolean)
	if !ok {
		return nil
	}
	bb := b.Value()
	return &bb
}

// DictEntry returns the Dict value for key, or nil.
func (d Dict) DictEntry(key string) Dict {
	v, ok := d.Find(key)
	if !ok {
		return nil
	}
	dd, ok := v.(Dict)
	if !ok {
		return nil
	}
	return dd
}

// ArrayEntry returns the Array value for key, or nil.
func (d Dict) ArrayEntry(key string) Array {
	v, ok := d.Find(key)
	if !ok {
		return nil
	}
	a, ok := v.(Array)
	if !ok {
		return nil
	}
	return a
}
