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

package itemcache

import "testing"

func TestCacheFindMiss(t *testing.T) {
	c := New(0)
	if _, ok := c.Find("missing"); ok {
		t.Fatal("expected a miss on an empty cache")
	}
}

func TestCacheStoreAndFind(t *testing.T) {
	c := New(0)
	type key struct{ n int }
	k := &key{1}

	c.Store(k, "globals-bytes", 10)

	v, ok := c.Find(k)
	if !ok || v != "globals-bytes" {
		t.Fatalf("got (%v, %v), want (globals-bytes, true)", v, ok)
	}

	k2 := &key{1} // same contents, distinct identity
	if _, ok := c.Find(k2); ok {
		t.Fatal("expected lookup by identity, not value, to miss for a distinct pointer")
	}
}

func TestCacheEvictsLeastRecentlyUsedOverBudget(t *testing.T) {
	c := New(10)

	c.Store("a", 1, 6)
	c.Store("b", 2, 6)

	if _, ok := c.Find("a"); ok {
		t.Fatal("expected \"a\" to have been evicted once \"b\" pushed the cache over budget")
	}
	if _, ok := c.Find("b"); !ok {
		t.Fatal("expected \"b\" to remain cached")
	}
}

func TestCacheDrop(t *testing.T) {
	c := New(0)
	c.Store("a", 1, 1)
	c.Drop("a")
	if _, ok := c.Find("a"); ok {
		t.Fatal("expected Drop to remove the entry")
	}
}
