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

// Package itemcache implements the process-wide, identity-keyed cache
// spec.md assigns to JBig2Globals: store_item/find_item, an LRU over a
// weighted cost budget, and a cache lifetime equal to however long its
// longest-lived holder keeps a reference. It's grounded on MuPDF's
// pdf_find_item/pdf_store_item (source/pdf/pdf-stream.c), reimplemented
// with container/list and sync.Mutex since neither the teacher repo
// nor the rest of the retrieval pack carries a ready-made weighted
// LRU library.
package itemcache

import (
	"container/list"
	"sync"
)

// DefaultBudget is the total cost a Cache evicts down to, matching the
// ballpark MuPDF uses for its store (256MB worth of decoded globals
// and similar cached objects).
const DefaultBudget = 256 << 20

type entry struct {
	key  interface{}
	val  interface{}
	cost int
}

// Cache is a weighted LRU keyed by object identity rather than value
// equality: two distinct dictionaries with identical contents are
// distinct cache keys, matching pdf_find_item's pointer-identity
// lookup.
type Cache struct {
	mu     sync.Mutex
	budget int
	used   int
	ll     *list.List
	index  map[interface{}]*list.Element
}

// New returns a Cache evicting down to budget total cost. A budget of
// 0 uses DefaultBudget.
func New(budget int) *Cache {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Cache{
		budget: budget,
		ll:     list.New(),
		index:  make(map[interface{}]*list.Element),
	}
}

// Find returns the cached value for key, promoting it to
// most-recently-used, or (nil, false) on a miss.
func (c *Cache) Find(key interface{}) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry).val, true
}

// Store inserts val under key with the given cost, evicting
// least-recently-used entries until the cache is back under budget.
// A key already present is replaced.
func (c *Cache) Store(key, val interface{}, cost int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.used -= el.Value.(*entry).cost
		c.ll.Remove(el)
		delete(c.index, key)
	}

	el := c.ll.PushFront(&entry{key: key, val: val, cost: cost})
	c.index[key] = el
	c.used += cost

	for c.used > c.budget {
		back := c.ll.Back()
		if back == nil {
			break
		}
		be := back.Value.(*entry)
		if be.key == key {
			// never evict the entry that was just inserted: a single
			// oversized item simply exceeds the budget on its own.
			break
		}
		c.ll.Remove(back)
		delete(c.index, be.key)
		c.used -= be.cost
	}
}

// Drop removes key unconditionally, used when a holder knows its
// cached value is no longer valid (e.g. the backing document closed).
func (c *Cache) Drop(key interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return
	}
	c.ll.Remove(el)
	delete(c.index, key)
	c.used -= el.Value.(*entry).cost
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
