// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jmdict

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIndexOutOfRange indicates an out-of-bounds indexed access on a
// Collection. The collection is unaffected and remains usable.
var ErrIndexOutOfRange = errors.New("index out of range")

// Query selects entries by substring match. A criterion is supplied when
// its field is non-empty. An entry matches when any supplied criterion
// matches (logical OR); a Query with no supplied criteria matches every
// entry. Matching is case-sensitive and position-independent.
type Query struct {
	// Kanji matches entries whose kanji headword texts contain it.
	Kanji string

	// Reading matches entries whose reading texts contain it.
	Reading string

	// Glossary matches entries with a gloss text containing it in any
	// sense.
	Glossary string

	// Limit caps the number of results when positive. Zero means no
	// limit.
	Limit int
}

// match reports whether e satisfies the query.
func (q Query) match(e *Entry) bool {
	if q.Kanji == "" && q.Reading == "" && q.Glossary == "" {
		return true
	}
	if q.Kanji != "" && e.matchKanji(q.Kanji) {
		return true
	}
	if q.Reading != "" && e.matchReading(q.Reading) {
		return true
	}
	if q.Glossary != "" && e.matchGlossary(q.Glossary) {
		return true
	}
	return false
}

// Collection is an ordered list of dictionary entries. Membership is
// fixed at construction; Filter returns a new independent Collection
// sharing the matched entries with the receiver.
type Collection struct {
	entries []*Entry
}

// NewCollection returns a Collection wrapping the given entries directly.
// No extraction or copying is performed.
func NewCollection(entries []*Entry) *Collection {
	return &Collection{
		entries: entries,
	}
}

// Count returns the number of entries in the collection.
func (c *Collection) Count() int {
	return len(c.entries)
}

// At returns the entry at position i. It returns an error wrapping
// ErrIndexOutOfRange for out-of-bounds positions, including any position
// on an empty collection.
func (c *Collection) At(i int) (*Entry, error) {
	if i < 0 || i >= len(c.entries) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return c.entries[i], nil
}

// Entries returns the collection's entries in order. The returned slice
// is shared with the collection and must not be modified.
func (c *Collection) Entries() []*Entry {
	return c.entries
}

// Filter scans the collection and returns a new Collection holding the
// entries matching q, in collection order. The scan is linear; no index
// is built or reused across calls.
func (c *Collection) Filter(q Query) *Collection {
	var results []*Entry
	for _, e := range c.entries {
		if q.Limit > 0 && len(results) >= q.Limit {
			break
		}
		if q.match(e) {
			results = append(results, e)
		}
	}
	return NewCollection(results)
}

// WriteTo writes a human-readable rendering of every entry to w in
// collection order. It implements [io.WriterTo].
func (c *Collection) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, e := range c.entries {
		n, err := io.WriteString(w, e.String())
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("writing entry %d: %w", e.Sequence, err)
		}
	}
	return written, nil
}

// PrintOut writes a human-readable rendering of every entry to standard
// output.
func (c *Collection) PrintOut() {
	_, _ = c.WriteTo(os.Stdout)
}
