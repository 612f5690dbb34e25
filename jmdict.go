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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// JMDict is a loaded JMdict dictionary. It is bound to one source
// document, parsed fully at construction, and queryable indefinitely
// afterwards. Search methods perform a linear scan over the loaded
// entries and return a new Collection.
type JMDict struct {
	path    string
	entries []*Entry
	skipped int
}

// Open opens a JMdict dictionary from the given file path. Sources
// compressed with gzip (.gz) or dictzip (.dz) are decompressed
// transparently. The whole document is parsed in a single blocking pass.
//
// A path that does not resolve surfaces the underlying [os.Open] error;
// callers can test for it with [errors.Is] and [io/fs.ErrNotExist].
func Open(path string, options *ScannerOptions) (*JMDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".dz":
		zr, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	d, err := New(r, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	d.path = path
	return d, nil
}

// New reads a JMdict dictionary from an already-open document stream. The
// caller retains ownership of the reader.
func New(r io.Reader, options *ScannerOptions) (*JMDict, error) {
	s, err := NewScanner(io.NopCloser(r), options)
	if err != nil {
		return nil, err
	}

	var entries []*Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return &JMDict{
		entries: entries,
		skipped: s.Skipped(),
	}, nil
}

// Path returns the source file path the dictionary was opened from. It is
// empty for dictionaries created with New.
func (d *JMDict) Path() string {
	return d.path
}

// Skipped returns the number of malformed entries dropped during parsing.
// It is always zero unless the dictionary was opened with SkipMalformed.
func (d *JMDict) Skipped() int {
	return d.skipped
}

// All returns a new Collection of every entry in parse order.
func (d *JMDict) All() *Collection {
	return NewCollection(d.entries)
}

// SearchSequence returns a new Collection of the entries whose sequence
// number equals seq. Sequence numbers are unique in the corpus so the
// result holds at most one entry; it is empty when seq is absent.
func (d *JMDict) SearchSequence(seq int64) *Collection {
	var results []*Entry
	for _, e := range d.entries {
		if e.Sequence == seq {
			results = append(results, e)
		}
	}
	return NewCollection(results)
}

// SearchKanji returns a new Collection of the entries with a kanji
// headword containing sub.
func (d *JMDict) SearchKanji(sub string) *Collection {
	return d.All().Filter(Query{Kanji: sub})
}

// SearchReading returns a new Collection of the entries with a reading
// containing sub.
func (d *JMDict) SearchReading(sub string) *Collection {
	return d.All().Filter(Query{Reading: sub})
}

// SearchGlossary returns a new Collection of the entries with a gloss
// containing sub.
func (d *JMDict) SearchGlossary(sub string) *Collection {
	return d.All().Filter(Query{Glossary: sub})
}
