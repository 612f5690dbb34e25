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

package jmdict_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-jmdict"
)

// testEntries returns a small corpus used by the collection tests.
func testEntries() []*jmdict.Entry {
	return []*jmdict.Entry{
		{
			Sequence: 1001,
			KanjiForms: []jmdict.KanjiForm{
				{Text: "白"},
			},
			Readings: []jmdict.Reading{
				{Text: "しろ"},
			},
			Senses: []jmdict.Sense{
				{
					Glosses: []jmdict.Gloss{
						{Text: "white"},
						{Text: "blank"},
					},
				},
			},
		},
		{
			Sequence: 1002,
			Readings: []jmdict.Reading{
				{Text: "ホワイト"},
			},
			Senses: []jmdict.Sense{
				{
					Glosses: []jmdict.Gloss{
						{Text: "white (color)"},
					},
				},
			},
		},
		{
			Sequence: 1003,
			KanjiForms: []jmdict.KanjiForm{
				{Text: "白黒"},
			},
			Readings: []jmdict.Reading{
				{Text: "しろくろ"},
			},
			Senses: []jmdict.Sense{
				{
					Glosses: []jmdict.Gloss{
						{Text: "black and white"},
					},
				},
				{
					Glosses: []jmdict.Gloss{
						{Text: "good and evil"},
					},
				},
			},
		},
	}
}

// sequences returns the sequence numbers of a collection's entries in
// order.
func sequences(c *jmdict.Collection) []int64 {
	var seqs []int64
	for _, e := range c.Entries() {
		seqs = append(seqs, e.Sequence)
	}
	return seqs
}

// TestCollection_Count tests Collection.Count.
func TestCollection_Count(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	tests := []struct {
		name     string
		entries  []*jmdict.Entry
		expected int
	}{
		{
			name:     "empty",
			entries:  nil,
			expected: 0,
		},
		{
			name:     "all",
			entries:  entries,
			expected: 3,
		},
		{
			name:     "subset",
			entries:  entries[:1],
			expected: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := jmdict.NewCollection(test.entries)
			if got := c.Count(); got != test.expected {
				t.Fatalf("Count: expected %d, got %d", test.expected, got)
			}
		})
	}
}

// TestCollection_At tests Collection.At.
func TestCollection_At(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	tests := []struct {
		name    string
		entries []*jmdict.Entry
		i       int

		expected    int64
		expectedErr error
	}{
		{
			name:     "first",
			entries:  entries,
			i:        0,
			expected: 1001,
		},
		{
			name:     "last",
			entries:  entries,
			i:        2,
			expected: 1003,
		},
		{
			name:        "negative",
			entries:     entries,
			i:           -1,
			expectedErr: jmdict.ErrIndexOutOfRange,
		},
		{
			name:        "past end",
			entries:     entries,
			i:           3,
			expectedErr: jmdict.ErrIndexOutOfRange,
		},
		{
			name:        "empty collection",
			entries:     nil,
			i:           0,
			expectedErr: jmdict.ErrIndexOutOfRange,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := jmdict.NewCollection(test.entries)
			e, err := c.At(test.i)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("At: expected %v, got %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("At: %v", err)
			}
			if e.Sequence != test.expected {
				t.Fatalf("At: expected sequence %d, got %d", test.expected, e.Sequence)
			}

			// The failed access must not corrupt the collection.
			if got := c.Count(); got != len(test.entries) {
				t.Fatalf("Count after At: expected %d, got %d", len(test.entries), got)
			}
		})
	}
}

// TestCollection_Filter tests Collection.Filter.
func TestCollection_Filter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query jmdict.Query

		expected []int64
	}{
		{
			name:     "kanji match",
			query:    jmdict.Query{Kanji: "白"},
			expected: []int64{1001, 1003},
		},
		{
			name:     "kanji no match",
			query:    jmdict.Query{Kanji: "黒犬"},
			expected: nil,
		},
		{
			name:     "reading match",
			query:    jmdict.Query{Reading: "しろ"},
			expected: []int64{1001, 1003},
		},
		{
			name:     "reading exact-length substring",
			query:    jmdict.Query{Reading: "ホワイト"},
			expected: []int64{1002},
		},
		{
			name:     "glossary match",
			query:    jmdict.Query{Glossary: "blank"},
			expected: []int64{1001},
		},
		{
			name:     "glossary matches later sense",
			query:    jmdict.Query{Glossary: "evil"},
			expected: []int64{1003},
		},
		{
			name:     "glossary is case sensitive",
			query:    jmdict.Query{Glossary: "White"},
			expected: nil,
		},
		{
			name:     "supplied criteria combine with OR",
			query:    jmdict.Query{Kanji: "白黒", Glossary: "blank"},
			expected: []int64{1001, 1003},
		},
		{
			name:     "unmatched criterion does not constrain",
			query:    jmdict.Query{Kanji: "無", Glossary: "white"},
			expected: []int64{1001, 1002, 1003},
		},
		{
			name:     "no criteria returns all",
			query:    jmdict.Query{},
			expected: []int64{1001, 1002, 1003},
		},
		{
			name:     "limit",
			query:    jmdict.Query{Glossary: "white", Limit: 1},
			expected: []int64{1001},
		},
		{
			name:     "limit larger than result",
			query:    jmdict.Query{Glossary: "blank", Limit: 10},
			expected: []int64{1001},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := jmdict.NewCollection(testEntries())
			result := c.Filter(test.query)

			if diff := cmp.Diff(test.expected, sequences(result)); diff != "" {
				t.Fatalf("Filter (-want, +got):\n%s", diff)
			}

			// The receiver's membership is unchanged.
			if got := c.Count(); got != 3 {
				t.Fatalf("Count after Filter: expected 3, got %d", got)
			}
		})
	}
}

// TestCollection_Filter_sharesEntries tests that filtered collections hold
// the receiver's entries rather than copies.
func TestCollection_Filter_sharesEntries(t *testing.T) {
	t.Parallel()

	c := jmdict.NewCollection(testEntries())
	result := c.Filter(jmdict.Query{Kanji: "白"})

	orig, err := c.At(0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	got, err := result.At(0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if orig != got {
		t.Fatalf("Filter: expected shared entry %p, got %p", orig, got)
	}
}

// TestCollection_WriteTo tests Collection.WriteTo.
func TestCollection_WriteTo(t *testing.T) {
	t.Parallel()

	c := jmdict.NewCollection([]*jmdict.Entry{
		{
			Sequence: 1001,
			KanjiForms: []jmdict.KanjiForm{
				{Text: "白", Priority: []string{"ichi1"}},
			},
			Readings: []jmdict.Reading{
				{Text: "しろ"},
			},
			Senses: []jmdict.Sense{
				{
					PartsOfSpeech: []string{"&n;"},
					Glosses: []jmdict.Gloss{
						{Text: "white"},
						{Text: "blank"},
					},
				},
			},
		},
	})

	var b strings.Builder
	n, err := c.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	expected := strings.Join([]string{
		"Entry 1001",
		"  Kanji:",
		"    白 [ichi1]",
		"  Readings:",
		"    しろ",
		"  Sense 1:",
		"    [&n;]",
		"    white",
		"    blank",
		"",
	}, "\n")

	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Fatalf("WriteTo (-want, +got):\n%s", diff)
	}
	if n != int64(len(expected)) {
		t.Fatalf("WriteTo: expected %d bytes, got %d", len(expected), n)
	}
}
