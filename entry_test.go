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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-jmdict"
)

// TestEntry_flatViews tests the flattened field accessors.
func TestEntry_flatViews(t *testing.T) {
	t.Parallel()

	e := &jmdict.Entry{
		Sequence: 1003,
		KanjiForms: []jmdict.KanjiForm{
			{Text: "白黒"},
			{Text: "白クロ"},
		},
		Readings: []jmdict.Reading{
			{Text: "しろくろ"},
		},
		Senses: []jmdict.Sense{
			{
				Glosses: []jmdict.Gloss{
					{Text: "black and white"},
					{Text: "monochrome"},
				},
			},
			{
				Glosses: []jmdict.Gloss{
					{Text: "good and evil"},
				},
			},
		},
	}

	if diff := cmp.Diff([]string{"白黒", "白クロ"}, e.KanjiStrings()); diff != "" {
		t.Fatalf("KanjiStrings (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"しろくろ"}, e.ReadingStrings()); diff != "" {
		t.Fatalf("ReadingStrings (-want, +got):\n%s", diff)
	}
	expected := [][]string{
		{"black and white", "monochrome"},
		{"good and evil"},
	}
	if diff := cmp.Diff(expected, e.Glossaries()); diff != "" {
		t.Fatalf("Glossaries (-want, +got):\n%s", diff)
	}
}

// TestEntry_String tests Entry.String.
func TestEntry_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry *jmdict.Entry

		expected string
	}{
		{
			name: "no kanji",
			entry: &jmdict.Entry{
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
			expected: strings.Join([]string{
				"Entry 1002",
				"  Readings:",
				"    ホワイト",
				"  Sense 1:",
				"    white (color)",
				"",
			}, "\n"),
		},
		{
			name: "annotations",
			entry: &jmdict.Entry{
				Sequence: 1471310,
				KanjiForms: []jmdict.KanjiForm{
					{
						Text:     "馬鹿",
						Info:     []string{"ateji"},
						Priority: []string{"ichi1"},
					},
				},
				Readings: []jmdict.Reading{
					{
						Text: "ばか",
						Info: []string{"gikun"},
					},
				},
				Senses: []jmdict.Sense{
					{
						PartsOfSpeech: []string{"n", "adj-na"},
						Glosses: []jmdict.Gloss{
							{Text: "idiot"},
							{Text: "fool"},
						},
					},
					{
						Glosses: []jmdict.Gloss{
							{Text: "trivial matter"},
						},
					},
				},
			},
			expected: strings.Join([]string{
				"Entry 1471310",
				"  Kanji:",
				"    馬鹿 (ateji) [ichi1]",
				"  Readings:",
				"    ばか (gikun)",
				"  Sense 1:",
				"    [n, adj-na]",
				"    idiot",
				"    fool",
				"  Sense 2:",
				"    trivial matter",
				"",
			}, "\n"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, test.entry.String()); diff != "" {
				t.Fatalf("Entry.String (-want, +got):\n%s", diff)
			}
		})
	}
}
