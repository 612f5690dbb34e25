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
	"fmt"
	"strings"
)

// KanjiForm is a <k_ele> element. It holds a headword rendered in kanji
// along with orthography information and frequency-of-use priority codes.
type KanjiForm struct {
	// Text is the headword text from <keb>.
	Text string `xml:"keb"`

	// Info holds orthography notes from <ke_inf> (e.g. irregular okurigana).
	Info []string `xml:"ke_inf"`

	// Priority holds frequency-of-use codes from <ke_pri>.
	Priority []string `xml:"ke_pri"`
}

// String returns the headword text with any annotations.
func (k *KanjiForm) String() string {
	return annotated(k.Text, k.Info, k.Priority)
}

// Reading is an <r_ele> element. It holds the kana transcription of the
// headword.
type Reading struct {
	// Text is the reading text from <reb>.
	Text string `xml:"reb"`

	// NoKanji is non-nil if <re_nokanji> is present, indicating that the
	// reading is not a true reading of the kanji forms.
	NoKanji *string `xml:"re_nokanji"`

	// Restrictions holds <re_restr> values restricting the reading to
	// specific kanji forms.
	Restrictions []string `xml:"re_restr"`

	// Info holds notes from <re_inf> (e.g. unusual okurigana).
	Info []string `xml:"re_inf"`

	// Priority holds frequency-of-use codes from <re_pri>.
	Priority []string `xml:"re_pri"`
}

// String returns the reading text with any annotations.
func (r *Reading) String() string {
	return annotated(r.Text, r.Info, r.Priority)
}

// LanguageSource is an <lsource> element describing the source language of
// a loan word.
type LanguageSource struct {
	// Text is the word or phrase in the source language.
	Text string `xml:",chardata"`

	// Lang is the source language code from the xml:lang attribute.
	Lang string `xml:"lang,attr"`

	// Type is the ls_type attribute ("full" or "part").
	Type string `xml:"ls_type,attr"`

	// Wasei is the ls_wasei attribute indicating wasei-eigo
	// (Japanese-coined terms from foreign words).
	Wasei string `xml:"ls_wasei,attr"`
}

// Gloss is a <gloss> element holding a single translational equivalent of
// a sense.
type Gloss struct {
	// Text is the gloss text.
	Text string `xml:",chardata"`

	// Lang is the target language code from the xml:lang attribute.
	Lang string `xml:"lang,attr"`

	// Type is the g_type attribute (e.g. "lit", "fig", "expl").
	Type string `xml:"g_type,attr"`

	// Gender is the g_gend attribute holding the gender of the gloss in
	// the target language.
	Gender string `xml:"g_gend,attr"`
}

// Sense is a <sense> element grouping glosses for one meaning of an entry
// together with grammar, usage and source-language information.
type Sense struct {
	// KanjiRestrictions holds <stagk> values restricting the sense to
	// specific kanji forms.
	KanjiRestrictions []string `xml:"stagk"`

	// ReadingRestrictions holds <stagr> values restricting the sense to
	// specific readings.
	ReadingRestrictions []string `xml:"stagr"`

	// CrossReferences holds <xref> references to related entries.
	CrossReferences []string `xml:"xref"`

	// Antonyms holds <ant> references to antonym entries.
	Antonyms []string `xml:"ant"`

	// PartsOfSpeech holds <pos> values.
	PartsOfSpeech []string `xml:"pos"`

	// Fields holds <field> values naming the field of application (e.g.
	// medicine, sumo).
	Fields []string `xml:"field"`

	// Misc holds <misc> usage notes.
	Misc []string `xml:"misc"`

	// Info holds free-text <s_inf> notes.
	Info []string `xml:"s_inf"`

	// Dialects holds <dial> dialect codes.
	Dialects []string `xml:"dial"`

	// LanguageSources holds <lsource> elements for loan words.
	LanguageSources []LanguageSource `xml:"lsource"`

	// Glosses holds the sense's <gloss> elements.
	Glosses []Gloss `xml:"gloss"`
}

// Entry is a single JMdict dictionary entry. Entries are immutable once
// parsed; Collection values returned by filtering share the same Entry
// values rather than copies.
type Entry struct {
	// Sequence is the entry's unique sequence number from <ent_seq>.
	Sequence int64

	// KanjiForms holds the entry's <k_ele> elements in document order.
	// Some entries have none.
	KanjiForms []KanjiForm

	// Readings holds the entry's <r_ele> elements in document order. A
	// valid entry has at least one.
	Readings []Reading

	// Senses holds the entry's <sense> elements in document order.
	Senses []Sense
}

// KanjiStrings returns the entry's kanji headword texts in document order.
func (e *Entry) KanjiStrings() []string {
	var texts []string
	for i := range e.KanjiForms {
		texts = append(texts, e.KanjiForms[i].Text)
	}
	return texts
}

// ReadingStrings returns the entry's reading texts in document order.
func (e *Entry) ReadingStrings() []string {
	var texts []string
	for i := range e.Readings {
		texts = append(texts, e.Readings[i].Text)
	}
	return texts
}

// Glossaries returns the entry's gloss texts grouped by sense, both in
// document order.
func (e *Entry) Glossaries() [][]string {
	var senses [][]string
	for i := range e.Senses {
		var glosses []string
		for j := range e.Senses[i].Glosses {
			glosses = append(glosses, e.Senses[i].Glosses[j].Text)
		}
		senses = append(senses, glosses)
	}
	return senses
}

// matchKanji reports whether sub occurs in any kanji headword text.
func (e *Entry) matchKanji(sub string) bool {
	for i := range e.KanjiForms {
		if strings.Contains(e.KanjiForms[i].Text, sub) {
			return true
		}
	}
	return false
}

// matchReading reports whether sub occurs in any reading text.
func (e *Entry) matchReading(sub string) bool {
	for i := range e.Readings {
		if strings.Contains(e.Readings[i].Text, sub) {
			return true
		}
	}
	return false
}

// matchGlossary reports whether sub occurs in any gloss text of any sense.
func (e *Entry) matchGlossary(sub string) bool {
	for i := range e.Senses {
		for j := range e.Senses[i].Glosses {
			if strings.Contains(e.Senses[i].Glosses[j].Text, sub) {
				return true
			}
		}
	}
	return false
}

// String returns a human-readable rendering of the entry with one labeled
// block per field group.
func (e *Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entry %d\n", e.Sequence)

	if len(e.KanjiForms) > 0 {
		b.WriteString("  Kanji:\n")
		for i := range e.KanjiForms {
			fmt.Fprintf(&b, "    %s\n", e.KanjiForms[i].String())
		}
	}

	b.WriteString("  Readings:\n")
	for i := range e.Readings {
		fmt.Fprintf(&b, "    %s\n", e.Readings[i].String())
	}

	for i := range e.Senses {
		fmt.Fprintf(&b, "  Sense %d:\n", i+1)
		s := &e.Senses[i]
		if len(s.PartsOfSpeech) > 0 {
			fmt.Fprintf(&b, "    [%s]\n", strings.Join(s.PartsOfSpeech, ", "))
		}
		for j := range s.Glosses {
			fmt.Fprintf(&b, "    %s\n", s.Glosses[j].Text)
		}
	}

	return b.String()
}

// annotated formats a headword or reading text followed by its info notes
// and priority codes when present.
func annotated(text string, info, priority []string) string {
	s := text
	if len(info) > 0 {
		s += " (" + strings.Join(info, ", ") + ")"
	}
	if len(priority) > 0 {
		s += " [" + strings.Join(priority, ", ") + "]"
	}
	return s
}
