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

// Package testutil provides JMdict document fixtures for tests.
package testutil

import (
	"bytes"
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-jmdict"
)

// MakeJMdictOptions are options for writing a test JMdict file.
type MakeJMdictOptions struct {
	// Ext is the file extension for the document. Defaults to '.xml', or
	// '.xml.gz'/'.xml.dz' when GZip/DictZip is set.
	Ext string

	// GZip indicates that the document should be compressed with gzip.
	GZip bool

	// DictZip indicates that the document should be compressed with
	// dictzip.
	DictZip bool
}

func (o *MakeJMdictOptions) ext() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.GZip {
			return ".xml.gz"
		}
		if o.DictZip {
			return ".xml.dz"
		}
	}
	return ".xml"
}

// MakeJMdict serializes entries into a JMdict XML document.
func MakeJMdict(t *testing.T, entries []*jmdict.Entry) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString("<JMdict>\n")
	for _, e := range entries {
		writeEntry(t, &b, e)
	}
	b.WriteString("</JMdict>\n")
	return b.Bytes()
}

// MakeTempJMdict writes doc to a temporary file and returns its path. The
// file is removed when the test completes.
func MakeTempJMdict(t *testing.T, doc []byte, opts *MakeJMdictOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jmdict"+opts.ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts != nil && opts.GZip:
		z := gzip.NewWriter(f)
		defer z.Close()
		if _, err := z.Write(doc); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		defer z.Close()
		if _, err := z.Write(doc); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(doc); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

func writeEntry(t *testing.T, b *bytes.Buffer, e *jmdict.Entry) {
	t.Helper()

	b.WriteString("<entry>\n")
	fmt.Fprintf(b, "<ent_seq>%d</ent_seq>\n", e.Sequence)
	for i := range e.KanjiForms {
		k := &e.KanjiForms[i]
		b.WriteString("<k_ele>")
		writeElem(t, b, "keb", k.Text)
		writeElems(t, b, "ke_inf", k.Info)
		writeElems(t, b, "ke_pri", k.Priority)
		b.WriteString("</k_ele>\n")
	}
	for i := range e.Readings {
		r := &e.Readings[i]
		b.WriteString("<r_ele>")
		writeElem(t, b, "reb", r.Text)
		if r.NoKanji != nil {
			b.WriteString("<re_nokanji/>")
		}
		writeElems(t, b, "re_restr", r.Restrictions)
		writeElems(t, b, "re_inf", r.Info)
		writeElems(t, b, "re_pri", r.Priority)
		b.WriteString("</r_ele>\n")
	}
	for i := range e.Senses {
		s := &e.Senses[i]
		b.WriteString("<sense>")
		writeElems(t, b, "stagk", s.KanjiRestrictions)
		writeElems(t, b, "stagr", s.ReadingRestrictions)
		writeElems(t, b, "xref", s.CrossReferences)
		writeElems(t, b, "ant", s.Antonyms)
		writeElems(t, b, "pos", s.PartsOfSpeech)
		writeElems(t, b, "field", s.Fields)
		writeElems(t, b, "misc", s.Misc)
		writeElems(t, b, "s_inf", s.Info)
		writeElems(t, b, "dial", s.Dialects)
		for j := range s.LanguageSources {
			ls := &s.LanguageSources[j]
			b.WriteString("<lsource")
			if ls.Lang != "" {
				fmt.Fprintf(b, " xml:lang=%q", ls.Lang)
			}
			if ls.Type != "" {
				fmt.Fprintf(b, " ls_type=%q", ls.Type)
			}
			if ls.Wasei != "" {
				fmt.Fprintf(b, " ls_wasei=%q", ls.Wasei)
			}
			b.WriteString(">")
			escape(t, b, ls.Text)
			b.WriteString("</lsource>")
		}
		for j := range s.Glosses {
			g := &s.Glosses[j]
			b.WriteString("<gloss")
			if g.Lang != "" {
				fmt.Fprintf(b, " xml:lang=%q", g.Lang)
			}
			if g.Type != "" {
				fmt.Fprintf(b, " g_type=%q", g.Type)
			}
			if g.Gender != "" {
				fmt.Fprintf(b, " g_gend=%q", g.Gender)
			}
			b.WriteString(">")
			escape(t, b, g.Text)
			b.WriteString("</gloss>")
		}
		b.WriteString("</sense>\n")
	}
	b.WriteString("</entry>\n")
}

func writeElems(t *testing.T, b *bytes.Buffer, name string, values []string) {
	t.Helper()
	for _, v := range values {
		writeElem(t, b, name, v)
	}
}

func writeElem(t *testing.T, b *bytes.Buffer, name, value string) {
	t.Helper()
	fmt.Fprintf(b, "<%s>", name)
	escape(t, b, value)
	fmt.Fprintf(b, "</%s>", name)
}

func escape(t *testing.T, b *bytes.Buffer, s string) {
	t.Helper()
	if err := xml.EscapeText(b, []byte(s)); err != nil {
		t.Fatal(err)
	}
}
