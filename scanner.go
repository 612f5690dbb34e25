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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ianlewis/go-jmdict/internal/folding"
)

var (
	// ErrBadDocument indicates that the source document is not well-formed
	// XML. No entries are usable when it is returned.
	ErrBadDocument = errors.New("bad document")

	// ErrMalformedEntry indicates that an individual <entry> element is
	// missing its sequence number or has no readings.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrMalformedEntryMode indicates that the MalformedEntries option is
	// an invalid value.
	ErrMalformedEntryMode = errors.New("invalid malformed entry mode")
)

// MalformedEntryMode determines how a Scanner treats an <entry> element
// that is missing required fields.
type MalformedEntryMode int

const (
	// FailMalformed stops the scan with an error wrapping
	// ErrMalformedEntry.
	FailMalformed MalformedEntryMode = iota

	// SkipMalformed drops the entry and continues. Skipped entries are
	// counted and reported by Scanner.Skipped.
	SkipMalformed
)

// ScannerOptions are options for scanning a JMdict document.
type ScannerOptions struct {
	// MalformedEntries determines how entries missing required fields are
	// handled. The chosen mode applies consistently for the whole scan.
	MalformedEntries MalformedEntryMode
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	MalformedEntries: FailMalformed,
}

// xmlEntry mirrors the <entry> element for decoding. The sequence number
// is decoded as text so that a non-numeric value is reported as a
// malformed entry rather than a document error.
type xmlEntry struct {
	Seq        []string    `xml:"ent_seq"`
	KanjiForms []KanjiForm `xml:"k_ele"`
	Readings   []Reading   `xml:"r_ele"`
	Senses     []Sense     `xml:"sense"`
}

// Scanner scans the <entry> elements of a JMdict document from start to
// end in document order.
type Scanner struct {
	r    io.ReadCloser
	d    *xml.Decoder
	mode MalformedEntryMode

	entry   *Entry
	skipped int
	err     error
}

// NewScanner returns a new scanner that reads entries from r. The Scanner
// assumes ownership of the reader and should be closed with the Close
// method.
//
// The decoder runs in non-strict mode so that the named character
// entities declared by the JMdict DTD pass through as literal text. They
// are not expanded.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}

	if options.MalformedEntries != FailMalformed && options.MalformedEntries != SkipMalformed {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEntryMode, options.MalformedEntries)
	}

	d := xml.NewDecoder(r)
	d.Strict = false

	return &Scanner{
		r:    r,
		d:    d,
		mode: options.MalformedEntries,
	}, nil
}

// Scan advances the scanner to the next entry. It returns false if the
// scan stops either by reaching the end of the document or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for {
		tok, err := s.d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false
			}
			s.err = fmt.Errorf("%w: %v", ErrBadDocument, err)
			return false
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "entry" {
			continue
		}

		var xe xmlEntry
		if err := s.d.DecodeElement(&xe, &se); err != nil {
			s.err = fmt.Errorf("%w: %v", ErrBadDocument, err)
			return false
		}

		e, err := newEntry(&xe)
		if err != nil {
			if s.mode == SkipMalformed {
				s.skipped++
				continue
			}
			s.err = err
			return false
		}

		s.entry = e
		return true
	}
}

// Entry returns the current entry.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Skipped returns the number of malformed entries dropped so far. It is
// always zero in FailMalformed mode.
func (s *Scanner) Skipped() int {
	return s.skipped
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing document: %w", err)
	}
	return nil
}

// newEntry validates a decoded entry element and converts it into an
// Entry with its character data whitespace-folded.
func newEntry(xe *xmlEntry) (*Entry, error) {
	if len(xe.Seq) == 0 {
		return nil, fmt.Errorf("%w: missing ent_seq", ErrMalformedEntry)
	}
	rawSeq, err := folding.Fold(xe.Seq[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	seq, err := strconv.ParseInt(rawSeq, 10, 64)
	if err != nil || seq <= 0 {
		return nil, fmt.Errorf("%w: bad ent_seq %q", ErrMalformedEntry, xe.Seq[0])
	}

	if len(xe.Readings) == 0 {
		return nil, fmt.Errorf("%w: entry %d has no readings", ErrMalformedEntry, seq)
	}

	e := &Entry{
		Sequence:   seq,
		KanjiForms: xe.KanjiForms,
		Readings:   xe.Readings,
		Senses:     xe.Senses,
	}
	if err := foldEntry(e); err != nil {
		return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedEntry, seq, err)
	}
	return e, nil
}

// foldEntry whitespace-folds all character data extracted into e. Entity
// references remain literal; folding only normalizes whitespace.
func foldEntry(e *Entry) error {
	for i := range e.KanjiForms {
		k := &e.KanjiForms[i]
		if err := foldStrings(&k.Text, k.Info, k.Priority); err != nil {
			return err
		}
	}
	for i := range e.Readings {
		r := &e.Readings[i]
		if err := foldStrings(&r.Text, r.Restrictions, r.Info, r.Priority); err != nil {
			return err
		}
	}
	for i := range e.Senses {
		s := &e.Senses[i]
		err := foldStrings(nil,
			s.KanjiRestrictions, s.ReadingRestrictions, s.CrossReferences,
			s.Antonyms, s.PartsOfSpeech, s.Fields, s.Misc, s.Info, s.Dialects)
		if err != nil {
			return err
		}
		for j := range s.LanguageSources {
			if err := foldStrings(&s.LanguageSources[j].Text); err != nil {
				return err
			}
		}
		for j := range s.Glosses {
			if err := foldStrings(&s.Glosses[j].Text); err != nil {
				return err
			}
		}
	}
	return nil
}

// foldStrings whitespace-folds text (when non-nil) and each string in the
// given lists in place.
func foldStrings(text *string, lists ...[]string) error {
	if text != nil {
		folded, err := folding.Fold(*text)
		if err != nil {
			return err
		}
		*text = folded
	}
	for _, list := range lists {
		for i := range list {
			folded, err := folding.Fold(list[i])
			if err != nil {
				return err
			}
			list[i] = folded
		}
	}
	return nil
}
