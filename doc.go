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

// Package jmdict implements a library for reading the JMdict
// Japanese-English dictionary file in pure Go.
//
// JMdict is distributed as a single large XML document. Each dictionary
// entry is an <entry> element containing:
//  1. An <ent_seq> element holding the entry's unique sequence number.
//  2. Zero or more <k_ele> (kanji) elements holding a headword written in
//     kanji along with orthography information and priority codes.
//  3. One or more <r_ele> (reading) elements holding the phonetic
//     transcription of the headword in kana.
//  4. One or more <sense> elements grouping translational equivalents
//     (<gloss>) together with grammar, usage, and source-language
//     information.
//
// The whole file is read into memory in a single blocking pass. Lookups
// are linear substring scans over the loaded entries; applications that
// need fast repeated lookups should build their own index on top of the
// entry list.
//
// The JMdict DTD declares named character entities (for example &hira;)
// that are used in part-of-speech and miscellaneous fields. These entity
// references are not expanded and appear in extracted text verbatim.
//
// More info on the dictionary format can be found at this URL:
// https://www.edrdg.org/jmdict/jmdict_dtd_h.html
package jmdict
