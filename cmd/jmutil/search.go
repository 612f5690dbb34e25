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

package main

import (
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-jmdict"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search a JMdict file",
		ArgsUsage: "FILE",
		Description: strings.Join([]string{
			"Search the entries of a JMdict file by substring.",
			"Multiple criteria are combined with OR.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kanji",
				Usage:   "match entries whose kanji headwords contain `TEXT`",
				Aliases: []string{"k"},
			},
			&cli.StringFlag{
				Name:    "reading",
				Usage:   "match entries whose readings contain `TEXT`",
				Aliases: []string{"r"},
			},
			&cli.StringFlag{
				Name:    "gloss",
				Usage:   "match entries whose glosses contain `TEXT`",
				Aliases: []string{"g"},
			},
			&cli.Int64Flag{
				Name:  "seq",
				Usage: "look up the entry with sequence number `N`",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "return at most `N` entries",
			},
			&cli.BoolFlag{
				Name:  "skip-malformed",
				Usage: "drop malformed entries instead of failing",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected a single FILE argument", ErrFlagParse)
			}

			d, err := openJMdict(c)
			if err != nil {
				return err
			}

			var results *jmdict.Collection
			if c.IsSet("seq") {
				results = d.SearchSequence(c.Int64("seq"))
			} else {
				results = d.All().Filter(jmdict.Query{
					Kanji:    c.String("kanji"),
					Reading:  c.String("reading"),
					Glossary: c.String("gloss"),
					Limit:    c.Int("limit"),
				})
			}

			tbl := table.New("Sequence", "Kanji", "Readings", "Glosses").WithWriter(c.App.Writer)
			for _, e := range results.Entries() {
				tbl.AddRow(
					e.Sequence,
					strings.Join(e.KanjiStrings(), "、"),
					strings.Join(e.ReadingStrings(), "、"),
					firstGlosses(e),
				)
			}
			tbl.Print()
			fmt.Fprintf(c.App.Writer, "%d entries\n", results.Count())
			return nil
		},
	}
}

// firstGlosses renders the glosses of the entry's first sense.
func firstGlosses(e *jmdict.Entry) string {
	glossaries := e.Glossaries()
	if len(glossaries) == 0 {
		return ""
	}
	s := strings.Join(glossaries[0], "; ")
	if len(glossaries) > 1 {
		s += " ..."
	}
	return s
}
