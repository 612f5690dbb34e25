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
	"os"

	"github.com/urfave/cli/v2"
)

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Print every entry in a JMdict file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
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

			if skipped := d.Skipped(); skipped > 0 {
				fmt.Fprintf(os.Stderr, "skipped %d malformed entries\n", skipped)
			}

			if _, err := d.All().WriteTo(c.App.Writer); err != nil {
				return fmt.Errorf("%w: %v", ErrJmutil, err)
			}
			return nil
		},
	}
}
