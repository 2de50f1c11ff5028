// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

// Command mmtriectl builds, queries, and inspects mmtrie index files from
// the command line.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	app := &cli.App{
		Name:  "mmtriectl",
		Usage: "build, query and inspect mmtrie index files",
		Commands: []*cli.Command{
			buildCommand,
			insertCommand,
			walkCommand,
			completeCommand,
			dumpCommand,
			verifyCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("mmtriectl: %v", err)
	}
}
