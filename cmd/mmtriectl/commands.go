// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/halen/mmtrie"
	"github.com/urfave/cli/v2"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "create a new, empty index file",
	ArgsUsage: "PATH",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "capacity", Value: 1024, Usage: "number of blocks to reserve"},
	},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("mmtriectl build: PATH required", 1)
		}
		t, err := mmtrie.Create(path, c.Int("capacity"))
		if err != nil {
			return err
		}
		defer t.Close()
		log.Printf("created %s: capacity=%d blocks=%d", path, t.Cap(), t.Len())
		return nil
	},
}

var insertCommand = &cli.Command{
	Name:      "insert",
	Usage:     "insert one string, or one string per line of stdin if no arguments are given",
	ArgsUsage: "PATH [STRING]",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("mmtriectl insert: PATH required", 1)
		}
		t, err := mmtrie.Open(path)
		if err != nil {
			return err
		}
		defer t.Close()

		if s := c.Args().Get(1); s != "" {
			return t.Insert(s)
		}

		scanner := bufio.NewScanner(os.Stdin)
		n := 0
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				if err := t.Insert(line); err != nil {
					return err
				}
				n++
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		log.Printf("inserted %d keys, blocks now %d/%d", n, t.Len(), t.Cap())
		return nil
	},
}

var walkCommand = &cli.Command{
	Name:      "walk",
	Usage:     "perform an exact prefix walk and print the result",
	ArgsUsage: "PATH PREFIX",
	Action: func(c *cli.Context) error {
		path, prefix := c.Args().First(), c.Args().Get(1)
		if path == "" || prefix == "" {
			return cli.Exit("mmtriectl walk: PATH and PREFIX required", 1)
		}
		t, err := mmtrie.Open(path)
		if err != nil {
			return err
		}
		defer t.Close()

		res := t.Walk(prefix)
		fmt.Printf("success=%v consumed=%d extension=%q cost=%d reached_leaf=%v\n",
			res.Success, res.Consumed, res.Extension, res.Cost, res.ReachedLeaf)
		return nil
	},
}

var completeCommand = &cli.Command{
	Name:      "complete",
	Usage:     "print the best completion for a prefix",
	ArgsUsage: "PATH PREFIX",
	Action: func(c *cli.Context) error {
		path, prefix := c.Args().First(), c.Args().Get(1)
		if path == "" {
			return cli.Exit("mmtriectl complete: PATH required", 1)
		}
		t, err := mmtrie.Open(path)
		if err != nil {
			return err
		}
		defer t.Close()

		fmt.Println(t.BestCompletion(prefix))
		return nil
	},
}

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "print every stored key and its current cost as a tree",
	ArgsUsage: "PATH",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("mmtriectl dump: PATH required", 1)
		}
		t, err := mmtrie.Open(path)
		if err != nil {
			return err
		}
		defer t.Close()

		return t.Fprint(os.Stdout)
	},
}

var verifyCommand = &cli.Command{
	Name:      "verify",
	Usage:     "check structural invariants and report the first violation",
	ArgsUsage: "PATH",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("mmtriectl verify: PATH required", 1)
		}
		t, err := mmtrie.Open(path)
		if err != nil {
			return err
		}
		defer t.Close()

		if err := t.Verify(); err != nil {
			return cli.Exit(fmt.Sprintf("invariant violation: %v", err), 1)
		}
		log.Printf("%s: OK (%d blocks)", path, t.Len())
		return nil
	},
}
