// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
	"unsafe"

	vec "github.com/facebookincubator/go-vecext"

	murmur "github.com/aviddiviner/go-murmur"
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/urfave/cli/v2"
)

var inputFlag = &cli.StringFlag{
	Name:    "input",
	Aliases: []string{"in", "i"},
	Usage:   "file to read terms from (default is stdin)",
}

func openInput(c *cli.Context) (io.ReadCloser, error) {
	if c.IsSet("input") {
		return os.Open(c.String("input"))
	}
	return io.NopCloser(os.Stdin), nil
}

// loadTerms reads newline delimited terms into a vector, one term per slot
func loadTerms(reader io.Reader) (*vec.Vec[string], error) {
	terms := vec.New[string]()
	rdr := bufio.NewReader(reader)
	for {
		l, _, err := rdr.ReadLine()
		if err != nil {
			if err == io.EOF {
				return terms, nil
			}
			return nil, err
		}
		terms.Push(strings.TrimSpace(string(l)))
	}
}

func main() {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "load a list of terms into a vector and report its sizing",
				Flags: []cli.Flag{
					inputFlag,
					&cli.BoolFlag{
						Name:    "dump",
						Aliases: []string{"d"},
						Usage:   "dump the loaded vector in textual form",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}
					reader, err := openInput(c)
					if err != nil {
						return err
					}
					defer reader.Close()

					start := time.Now()
					terms, err := loadTerms(reader)
					if err != nil {
						return fmt.Errorf("error loading terms: %w", err)
					}
					log.Printf("loaded %d terms in %s", terms.Len(), time.Since(start))
					fmt.Printf("length:   %d\n", terms.Len())
					fmt.Printf("capacity: %d\n", terms.Cap())
					fmt.Printf("backing:  %s of slot headers\n",
						humanBytes(terms.Cap()*uint(unsafe.Sizeof(""))))
					if c.Bool("dump") {
						terms.DebugDump()
					}
					return nil
				},
			},
			{
				Name:  "dedup",
				Usage: "print the first occurrence of each term, preserving input order",
				Flags: []cli.Flag{
					inputFlag,
					&cli.UintFlag{
						Name:    "expected",
						Aliases: []string{"n"},
						Value:   100000,
						Usage:   "expected number of distinct terms, sizes the dedup filter",
					},
				},
				Action: func(c *cli.Context) error {
					reader, err := openInput(c)
					if err != nil {
						return err
					}
					defer reader.Close()

					// a bloom filter screens repeats approximately: a
					// false positive drops a genuinely new term, at the
					// configured rate
					seen := bloom.NewWithEstimates(c.Uint("expected"), 0.0001)
					kept := vec.New[string]()
					total := uint(0)
					rdr := bufio.NewReader(reader)
					for {
						l, _, err := rdr.ReadLine()
						if err != nil {
							if err == io.EOF {
								break
							}
							return err
						}
						s := strings.TrimSpace(string(l))
						total++
						if !seen.TestAndAddString(s) {
							kept.Push(s)
						}
					}
					log.Printf("kept %d of %d terms", kept.Len(), total)

					cur := kept.Cursor()
					for {
						term, ok := cur.Next()
						if !ok {
							break
						}
						fmt.Println(*term)
					}
					return nil
				},
			},
			{
				Name:  "fingerprint",
				Usage: "print an order-sensitive 64 bit digest of a term list",
				Flags: []cli.Flag{inputFlag},
				Action: func(c *cli.Context) error {
					reader, err := openInput(c)
					if err != nil {
						return err
					}
					defer reader.Close()

					terms, err := loadTerms(reader)
					if err != nil {
						return fmt.Errorf("error loading terms: %w", err)
					}

					// chain each term's hash through the seed so that
					// reordering changes the digest
					digest := uint64(0)
					cur := terms.Cursor()
					for {
						term, ok := cur.Next()
						if !ok {
							break
						}
						digest = murmur.MurmurHash64A([]byte(*term), digest)
					}
					fmt.Printf("%016x  (%d terms)\n", digest, terms.Len())
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}
