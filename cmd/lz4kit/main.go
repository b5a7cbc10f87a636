// Command lz4kit is a thin CLI front end over the lz4kit decoder library.
// It exists to exercise the library end-to-end; the decoder packages
// themselves never log or touch the filesystem.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/lz4kit/lz4kit"
	"github.com/lz4kit/lz4kit/frame"
)

var log = logrus.New()

func main() {
	app := cli.NewApp()
	app.Name = "lz4kit"
	app.Usage = "decode LZ4 blocks and frames"
	app.Version = lz4kit.Version
	app.Commands = []cli.Command{
		decompressCommand,
		frameInfoCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithField("error", err).Error("lz4kit failed")
		os.Exit(1)
	}
}

var decompressCommand = cli.Command{
	Name:      "decompress",
	Usage:     "decompress an LZ4 frame or raw block",
	ArgsUsage: "<input-file>",
	Flags: []cli.Flag{
		cli.BoolFlag{Name: "block", Usage: "treat input as a raw LZ4 block instead of a frame"},
		cli.StringFlag{Name: "output, o", Usage: "output file (defaults to stdout)"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.NewExitError("expected exactly one input file", 2)
		}

		input, err := os.ReadFile(c.Args().Get(0))
		if err != nil {
			return errors.Wrap(err, "reading input file")
		}

		var result []byte
		if c.Bool("block") {
			result, err = lz4kit.DecompressBlock(input, nil)
		} else {
			result, err = lz4kit.DecompressFrameSized(input)
		}
		if err != nil {
			return errors.Wrap(err, "decompressing")
		}

		log.WithField("bytes", len(result)).Info("decompressed")

		out := os.Stdout
		if path := c.String("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return errors.Wrap(err, "creating output file")
			}
			defer f.Close()
			out = f
		}

		_, err = out.Write(result)
		return errors.Wrap(err, "writing output")
	},
}

var frameInfoCommand = cli.Command{
	Name:      "frame-info",
	Usage:     "print an LZ4 frame's header without decoding its body",
	ArgsUsage: "<input-file>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.NewExitError("expected exactly one input file", 2)
		}

		input, err := os.ReadFile(c.Args().Get(0))
		if err != nil {
			return errors.Wrap(err, "reading input file")
		}

		header, err := frame.PeekHeader(input)
		if err != nil {
			return errors.Wrap(err, "parsing frame header")
		}

		fmt.Printf("max block size:     %d bytes\n", header.MaxBlockSize)
		fmt.Printf("independent blocks: %v\n", header.Flags.Has(frame.FlagIndependentBlocks))
		fmt.Printf("block checksums:    %v\n", header.Flags.Has(frame.FlagBlockChecksums))
		fmt.Printf("content checksum:   %v\n", header.Flags.Has(frame.FlagContentChecksum))
		if header.ContentSize != nil {
			fmt.Printf("content size:       %d bytes\n", *header.ContentSize)
		} else {
			fmt.Println("content size:       not declared")
		}
		return nil
	},
}
