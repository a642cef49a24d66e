// Command wmldump decodes WordprocessingML parts and prints the typed
// model as JSON, or the plain text of a document.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/benjaminschreck/go-wordml/pkg/wml"
)

func main() {
	cmd := &cli.Command{
		Name:  "wmldump",
		Usage: "decode WordprocessingML parts into typed models",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log skipped and unrecognized elements",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				wml.GetLogger().SetLevel(wml.LogDebug)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "document",
				Usage:     "dump a document.xml model as JSON",
				ArgsUsage: "FILE...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return eachFile(ctx, cmd, func(path string) (any, error) {
						f, err := os.Open(path)
						if err != nil {
							return nil, err
						}
						defer f.Close()
						return wml.DecodeDocument(f)
					})
				},
			},
			{
				Name:      "settings",
				Usage:     "dump a settings.xml model as JSON",
				ArgsUsage: "FILE...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return eachFile(ctx, cmd, func(path string) (any, error) {
						f, err := os.Open(path)
						if err != nil {
							return nil, err
						}
						defer f.Close()
						return wml.DecodeSettings(f)
					})
				},
			},
			{
				Name:      "footnotes",
				Usage:     "dump a footnotes.xml or endnotes.xml model as JSON",
				ArgsUsage: "FILE...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return eachFile(ctx, cmd, func(path string) (any, error) {
						f, err := os.Open(path)
						if err != nil {
							return nil, err
						}
						defer f.Close()
						return wml.DecodeFootnotes(f)
					})
				},
			},
			{
				Name:      "text",
				Usage:     "print the plain text of a document.xml",
				ArgsUsage: "FILE...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("no input files")
					}
					for _, path := range cmd.Args().Slice() {
						f, err := os.Open(path)
						if err != nil {
							return err
						}
						doc, err := wml.DecodeDocument(f)
						f.Close()
						if err != nil {
							return fmt.Errorf("%s: %w", path, err)
						}
						if doc.Body != nil {
							fmt.Print(doc.Body.Text())
						}
					}
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wmldump: %v\n", err)
		os.Exit(1)
	}
}

// eachFile decodes every argument concurrently, then prints results in
// argument order.
func eachFile(ctx context.Context, cmd *cli.Command, decode func(path string) (any, error)) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("no input files")
	}

	models := make([]any, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			model, err := decode(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			models[i] = model
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, model := range models {
		if err := enc.Encode(model); err != nil {
			return err
		}
	}
	return nil
}
