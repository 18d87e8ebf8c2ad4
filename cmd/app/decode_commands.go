package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/secure/cmd/app/commands"
	"github.com/allisson/secure/internal/app"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text', 'json' or 'yaml'",
	}
}

func keyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "key",
		Aliases: []string{"k"},
		Usage:   "Base64 encoded key (defaults to KPOW_SECURE_KEY)",
	}
}

func payloadFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "payload",
		Aliases: []string{"p"},
		Usage:   "Encrypted payload, raw or base64 (read from stdin when omitted)",
	}
}

func getDecodeCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "decode-text",
			Usage: "Decrypt a payload and print the plaintext",
			Flags: []cli.Flag{keyFlag(), payloadFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					decoder, err := container.DecoderUseCase()
					if err != nil {
						return err
					}

					return commands.RunDecodeText(
						ctx,
						decoder,
						container.Logger(),
						commands.DefaultIO(),
						cmd.String("key"),
						cmd.String("payload"),
					)
				})
			},
		},
		{
			Name:  "decode-properties",
			Usage: "Decrypt a payload and print it as properties",
			Flags: []cli.Flag{keyFlag(), payloadFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					decoder, err := container.DecoderUseCase()
					if err != nil {
						return err
					}

					return commands.RunDecodeProperties(
						ctx,
						decoder,
						container.Logger(),
						commands.DefaultIO(),
						cmd.String("key"),
						cmd.String("payload"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "load-properties",
			Usage: "Decrypt a payload file with a key file and print it as properties",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "key-file",
					Required: true,
					Usage:    "Path to the file holding the literal key bytes",
				},
				&cli.StringFlag{
					Name:     "payload-file",
					Required: true,
					Usage:    "Path to the encrypted payload file",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					loader, err := container.FileLoader()
					if err != nil {
						return err
					}

					return commands.RunLoadProperties(
						ctx,
						loader,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("key-file"),
						cmd.String("payload-file"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "decode-files",
			Usage:     "Decrypt many payload files as properties",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "key-file",
					Usage: "Path to the file holding the literal key bytes (defaults to KPOW_SECURE_KEY)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					decoder, err := container.DecoderUseCase()
					if err != nil {
						return err
					}

					return commands.RunDecodeFiles(
						ctx,
						decoder,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("key-file"),
						cmd.String("format"),
						container.Config().DecodeConcurrency,
						cmd.Args().Slice(),
					)
				})
			},
		},
	}
}
