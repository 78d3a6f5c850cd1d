package main

import (
	"fmt"

	"github.com/rgb-tools/rgbswap/pkg/swap"
	"github.com/urfave/cli/v2"
)

var forge = cli.Command{
	Name:  "forge",
	Usage: "forge a two-sided offer string",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:     "qty-from",
			Usage:    "quantity offered",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "from-asset",
			Usage:    "asset offered: 'btc' or a contract id",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "qty-to",
			Usage:    "quantity requested",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to-asset",
			Usage:    "asset requested: 'btc' or a contract id",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "expiry",
			Usage: "offer expiry, defaults to the configured one",
		},
		&cli.StringFlag{
			Name:  "payment-hash",
			Usage: "hex payment hash correlating the offer with a payment",
		},
		&cli.StringFlag{
			Name:  "invoice",
			Usage: "BOLT11 invoice to derive payment hash and expiry from",
		},
	},
	Action: forgeAction,
}

func forgeAction(ctx *cli.Context) error {
	hash, expiry, err := offerTerms(ctx)
	if err != nil {
		return err
	}

	raw := fmt.Sprintf(
		"%d/%s/%d/%s/%d/%s",
		ctx.Uint64("qty-from"), ctx.String("from-asset"),
		ctx.Uint64("qty-to"), ctx.String("to-asset"),
		expiry, hash,
	)

	// the parser is the sole validator: forged strings go through it too
	offer, err := swap.ParseOffer(raw)
	if err != nil {
		return err
	}

	fmt.Println(offer.String())

	return nil
}
