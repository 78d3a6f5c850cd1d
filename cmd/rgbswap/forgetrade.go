package main

import (
	"fmt"

	"github.com/rgb-tools/rgbswap/pkg/swap"
	"github.com/urfave/cli/v2"
)

var forgetrade = cli.Command{
	Name:  "forgetrade",
	Usage: "forge a priced offer string",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "quantity of the asset being traded",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "contract",
			Usage:    "contract id of the asset being traded",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "side",
			Usage:    "'buy' or 'sell', from the offering party's perspective",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "price",
			Usage:    "unit price in base units",
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
	Action: forgeTradeAction,
}

func forgeTradeAction(ctx *cli.Context) error {
	hash, expiry, err := offerTerms(ctx)
	if err != nil {
		return err
	}

	raw := fmt.Sprintf(
		"%d/%s/%s/%d/%d/%s",
		ctx.Uint64("amount"), ctx.String("contract"), ctx.String("side"),
		ctx.Uint64("price"), expiry, hash,
	)

	offer, err := swap.ParsePricedOffer(raw)
	if err != nil {
		return err
	}

	fmt.Println(offer.String())

	return nil
}
