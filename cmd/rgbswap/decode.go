package main

import (
	"fmt"

	"github.com/rgb-tools/rgbswap/pkg/swap"
	"github.com/urfave/cli/v2"
)

var decode = cli.Command{
	Name:      "decode",
	Usage:     "decode and validate an offer string",
	ArgsUsage: "<offer>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "priced",
			Usage: "decode the priced layout instead of the two-sided one",
		},
		&cli.BoolFlag{
			Name:  "counterparty",
			Usage: "report the direction of a priced offer from the counterparty's perspective",
		},
	},
	Action: decodeAction,
}

type directionView struct {
	Side              string `json:"side"`
	AssetAmount       uint64 `json:"asset_amount"`
	AmountInBaseUnits uint64 `json:"amount_in_base_units"`
}

type offerView struct {
	Layout      string         `json:"layout"`
	QtyFrom     uint64         `json:"qty_from,omitempty"`
	FromAsset   string         `json:"from_asset,omitempty"`
	QtyTo       uint64         `json:"qty_to,omitempty"`
	ToAsset     string         `json:"to_asset,omitempty"`
	ContractID  string         `json:"contract_id,omitempty"`
	Price       uint64         `json:"price,omitempty"`
	Direction   *directionView `json:"direction,omitempty"`
	Expiry      uint64         `json:"expiry"`
	PaymentHash string         `json:"payment_hash"`
}

func decodeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expects exactly one offer string")
	}
	raw := ctx.Args().First()

	// untrusted input is bounded before it reaches the parser
	if len(raw) > cfg.MaxOfferLength {
		return fmt.Errorf("offer string longer than %d characters", cfg.MaxOfferLength)
	}

	var offer *swap.Offer
	var err error
	if ctx.Bool("priced") {
		offer, err = swap.ParsePricedOffer(raw)
	} else {
		offer, err = swap.ParseOffer(raw)
	}
	if err != nil {
		return err
	}

	printRespJSON(newOfferView(offer, ctx.Bool("counterparty")))

	return nil
}

func newOfferView(offer *swap.Offer, counterparty bool) *offerView {
	view := &offerView{
		Expiry:      offer.Expiry,
		PaymentHash: offer.PaymentHash.String(),
	}

	if offer.Layout == swap.LayoutPriced {
		direction := offer.Direction
		if counterparty {
			direction = offer.Opposite()
		}
		view.Layout = "priced"
		view.ContractID = offer.Contract.String()
		view.Price = offer.Price
		view.Direction = &directionView{
			Side:              direction.Side.String(),
			AssetAmount:       direction.AssetAmount,
			AmountInBaseUnits: direction.BaseAmount,
		}
		return view
	}

	view.Layout = "two-sided"
	view.QtyFrom = offer.Swap.QtyFrom
	view.FromAsset = offer.Swap.FromAsset.String()
	view.QtyTo = offer.Swap.QtyTo
	view.ToAsset = offer.Swap.ToAsset.String()
	return view
}
