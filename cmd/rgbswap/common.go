package main

import (
	"encoding/json"
	"fmt"

	"github.com/lightningnetwork/lnd/lntypes"
	"github.com/rgb-tools/rgbswap/pkg/swap"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func printRespJSON(resp interface{}) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("unable to render response")
	}
	fmt.Println(string(out))
}

// offerTerms resolves the payment hash and expiry of the offer being forged,
// either from an invoice or from the dedicated flags. The expiry falls back
// to the configured default when neither source provides one.
func offerTerms(ctx *cli.Context) (lntypes.Hash, uint64, error) {
	if invoice := ctx.String("invoice"); invoice != "" {
		terms, err := swap.TermsFromInvoice(invoice)
		if err != nil {
			return lntypes.Hash{}, 0, fmt.Errorf("invalid invoice: %s", err)
		}
		expiry := terms.Expiry
		if expiry == 0 {
			expiry = cfg.DefaultExpiry
		}
		return terms.PaymentHash, expiry, nil
	}

	hash, err := lntypes.MakeHashFromStr(ctx.String("payment-hash"))
	if err != nil {
		return lntypes.Hash{}, 0, fmt.Errorf("invalid payment hash: %s", err)
	}
	expiry := ctx.Uint64("expiry")
	if expiry == 0 {
		expiry = cfg.DefaultExpiry
	}
	return hash, expiry, nil
}
