package swap

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/lightningnetwork/lnd/lntypes"
)

// offerFieldCount is the number of /-separated fields in both layouts.
const offerFieldCount = 6

func splitOffer(s string) ([]string, error) {
	parts := strings.Split(s, "/")
	if len(parts) != offerFieldCount {
		return nil, ErrWrongFieldCount
	}
	return parts, nil
}

func parseAmount(field, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fieldErr(field, err)
	}
	return n, nil
}

// ParseOffer decodes a two-sided offer string:
//
//	<qty_from>/<from_asset>/<qty_to>/<to_asset>/<expiry>/<payment_hash>
//
// where an asset is either the literal "btc" or a contract id. It returns an
// offer only if every field decodes and all cross-field invariants hold.
func ParseOffer(s string) (*Offer, error) {
	parts, err := splitOffer(s)
	if err != nil {
		return nil, err
	}

	qtyFrom, err := parseAmount("qty_from", parts[0])
	if err != nil {
		return nil, err
	}
	fromAsset, err := ParseAssetRef(parts[1])
	if err != nil {
		return nil, fieldErr("from_asset", err)
	}
	qtyTo, err := parseAmount("qty_to", parts[2])
	if err != nil {
		return nil, err
	}
	toAsset, err := ParseAssetRef(parts[3])
	if err != nil {
		return nil, fieldErr("to_asset", err)
	}
	expiry, err := parseAmount("expiry", parts[4])
	if err != nil {
		return nil, err
	}
	paymentHash, err := lntypes.MakeHashFromStr(parts[5])
	if err != nil {
		return nil, fieldErr("payment_hash", err)
	}

	if qtyFrom == 0 || qtyTo == 0 || expiry == 0 {
		return nil, ErrZeroAmount
	}

	legs := Swap{
		QtyFrom:   qtyFrom,
		QtyTo:     qtyTo,
		FromAsset: fromAsset,
		ToAsset:   toAsset,
	}
	if legs.SameAsset() {
		return nil, ErrSameAsset
	}

	return &Offer{
		Layout:      LayoutTwoSided,
		Swap:        legs,
		Expiry:      expiry,
		PaymentHash: paymentHash,
	}, nil
}

// ParsePricedOffer decodes a priced offer string:
//
//	<amount>/<contract_id>/<buy|sell>/<price>/<expiry>/<payment_hash>
//
// The contract field must be a contract id, never "btc": a priced offer
// always exchanges a ledger asset against bitcoin. The bitcoin value of the
// offer is amount * price, computed here once.
func ParsePricedOffer(s string) (*Offer, error) {
	parts, err := splitOffer(s)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", parts[0])
	if err != nil {
		return nil, err
	}
	contract, err := ContractIDFromString(parts[1])
	if err != nil {
		return nil, fieldErr("contract_id", err)
	}
	price, err := parseAmount("price", parts[3])
	if err != nil {
		return nil, err
	}
	expiry, err := parseAmount("expiry", parts[4])
	if err != nil {
		return nil, err
	}
	paymentHash, err := lntypes.MakeHashFromStr(parts[5])
	if err != nil {
		return nil, fieldErr("payment_hash", err)
	}

	// The side token is validated only once every other field decoded.
	side, err := ParseSide(parts[2])
	if err != nil {
		return nil, err
	}

	if amount == 0 || price == 0 || expiry == 0 {
		return nil, ErrZeroAmount
	}

	hi, baseAmount := bits.Mul64(amount, price)
	if hi != 0 {
		return nil, ErrAmountOverflow
	}

	return &Offer{
		Layout:   LayoutPriced,
		Contract: contract,
		Price:    price,
		Direction: Direction{
			Side:        side,
			AssetAmount: amount,
			BaseAmount:  baseAmount,
		},
		Expiry:      expiry,
		PaymentHash: paymentHash,
	}, nil
}
