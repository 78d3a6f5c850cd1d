package swap

import (
	"fmt"

	"github.com/lightningnetwork/lnd/lntypes"
)

// Layout tags the two historical representations of an offer string.
type Layout int

const (
	// LayoutTwoSided is the generic form with an explicit quantity and
	// asset for each side.
	LayoutTwoSided Layout = iota
	// LayoutPriced is the form quoting a single ledger asset at a unit
	// price in bitcoin base units.
	LayoutPriced
)

// Swap holds the two legs of a two-sided offer.
type Swap struct {
	QtyFrom   uint64
	QtyTo     uint64
	FromAsset AssetRef
	ToAsset   AssetRef
}

// SameAsset returns whether both legs reference the same asset. The parser
// rejects such a swap; the query exists for values built by hand.
func (s Swap) SameAsset() bool {
	return s.FromAsset.Equal(s.ToAsset)
}

// FromBTC returns whether the offering party pays native bitcoin.
func (s Swap) FromBTC() bool {
	return s.FromAsset.IsBTC()
}

// ToBTC returns whether the offering party receives native bitcoin.
func (s Swap) ToBTC() bool {
	return s.ToAsset.IsBTC()
}

// Offer is a validated, immutable swap offer. The Layout tag selects which
// fields are meaningful: Swap for LayoutTwoSided, Contract, Price and
// Direction for LayoutPriced. Expiry and PaymentHash are always set.
//
// The parser is the sole producer of Offer values that downstream code may
// trust; every query below assumes the parse-time invariants hold.
type Offer struct {
	Layout      Layout
	Swap        Swap
	Contract    ContractID
	Price       uint64
	Direction   Direction
	Expiry      uint64
	PaymentHash lntypes.Hash
}

// SameAsset returns whether both sides reference the same asset. A priced
// offer always exchanges a ledger asset against bitcoin, so it is never
// same-asset.
func (o *Offer) SameAsset() bool {
	if o.Layout == LayoutPriced {
		return false
	}
	return o.Swap.SameAsset()
}

// FromBTC returns whether the offering party pays native bitcoin. For a
// priced offer that is the buy side.
func (o *Offer) FromBTC() bool {
	if o.Layout == LayoutPriced {
		return o.Direction.Side == Buy
	}
	return o.Swap.FromBTC()
}

// ToBTC returns whether the offering party receives native bitcoin. For a
// priced offer that is the sell side.
func (o *Offer) ToBTC() bool {
	if o.Layout == LayoutPriced {
		return o.Direction.Side == Sell
	}
	return o.Swap.ToBTC()
}

// AssetQuantity returns the quantity of the ledger asset being exchanged.
func (o *Offer) AssetQuantity() uint64 {
	if o.Layout == LayoutPriced {
		return o.Direction.AssetAmount
	}
	if o.Swap.FromBTC() {
		return o.Swap.QtyTo
	}
	return o.Swap.QtyFrom
}

// AmountInBaseUnits returns the bitcoin side of the exchange in base units.
func (o *Offer) AmountInBaseUnits() uint64 {
	if o.Layout == LayoutPriced {
		return o.Direction.BaseAmount
	}
	if o.Swap.FromBTC() {
		return o.Swap.QtyFrom
	}
	return o.Swap.QtyTo
}

// Opposite returns the direction of a priced offer as seen by the
// counterparty.
func (o *Offer) Opposite() Direction {
	return o.Direction.Opposite()
}

// String re-derives the encoded form of the offer for its layout.
func (o *Offer) String() string {
	if o.Layout == LayoutPriced {
		return fmt.Sprintf(
			"%d/%s/%s/%d/%d/%s",
			o.Direction.AssetAmount, o.Contract, o.Direction.Side,
			o.Price, o.Expiry, o.PaymentHash,
		)
	}
	return fmt.Sprintf(
		"%d/%s/%d/%s/%d/%s",
		o.Swap.QtyFrom, o.Swap.FromAsset, o.Swap.QtyTo, o.Swap.ToAsset,
		o.Expiry, o.PaymentHash,
	)
}
