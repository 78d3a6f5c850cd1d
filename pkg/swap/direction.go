package swap

import "fmt"

// Side is the perspective of the offering party in a priced offer.
type Side int

const (
	// Buy means the offering party acquires the asset, paying bitcoin.
	Buy Side = iota
	// Sell means the offering party gives up the asset, receiving bitcoin.
	Sell
)

// ParseSide decodes a side token. Tokens are case-sensitive and not trimmed.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, ErrInvalidSwapType
	}
}

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return fmt.Sprintf("unknown side (%d)", int(s))
	}
}

// Direction carries the side of a priced offer together with both amounts:
// the asset quantity and its bitcoin value in base units.
type Direction struct {
	Side        Side
	AssetAmount uint64
	BaseAmount  uint64
}

// Opposite returns the same amounts seen from the counterparty's vantage
// point, with buy and sell swapped.
func (d Direction) Opposite() Direction {
	opp := d
	if d.Side == Buy {
		opp.Side = Sell
	} else {
		opp.Side = Buy
	}
	return opp
}
