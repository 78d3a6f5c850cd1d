package swap_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rgb-tools/rgbswap/pkg/swap"
	"github.com/stretchr/testify/require"
)

var (
	contractA = swap.ContractID{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
		0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
	}
	contractB = swap.ContractID{0xff, 0xee, 0xdd, 0xcc}

	validHash = strings.Repeat("aa", 32)
)

func twoSided(qtyFrom uint64, from string, qtyTo uint64, to string, expiry uint64, hash string) string {
	return fmt.Sprintf("%d/%s/%d/%s/%d/%s", qtyFrom, from, qtyTo, to, expiry, hash)
}

func priced(amount uint64, contract, side string, price, expiry uint64, hash string) string {
	return fmt.Sprintf("%d/%s/%s/%d/%d/%s", amount, contract, side, price, expiry, hash)
}

func TestParseOffer(t *testing.T) {
	t.Run("btc for asset", func(t *testing.T) {
		offer, err := swap.ParseOffer(
			twoSided(100, "btc", 5000, contractA.String(), 600, validHash),
		)
		require.NoError(t, err)
		require.Equal(t, swap.LayoutTwoSided, offer.Layout)
		require.Equal(t, uint64(100), offer.Swap.QtyFrom)
		require.Equal(t, uint64(5000), offer.Swap.QtyTo)
		require.True(t, offer.Swap.FromAsset.IsBTC())
		toContract, ok := offer.Swap.ToAsset.Contract()
		require.True(t, ok)
		require.Equal(t, contractA, toContract)
		require.Equal(t, uint64(600), offer.Expiry)
		require.Equal(t, validHash, offer.PaymentHash.String())

		require.True(t, offer.FromBTC())
		require.False(t, offer.ToBTC())
		require.False(t, offer.SameAsset())
		require.Equal(t, uint64(5000), offer.AssetQuantity())
		require.Equal(t, uint64(100), offer.AmountInBaseUnits())
	})

	t.Run("asset for btc", func(t *testing.T) {
		offer, err := swap.ParseOffer(
			twoSided(5000, contractA.String(), 100, "btc", 600, validHash),
		)
		require.NoError(t, err)
		require.False(t, offer.FromBTC())
		require.True(t, offer.ToBTC())
		require.Equal(t, uint64(5000), offer.AssetQuantity())
		require.Equal(t, uint64(100), offer.AmountInBaseUnits())
	})

	t.Run("asset for asset", func(t *testing.T) {
		offer, err := swap.ParseOffer(
			twoSided(10, contractA.String(), 20, contractB.String(), 600, validHash),
		)
		require.NoError(t, err)
		require.False(t, offer.FromBTC())
		require.False(t, offer.ToBTC())
		require.False(t, offer.SameAsset())
	})

	t.Run("round trip", func(t *testing.T) {
		encoded := twoSided(100, "btc", 5000, contractA.String(), 600, validHash)
		offer, err := swap.ParseOffer(encoded)
		require.NoError(t, err)

		again, err := swap.ParseOffer(offer.String())
		require.NoError(t, err)
		require.Equal(t, offer, again)
	})

	t.Run("wrong field count", func(t *testing.T) {
		fixtures := []string{
			"",
			"100",
			"100/btc/5000/" + contractA.String() + "/600",
			twoSided(100, "btc", 5000, contractA.String(), 600, validHash) + "/",
			twoSided(100, "btc", 5000, contractA.String(), 600, validHash) + "/extra",
		}
		for _, fixture := range fixtures {
			_, err := swap.ParseOffer(fixture)
			require.ErrorIs(t, err, swap.ErrWrongFieldCount, fixture)
		}
	})

	t.Run("bad numeric fields", func(t *testing.T) {
		fixtures := map[string]string{
			"qty_from": "abc/btc/5000/" + contractA.String() + "/600/" + validHash,
			"qty_to":   "100/btc/-1/" + contractA.String() + "/600/" + validHash,
			"expiry":   "100/btc/5000/" + contractA.String() + "/18446744073709551616/" + validHash,
		}

		for field, fixture := range fixtures {
			_, err := swap.ParseOffer(fixture)
			require.ErrorIs(t, err, swap.ErrUnableToParse, fixture)

			var fieldErr *swap.FieldError
			require.ErrorAs(t, err, &fieldErr)
			require.Equal(t, field, fieldErr.Field)
		}
	})

	t.Run("bad asset fields", func(t *testing.T) {
		_, err := swap.ParseOffer(twoSided(100, "BTC", 5000, contractA.String(), 600, validHash))
		require.ErrorIs(t, err, swap.ErrUnableToParse)

		_, err = swap.ParseOffer(twoSided(100, "btc", 5000, "notanasset", 600, validHash))
		require.ErrorIs(t, err, swap.ErrUnableToParse)

		var fieldErr *swap.FieldError
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "to_asset", fieldErr.Field)
	})

	t.Run("bad payment hash", func(t *testing.T) {
		fixtures := []string{
			strings.Repeat("aa", 32)[:63], // 63 hex chars
			strings.Repeat("aa", 32) + "a",
			strings.Repeat("aa", 32) + "aa",
			strings.Repeat("zz", 32),
			"",
		}
		for _, hash := range fixtures {
			_, err := swap.ParseOffer(twoSided(100, "btc", 5000, contractA.String(), 600, hash))
			require.ErrorIs(t, err, swap.ErrUnableToParse, hash)

			var fieldErr *swap.FieldError
			require.ErrorAs(t, err, &fieldErr)
			require.Equal(t, "payment_hash", fieldErr.Field)
		}
	})

	t.Run("zero amounts", func(t *testing.T) {
		fixtures := []string{
			twoSided(0, "btc", 5000, contractA.String(), 600, validHash),
			twoSided(100, "btc", 0, contractA.String(), 600, validHash),
			twoSided(100, "btc", 5000, contractA.String(), 0, validHash),
			// zero quantity is reported before identical assets
			twoSided(0, "btc", 5000, "btc", 600, validHash),
			twoSided(100, "btc", 0, "btc", 600, validHash),
		}
		for _, fixture := range fixtures {
			_, err := swap.ParseOffer(fixture)
			require.ErrorIs(t, err, swap.ErrZeroAmount, fixture)
		}
	})

	t.Run("same asset", func(t *testing.T) {
		_, err := swap.ParseOffer(twoSided(100, "btc", 5000, "btc", 600, validHash))
		require.ErrorIs(t, err, swap.ErrSameAsset)

		_, err = swap.ParseOffer(
			twoSided(100, contractA.String(), 5000, contractA.String(), 600, validHash),
		)
		require.ErrorIs(t, err, swap.ErrSameAsset)
	})

	t.Run("syntactic errors shadow domain errors", func(t *testing.T) {
		_, err := swap.ParseOffer("0/btc/abc/btc/600/" + validHash)
		require.ErrorIs(t, err, swap.ErrUnableToParse)
	})
}

func TestParsePricedOffer(t *testing.T) {
	t.Run("buy", func(t *testing.T) {
		offer, err := swap.ParsePricedOffer(
			priced(100, contractA.String(), "buy", 5, 600, validHash),
		)
		require.NoError(t, err)
		require.Equal(t, swap.LayoutPriced, offer.Layout)
		require.Equal(t, contractA, offer.Contract)
		require.Equal(t, uint64(5), offer.Price)
		require.Equal(t, swap.Buy, offer.Direction.Side)
		require.Equal(t, uint64(100), offer.AssetQuantity())
		require.Equal(t, uint64(500), offer.AmountInBaseUnits())
		require.Equal(t, uint64(600), offer.Expiry)

		// buying the asset means paying btc
		require.True(t, offer.FromBTC())
		require.False(t, offer.ToBTC())
		require.False(t, offer.SameAsset())
	})

	t.Run("sell", func(t *testing.T) {
		offer, err := swap.ParsePricedOffer(
			priced(100, contractA.String(), "sell", 5, 600, validHash),
		)
		require.NoError(t, err)
		require.Equal(t, swap.Sell, offer.Direction.Side)
		require.False(t, offer.FromBTC())
		require.True(t, offer.ToBTC())
	})

	t.Run("round trip", func(t *testing.T) {
		offer, err := swap.ParsePricedOffer(
			priced(100, contractA.String(), "sell", 5, 600, validHash),
		)
		require.NoError(t, err)

		again, err := swap.ParsePricedOffer(offer.String())
		require.NoError(t, err)
		require.Equal(t, offer, again)
	})

	t.Run("invalid side token", func(t *testing.T) {
		for _, side := range []string{"BUY", "Sell", " buy", "hold", ""} {
			_, err := swap.ParsePricedOffer(
				priced(100, contractA.String(), side, 5, 600, validHash),
			)
			require.ErrorIs(t, err, swap.ErrInvalidSwapType, side)
		}
	})

	t.Run("side is checked after the other fields", func(t *testing.T) {
		// bad hash and bad side: the hash error wins
		_, err := swap.ParsePricedOffer(
			priced(100, contractA.String(), "hold", 5, 600, validHash[:63]),
		)
		require.ErrorIs(t, err, swap.ErrUnableToParse)

		// bad side and zero price: the side error wins
		_, err = swap.ParsePricedOffer(
			priced(100, contractA.String(), "hold", 0, 600, validHash),
		)
		require.ErrorIs(t, err, swap.ErrInvalidSwapType)
	})

	t.Run("btc is not a valid contract", func(t *testing.T) {
		_, err := swap.ParsePricedOffer(priced(100, "btc", "buy", 5, 600, validHash))
		require.ErrorIs(t, err, swap.ErrUnableToParse)

		var fieldErr *swap.FieldError
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "contract_id", fieldErr.Field)
	})

	t.Run("zero amounts", func(t *testing.T) {
		fixtures := []string{
			priced(0, contractA.String(), "buy", 5, 600, validHash),
			priced(100, contractA.String(), "buy", 0, 600, validHash),
			priced(100, contractA.String(), "buy", 5, 0, validHash),
		}
		for _, fixture := range fixtures {
			_, err := swap.ParsePricedOffer(fixture)
			require.ErrorIs(t, err, swap.ErrZeroAmount, fixture)
		}
	})

	t.Run("base amount overflow", func(t *testing.T) {
		_, err := swap.ParsePricedOffer(
			priced(1<<32, contractA.String(), "buy", 1<<32, 600, validHash),
		)
		require.ErrorIs(t, err, swap.ErrAmountOverflow)
	})
}

func TestDirection(t *testing.T) {
	t.Run("opposite", func(t *testing.T) {
		d := swap.Direction{Side: swap.Buy, AssetAmount: 100, BaseAmount: 500}
		opp := d.Opposite()
		require.Equal(t, swap.Sell, opp.Side)
		require.Equal(t, d.AssetAmount, opp.AssetAmount)
		require.Equal(t, d.BaseAmount, opp.BaseAmount)
	})

	t.Run("opposite is an involution", func(t *testing.T) {
		for _, d := range []swap.Direction{
			{Side: swap.Buy, AssetAmount: 1, BaseAmount: 2},
			{Side: swap.Sell, AssetAmount: 3, BaseAmount: 4},
		} {
			require.Equal(t, d, d.Opposite().Opposite())
		}
	})

	t.Run("side tokens", func(t *testing.T) {
		require.Equal(t, "buy", swap.Buy.String())
		require.Equal(t, "sell", swap.Sell.String())

		side, err := swap.ParseSide("buy")
		require.NoError(t, err)
		require.Equal(t, swap.Buy, side)

		_, err = swap.ParseSide("BUY")
		require.Error(t, err)
	})
}

func TestFieldError(t *testing.T) {
	_, err := swap.ParseOffer("x/btc/5000/" + contractA.String() + "/600/" + validHash)
	require.Error(t, err)
	require.True(t, errors.Is(err, swap.ErrUnableToParse))
	require.Contains(t, err.Error(), "unable to parse qty_from")
}
