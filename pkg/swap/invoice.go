package swap

import (
	"github.com/ccoveille/go-safecast"
	"github.com/lightningnetwork/lnd/lntypes"
	decodepay "github.com/nbd-wtf/ln-decodepay"
)

// InvoiceTerms are the offer-relevant fields of a BOLT11 invoice.
type InvoiceTerms struct {
	AmountSat   uint64
	Expiry      uint64
	PaymentHash lntypes.Hash
}

// TermsFromInvoice decodes a BOLT11 invoice and extracts the fields needed
// to forge an offer correlated with that payment.
func TermsFromInvoice(invoice string) (*InvoiceTerms, error) {
	bolt11, err := decodepay.Decodepay(invoice)
	if err != nil {
		return nil, err
	}

	hash, err := lntypes.MakeHashFromStr(bolt11.PaymentHash)
	if err != nil {
		return nil, err
	}
	amount, err := safecast.ToUint64(bolt11.MSatoshi / 1000)
	if err != nil {
		return nil, err
	}
	expiry, err := safecast.ToUint64(bolt11.Expiry)
	if err != nil {
		return nil, err
	}

	return &InvoiceTerms{
		AmountSat:   amount,
		Expiry:      expiry,
		PaymentHash: hash,
	}, nil
}
