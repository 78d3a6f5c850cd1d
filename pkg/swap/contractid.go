package swap

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// ContractIDHRP is the human-readable prefix of an encoded contract id.
	ContractIDHRP = "rgb"
	// ContractIDSize is the raw size of a contract id in bytes.
	ContractIDSize = 32
)

// ContractID identifies a ledger-tracked asset. Its textual form is the
// bech32m encoding of the raw 32 bytes with the "rgb" prefix. Decoding is
// case-insensitive, so re-encoding a decoded id yields the canonical
// lowercase form rather than the exact input bytes.
type ContractID [ContractIDSize]byte

// ContractIDFromBytes copies buf into a ContractID, requiring exactly 32
// bytes.
func ContractIDFromBytes(buf []byte) (ContractID, error) {
	var id ContractID
	if len(buf) != ContractIDSize {
		return id, fmt.Errorf(
			"invalid contract id length: expected %d bytes, got %d",
			ContractIDSize, len(buf),
		)
	}
	copy(id[:], buf)
	return id, nil
}

// ContractIDFromString decodes the canonical textual form of a contract id,
// validating prefix, checksum and payload length.
func ContractIDFromString(s string) (ContractID, error) {
	var id ContractID
	hrp, data, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return id, err
	}
	if hrp != ContractIDHRP {
		return id, fmt.Errorf("invalid contract id prefix %q", hrp)
	}
	if version != bech32.VersionM {
		return id, fmt.Errorf("invalid contract id encoding version")
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return id, err
	}
	return ContractIDFromBytes(payload)
}

func (id ContractID) String() string {
	data, err := bech32.ConvertBits(id[:], 8, 5, true)
	if err != nil {
		return ""
	}
	encoded, err := bech32.EncodeM(ContractIDHRP, data)
	if err != nil {
		return ""
	}
	return encoded
}
