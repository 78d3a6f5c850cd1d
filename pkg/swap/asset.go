package swap

// BTCToken is the literal used in offer strings for the native currency.
const BTCToken = "btc"

// AssetRef identifies one side of a swap: either native bitcoin or a
// ledger-tracked asset with a contract id.
type AssetRef struct {
	contract *ContractID
}

// BTCAsset returns the AssetRef for native bitcoin.
func BTCAsset() AssetRef {
	return AssetRef{}
}

// AssetFromContract returns the AssetRef for the asset with the given
// contract id.
func AssetFromContract(id ContractID) AssetRef {
	return AssetRef{contract: &id}
}

// ParseAssetRef decodes an asset field of an offer string: the literal "btc"
// means native bitcoin, anything else must be a valid contract id.
func ParseAssetRef(s string) (AssetRef, error) {
	if s == BTCToken {
		return BTCAsset(), nil
	}
	id, err := ContractIDFromString(s)
	if err != nil {
		return AssetRef{}, err
	}
	return AssetFromContract(id), nil
}

// IsBTC returns whether the asset is native bitcoin.
func (a AssetRef) IsBTC() bool {
	return a.contract == nil
}

// Contract returns the contract id of a ledger asset, or false for native
// bitcoin.
func (a AssetRef) Contract() (ContractID, bool) {
	if a.contract == nil {
		return ContractID{}, false
	}
	return *a.contract, true
}

// Equal reports structural equality.
func (a AssetRef) Equal(other AssetRef) bool {
	if a.contract == nil || other.contract == nil {
		return a.contract == nil && other.contract == nil
	}
	return *a.contract == *other.contract
}

func (a AssetRef) String() string {
	if a.contract == nil {
		return BTCToken
	}
	return a.contract.String()
}
