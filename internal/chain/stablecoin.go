package chain

import "strings"

// Stablecoins returns the contracts flagged as stablecoins on the network.
func (n *Network) Stablecoins() []Contract {
	var out []Contract
	for _, c := range n.Contracts {
		if c.Stable {
			out = append(out, c)
		}
	}
	return out
}

// StablecoinAddresses returns the lowercase addresses of the network's
// stablecoin contracts.
func (n *Network) StablecoinAddresses() []string {
	var out []string
	for _, c := range n.Stablecoins() {
		out = append(out, c.Address)
	}
	return out
}

// IsStablecoin reports whether address is a recognized stablecoin contract.
// The check is case-insensitive.
func (n *Network) IsStablecoin(address string) bool {
	_, ok := n.StablecoinSymbol(address)
	return ok
}

// StablecoinSymbol returns the symbol of the stablecoin registered under
// address, if any.
func (n *Network) StablecoinSymbol(address string) (string, bool) {
	address = strings.ToLower(address)
	for _, c := range n.Stablecoins() {
		if c.Address == address {
			return c.Symbol, true
		}
	}
	return "", false
}
