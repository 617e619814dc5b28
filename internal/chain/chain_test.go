package chain

import (
	"errors"
	"testing"
)

func TestSelect_SupportedChains(t *testing.T) {
	for _, id := range []int{1, 100, 5} {
		network, err := Select(id)
		if err != nil {
			t.Fatalf("Select(%d): %v", id, err)
		}
		if network.ChainID != id {
			t.Errorf("expected chain id %d, got %d", id, network.ChainID)
		}
		if len(network.Contracts) == 0 {
			t.Errorf("chain %d: expected non-empty contracts", id)
		}
		if network.SubgraphEndpoint == "" {
			t.Errorf("chain %d: expected subgraph endpoint", id)
		}
	}
}

func TestSelect_UnknownChain(t *testing.T) {
	_, err := Select(42)
	if !errors.Is(err, ErrUnknownChain) {
		t.Fatalf("expected ErrUnknownChain, got %v", err)
	}
}

func TestFromEnv_Default(t *testing.T) {
	t.Setenv("APP_CHAIN_ID", "")

	network, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if network.ChainID != DefaultChainID {
		t.Errorf("expected default chain %d, got %d", DefaultChainID, network.ChainID)
	}
}

func TestFromEnv_Explicit(t *testing.T) {
	t.Setenv("APP_CHAIN_ID", "100")

	network, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if network.Name != XDai {
		t.Errorf("expected xDai, got %s", network.Name)
	}
}

func TestFromEnv_Malformed(t *testing.T) {
	t.Setenv("APP_CHAIN_ID", "not-a-number")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for malformed APP_CHAIN_ID")
	}
}
