package normalize

import (
	"math"
	"testing"

	"realtoken-yam/internal/domain"
)

func TestContribution_TokenForStable(t *testing.T) {
	// Base token sold for stablecoin: value = price*quantity, divisor = quantity.
	value, divisor := Contribution(domain.TypeRealTokenToERC20, 50.0, 2.0)
	if value != 100.0 {
		t.Errorf("expected value 100, got %v", value)
	}
	if divisor != 2.0 {
		t.Errorf("expected divisor 2, got %v", divisor)
	}
}

func TestContribution_StableForToken(t *testing.T) {
	// Stablecoin spent for base token: value = quantity, divisor = quantity*price.
	value, divisor := Contribution(domain.TypeERC20ToRealToken, 0.02, 100.0)
	if value != 100.0 {
		t.Errorf("expected value 100, got %v", value)
	}
	if divisor != 2.0 {
		t.Errorf("expected divisor 2, got %v", divisor)
	}
}

func TestContribution_OtherTypes(t *testing.T) {
	value, divisor := Contribution(domain.TypeERC20ToERC20, 50.0, 2.0)
	if value != 0 || divisor != 0 {
		t.Errorf("expected zero contribution, got value=%v divisor=%v", value, divisor)
	}
}

func TestUnitPrice_MixedDirections(t *testing.T) {
	// Each record contributes its matched (value, divisor) pair.
	samples := []domain.TransactionSample{
		{Type: domain.TypeRealTokenToERC20, Price: 50.0, Quantity: 2.0},  // 100 / 2
		{Type: domain.TypeERC20ToRealToken, Price: 0.02, Quantity: 50.0}, // 50 / 1
	}

	got := UnitPrice(samples)
	want := 150.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestUnitPrice_NoSamples(t *testing.T) {
	if got := UnitPrice(nil); !math.IsNaN(got) {
		t.Errorf("expected NaN with no samples, got %v", got)
	}
}
