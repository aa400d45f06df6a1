package split

import (
	"math"
	"testing"
)

func TestEqualStrategy(t *testing.T) {
	tests := []struct {
		name         string
		totalAmount  float64
		participants []string
		wantErr      error
		wantShare    float64
	}{
		{
			name:         "three-way split",
			totalAmount:  30.0,
			participants: []string{"u1", "u2", "u3"},
			wantShare:    10.0,
		},
		{
			name:         "single participant owes the full amount",
			totalAmount:  12.5,
			participants: []string{"u1"},
			wantShare:    12.5,
		},
		{
			name:         "uneven division is not rounded",
			totalAmount:  10.0,
			participants: []string{"u1", "u2", "u3"},
			wantShare:    10.0 / 3.0,
		},
		{
			name:        "no participants",
			totalAmount: 10.0,
			wantErr:     ErrNoParticipants,
		},
		{
			name:         "negative amount",
			totalAmount:  -5.0,
			participants: []string{"u1"},
			wantErr:      ErrNegativeAmount,
		},
	}

	strategy := &EqualStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := strategy.Calculate(tt.totalAmount, tt.participants, nil)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("Calculate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Calculate() unexpected error: %v", err)
			}
			if len(shares) != len(tt.participants) {
				t.Fatalf("Calculate() returned %d shares, want %d", len(shares), len(tt.participants))
			}
			for _, p := range tt.participants {
				if math.Abs(shares[p]-tt.wantShare) > 1e-9 {
					t.Errorf("share for %s = %v, want %v", p, shares[p], tt.wantShare)
				}
			}
		})
	}
}

func TestCustomStrategy(t *testing.T) {
	tests := []struct {
		name         string
		totalAmount  float64
		participants []string
		amounts      map[string]float64
		wantErr      error
	}{
		{
			name:         "valid custom amounts",
			totalAmount:  30.0,
			participants: []string{"u1", "u2"},
			amounts:      map[string]float64{"u1": 20.0, "u2": 10.0},
		},
		{
			name:         "cent-level mismatch tolerated",
			totalAmount:  10.0,
			participants: []string{"u1", "u2"},
			amounts:      map[string]float64{"u1": 3.33, "u2": 6.66},
		},
		{
			name:         "missing participant amount",
			totalAmount:  30.0,
			participants: []string{"u1", "u2"},
			amounts:      map[string]float64{"u1": 30.0},
			wantErr:      ErrMissingAmount,
		},
		{
			name:         "amounts do not sum to total",
			totalAmount:  30.0,
			participants: []string{"u1", "u2"},
			amounts:      map[string]float64{"u1": 20.0, "u2": 20.0},
			wantErr:      ErrAmountsMismatch,
		},
		{
			name:         "negative custom amount",
			totalAmount:  10.0,
			participants: []string{"u1", "u2"},
			amounts:      map[string]float64{"u1": -5.0, "u2": 15.0},
			wantErr:      ErrNegativeAmount,
		},
	}

	strategy := &CustomStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := strategy.Calculate(tt.totalAmount, tt.participants, tt.amounts)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("Calculate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Calculate() unexpected error: %v", err)
			}
			for _, p := range tt.participants {
				if math.Abs(shares[p]-tt.amounts[p]) > 1e-9 {
					t.Errorf("share for %s = %v, want %v", p, shares[p], tt.amounts[p])
				}
			}
		})
	}
}

func TestFactoryCreateFromString(t *testing.T) {
	factory := NewFactory()

	for method, want := range map[string]Method{
		"":       MethodEqual,
		"EQUAL":  MethodEqual,
		"CUSTOM": MethodCustom,
	} {
		strategy, err := factory.CreateFromString(method)
		if err != nil {
			t.Fatalf("CreateFromString(%q) unexpected error: %v", method, err)
		}
		if strategy.Method() != want {
			t.Errorf("CreateFromString(%q).Method() = %v, want %v", method, strategy.Method(), want)
		}
	}

	if _, err := factory.CreateFromString("PERCENTAGE"); err == nil {
		t.Error("CreateFromString(\"PERCENTAGE\") expected error, got nil")
	}
}
