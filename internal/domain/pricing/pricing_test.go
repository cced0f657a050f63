package pricing

import (
	"math"
	"testing"
)

func TestCompute_KnownValues(t *testing.T) {
	cases := []struct {
		name                     string
		gross, colabPct, xferPct float64
		wantColab, wantPartner   float64
		wantProfit               float64
	}{
		{name: "no deductions", gross: 100, colabPct: 0, xferPct: 0, wantColab: 100, wantPartner: 100, wantProfit: 0},
		{name: "half and half", gross: 100, colabPct: 50, xferPct: 50, wantColab: 50, wantPartner: 25, wantProfit: 25},
		{name: "zero gross", gross: 0, colabPct: 30, xferPct: 40, wantColab: 0, wantPartner: 0, wantProfit: 0},
		{name: "full collaborator share", gross: 100, colabPct: 100, xferPct: 50, wantColab: 0, wantPartner: 0, wantProfit: 0},
		{name: "full transfer", gross: 200, colabPct: 10, xferPct: 100, wantColab: 180, wantPartner: 0, wantProfit: 180},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.gross, tc.colabPct, tc.xferPct)
			if !closeTo(got.CollaboratorPrice, tc.wantColab) {
				t.Fatalf("collaborator price: got %v, want %v", got.CollaboratorPrice, tc.wantColab)
			}
			if !closeTo(got.PartnerPrice, tc.wantPartner) {
				t.Fatalf("partner price: got %v, want %v", got.PartnerPrice, tc.wantPartner)
			}
			if !closeTo(got.Profit, tc.wantProfit) {
				t.Fatalf("profit: got %v, want %v", got.Profit, tc.wantProfit)
			}
		})
	}
}

func TestCompute_SplitAlwaysSumsToCollaboratorPrice(t *testing.T) {
	grosses := []float64{0, 0.01, 1, 49.9, 100, 999.99, 123456.78}
	percents := []float64{0, 1, 12.5, 33.3, 50, 66.7, 99, 100}

	for _, g := range grosses {
		for _, cp := range percents {
			for _, tp := range percents {
				got := Compute(g, cp, tp)
				if math.Abs(got.PartnerPrice+got.Profit-got.CollaboratorPrice) > 1e-9 {
					t.Fatalf("split does not sum for gross=%v colab=%v transfer=%v: %v + %v != %v",
						g, cp, tp, got.PartnerPrice, got.Profit, got.CollaboratorPrice)
				}
				if cp >= 0 && got.CollaboratorPrice > g+1e-9 {
					t.Fatalf("collaborator price %v exceeds gross %v", got.CollaboratorPrice, g)
				}
			}
		}
	}
}

func TestCompute_DoesNotClampPercentages(t *testing.T) {
	// Out-of-range percentages are mathematically accepted; rejecting them is
	// the form layer's responsibility.
	got := Compute(100, -50, 0)
	if !closeTo(got.CollaboratorPrice, 150) {
		t.Fatalf("expected inflated collaborator price 150, got %v", got.CollaboratorPrice)
	}

	got = Compute(100, 0, 150)
	if !closeTo(got.PartnerPrice, -50) || !closeTo(got.Profit, 150) {
		t.Fatalf("expected partner=-50 profit=150, got partner=%v profit=%v", got.PartnerPrice, got.Profit)
	}
}

func TestCompute_EchoesInputs(t *testing.T) {
	got := Compute(80, 25, 10)
	if got.GrossPrice != 80 || got.CollaboratorPercent != 25 || got.TransferPercent != 10 {
		t.Fatalf("inputs not echoed: %+v", got)
	}
}

func closeTo(got, want float64) bool {
	return math.Abs(got-want) <= 1e-9
}
