package format

import "testing"

func TestBRL(t *testing.T) {
	cases := map[int64]string{
		0:         "R$ 0,00",
		5:         "R$ 0,05",
		34000:     "R$ 340,00",
		150000:    "R$ 1.500,00",
		300000:    "R$ 3.000,00",
		123456789: "R$ 1.234.567,89",
		-19000:    "-R$ 190,00",
	}
	for in, want := range cases {
		if got := BRL(in); got != want {
			t.Errorf("BRL(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestInstallments(t *testing.T) {
	if got := Installments(10, 34000); got != "10 x R$ 340,00" {
		t.Fatalf("unexpected installment line: %q", got)
	}
	if got := Installments(1, 34000); got != "R$ 340,00" {
		t.Fatalf("single installment should read as a plain price, got %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(30); got != "30%" {
		t.Fatalf("expected 30%%, got %q", got)
	}
}
