package price

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"$12,345.00", "12345", true},
		{"$9,999.00", "9999", true},
		{"24999.50", "24999.5", true},
		{" $1,000 ", "1000", true},
		{"$0.99", "0.99", true},
		{"", "", false},
		{"call for price", "", false},
		{"$", "", false},
		{"TBD", "", false},
	}
	for _, tt := range tests {
		d, ok := Parse(tt.in)
		if ok != tt.ok {
			t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && d.String() != tt.want {
			t.Fatalf("Parse(%q) = %s, want %s", tt.in, d.String(), tt.want)
		}
	}
}

func fptr(f float64) *float64 { return &f }

func TestInBounds(t *testing.T) {
	// "$9,999.00" with priceMin=10000 is out; with priceMax=10000 it is in.
	if in, ok := InBounds("$9,999.00", fptr(10000), nil); !ok || in {
		t.Fatalf("priceMin=10000 should exclude $9,999.00 (in=%v ok=%v)", in, ok)
	}
	if in, ok := InBounds("$9,999.00", nil, fptr(10000)); !ok || !in {
		t.Fatalf("priceMax=10000 should include $9,999.00 (in=%v ok=%v)", in, ok)
	}
	// Inclusive bounds on both sides.
	if in, ok := InBounds("$10,000.00", fptr(10000), fptr(10000)); !ok || !in {
		t.Fatalf("bounds are inclusive (in=%v ok=%v)", in, ok)
	}
	// Unparseable text reports ok=false so the caller can apply policy.
	if _, ok := InBounds("call for price", fptr(1), nil); ok {
		t.Fatal("unparseable price should report ok=false")
	}
}
