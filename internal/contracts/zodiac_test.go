package contracts

import (
	"math"
	"testing"
)

func TestSignOf(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want Sign
	}{
		{"zero is Aries", 0, Aries},
		{"just below first boundary", 29.999999, Aries},
		{"exact boundary starts next sign", 30, Taurus},
		{"mid zodiac", 185, Libra},
		{"just below wrap stays Pisces", 359.999999, Pisces},
		{"negative wraps backward", -5, Pisces},
		{"full turn wraps to Aries", 360, Aries},
		{"multiple turns", 725, Aries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignOf(tt.lon); got != tt.want {
				t.Errorf("SignOf(%v) = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestNakshatraOf(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want Nakshatra
	}{
		{"zero is Ashwini", 0, 0},
		{"just below first boundary", 13.333332, 0},
		{"second mansion", 13.333334, 1},
		{"Revati start", 346.666667, 26},
		{"just below wrap stays Revati", 359.999999, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NakshatraOf(tt.lon); got != tt.want {
				t.Errorf("NakshatraOf(%v) = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestNakshatraLordCycle(t *testing.T) {
	// The Vimshottari cycle repeats three times across the 27 mansions.
	tests := []struct {
		nak  Nakshatra
		want Planet
	}{
		{0, Ketu},     // Ashwini
		{1, Venus},    // Bharani
		{8, Mercury},  // Ashlesha, end of first cycle
		{9, Ketu},     // Magha, second cycle restarts
		{26, Mercury}, // Revati
	}
	for _, tt := range tests {
		if got := tt.nak.Lord(); got != tt.want {
			t.Errorf("%s.Lord() = %v, want %v", tt.nak, got, tt.want)
		}
	}
}

func TestSignDistanceTo(t *testing.T) {
	// Classical inclusive counting: a sign to itself is 1.
	if got := Aries.DistanceTo(Aries); got != 1 {
		t.Errorf("Aries.DistanceTo(Aries) = %d, want 1", got)
	}
	if got := Aries.DistanceTo(Pisces); got != 12 {
		t.Errorf("Aries.DistanceTo(Pisces) = %d, want 12", got)
	}
	if got := Scorpio.DistanceTo(Aries); got != 6 {
		t.Errorf("Scorpio.DistanceTo(Aries) = %d, want 6", got)
	}
}

func TestSignAdd(t *testing.T) {
	if got := Pisces.Add(1); got != Aries {
		t.Errorf("Pisces.Add(1) = %v, want Aries", got)
	}
	if got := Aries.Add(-1); got != Pisces {
		t.Errorf("Aries.Add(-1) = %v, want Pisces", got)
	}
	if got := Leo.Add(12); got != Leo {
		t.Errorf("Leo.Add(12) = %v, want Leo", got)
	}
}

func TestSignLord(t *testing.T) {
	tests := []struct {
		sign Sign
		want Planet
	}{
		{Aries, Mars},
		{Taurus, Venus},
		{Cancer, Moon},
		{Leo, Sun},
		{Scorpio, Mars},
		{Aquarius, Saturn},
		{Pisces, Jupiter},
	}
	for _, tt := range tests {
		if got := tt.sign.Lord(); got != tt.want {
			t.Errorf("%s.Lord() = %v, want %v", tt.sign, got, tt.want)
		}
	}
}

func TestPadaOf(t *testing.T) {
	tests := []struct {
		lon  float64
		want int
	}{
		{0, 1},
		{3.334, 2},
		{6.667, 3},
		{13.333332, 4},
		{346.666667, 1}, // Revati first pada
	}
	for _, tt := range tests {
		if got := PadaOf(tt.lon); got != tt.want {
			t.Errorf("PadaOf(%v) = %d, want %d", tt.lon, got, tt.want)
		}
	}
}

func TestNakshatraFraction(t *testing.T) {
	// Halfway through Ashwini
	got := NakshatraFraction(NakshatraSpan / 2)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("NakshatraFraction(mid) = %v, want 0.5", got)
	}
	if f := NakshatraFraction(346.666667); f > 0.001 {
		t.Errorf("NakshatraFraction(Revati start) = %v, want ~0", f)
	}
}

func TestNorm360(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-30, 330},
		{390, 30},
		{0, 0},
		{-360, 0},
	}
	for _, tt := range tests {
		if got := Norm360(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Norm360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsOdd(t *testing.T) {
	// Odd counts from 1: Aries odd, Taurus even.
	if !Aries.IsOdd() {
		t.Error("Aries should be odd")
	}
	if Taurus.IsOdd() {
		t.Error("Taurus should be even")
	}
	if !Gemini.IsOdd() {
		t.Error("Gemini should be odd")
	}
}
