package noise

import "testing"

func TestEval2Deterministic(t *testing.T) {
	f := New(42)
	a := f.Eval2(1.23, 4.56)
	b := f.Eval2(1.23, 4.56)
	if a != b {
		t.Errorf("noise not deterministic: %v != %v", a, b)
	}
}

func TestEval2DifferentSeedsDiffer(t *testing.T) {
	a := New(1).Eval2(3.3, 7.7)
	b := New(2).Eval2(3.3, 7.7)
	if a == b {
		t.Error("distinct seeds produced identical noise value")
	}
}

func TestEval2BoundedRange(t *testing.T) {
	f := New(7)
	for i := 0; i < 200; i++ {
		v := f.Eval2(float64(i)*0.37, float64(i)*1.11)
		if v < -1.01 || v > 1.01 {
			t.Fatalf("noise value %v out of expected [-1,1] range", v)
		}
	}
}

func TestFBM2MoreOctavesAddsDetail(t *testing.T) {
	f := New(99)
	lowOctave := f.FBM2(0.5, 0.5, 1, 2.0, 0.5)
	highOctave := f.FBM2(0.5, 0.5, 6, 2.0, 0.5)
	if lowOctave == highOctave {
		t.Error("expected additional octaves to change the accumulated value")
	}
}

func TestTiledFBM4Deterministic(t *testing.T) {
	f := New(5)
	a := f.TiledFBM4(0.2, 0.8, 1.5, 4, 2.0, 0.5)
	b := f.TiledFBM4(0.2, 0.8, 1.5, 4, 2.0, 0.5)
	if a != b {
		t.Errorf("tiled FBM not deterministic: %v != %v", a, b)
	}
}

func TestDeriveSeedDistinctPrimesDiffer(t *testing.T) {
	a := DeriveSeed(1, SeedPrimeFuelHeterogeneity)
	b := DeriveSeed(1, SeedPrimeWindTurbulence)
	if a == b {
		t.Error("expected distinct primes to derive distinct seeds")
	}
}

func TestNormalize01ClampsRange(t *testing.T) {
	if Normalize01(-5) != 0 {
		t.Error("expected clamp to 0")
	}
	if Normalize01(5) != 1 {
		t.Error("expected clamp to 1")
	}
	if v := Normalize01(0); v != 0.5 {
		t.Errorf("Normalize01(0) = %v, want 0.5", v)
	}
}
