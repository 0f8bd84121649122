package physics

import (
	"testing"

	"github.com/blazeforge/ember/fuel"
)

// BenchmarkRothermelSpreadRate exercises the closure the field solver's
// refreshROS calls once per burning cell per tick.
func BenchmarkRothermelSpreadRate(b *testing.B) {
	model, _ := fuel.Standard(fuel.DryGrass)
	in := RothermelInputs{
		MoistureFraction: 0.08,
		WindSpeedMPS:     6.0,
		SlopeDegrees:     12.0,
		AmbientTempC:     30.0,
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		RothermelSpreadRate(model, in)
	}
}
