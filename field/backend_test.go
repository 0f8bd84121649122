package field

import (
	"errors"
	"testing"

	"github.com/blazeforge/ember/simerr"
)

func TestTickReturnsDomainLimitOnCFLViolation(t *testing.T) {
	f := testField(t, 80, 80)
	f.IgniteAt(80, 80, 8)

	err := f.Tick(50.0, 20) // absurdly large dt forces a CFL violation
	if err == nil {
		t.Fatal("expected a CFL domain-limit error for a huge timestep")
	}
	var se *simerr.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *simerr.Error, got %T", err)
	}
	if se.Kind != simerr.DomainLimit {
		t.Errorf("error kind = %v, want DomainLimit", se.Kind)
	}
}

func TestSetWindFieldRejectsWrongLength(t *testing.T) {
	f := testField(t, 10, 10)
	if err := f.SetWindField(make([]float64, 5), make([]float64, 100)); err == nil {
		t.Fatal("expected error for mismatched wind field length")
	}
}

func TestBackendInterfaceSatisfiedByField(t *testing.T) {
	var _ Backend = testField(t, 4, 4)
}
