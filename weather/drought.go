package weather

import "math"

// droughtTracker derives a 0..10 drought factor from the rainfall record
// in a Series using a Keetch-Byram-style soil moisture deficit index:
// deficit grows with time since rain and resets sharply when rain falls.
type droughtTracker struct {
	samples []driftSample
}

type driftSample struct {
	timeSeconds float64
	factor      float64
}

// keetchByramMaxIndex is the upper bound of the Keetch-Byram Drought
// Index in its native units (hundredths of an inch of soil moisture
// deficit); 800 corresponds to the fully parched end of the scale.
const keetchByramMaxIndex = 800.0

// significantRainfallMM is the threshold above which a day's rain is
// treated as resetting accumulated deficit, matching the KBDI convention
// of only counting rainfall in excess of 0.2 inches (~5mm) runoff loss.
const significantRainfallMM = 5.0

func newDroughtTracker(obs []Observation) *droughtTracker {
	t := &droughtTracker{}
	if len(obs) == 0 {
		return t
	}

	kbdi := keetchByramMaxIndex * 0.3 // assume moderately dry starting condition
	prevTime := obs[0].TimeSeconds
	for _, o := range obs {
		dtDays := (o.TimeSeconds - prevTime) / 86400.0
		if dtDays > 0 {
			tempF := o.TemperatureC*9/5 + 32 // the index's growth term is fitted in degrees F
			growth := dtDays * (0.001 * (800 - kbdi) * (0.968*math.Exp(0.0486*tempF) - 8.3)) /
				(1 + 10.88*math.Exp(-0.0441*keetchByramMaxIndex))
			if growth > 0 {
				kbdi += growth
			}
		}
		if o.RainfallMM > significantRainfallMM {
			kbdi -= (o.RainfallMM - significantRainfallMM) * 4.06 // mm to KBDI units, approx
		}
		kbdi = clamp(kbdi, 0, keetchByramMaxIndex)

		t.samples = append(t.samples, driftSample{
			timeSeconds: o.TimeSeconds,
			factor:      clamp(kbdi/keetchByramMaxIndex*10, 0, 10),
		})
		prevTime = o.TimeSeconds
	}
	return t
}

func (t *droughtTracker) at(timeSeconds float64) float64 {
	if len(t.samples) == 0 {
		return 0
	}
	if timeSeconds <= t.samples[0].timeSeconds {
		return t.samples[0].factor
	}
	last := t.samples[len(t.samples)-1]
	if timeSeconds >= last.timeSeconds {
		return last.factor
	}
	for i := 1; i < len(t.samples); i++ {
		if t.samples[i].timeSeconds >= timeSeconds {
			a, b := t.samples[i-1], t.samples[i]
			span := b.timeSeconds - a.timeSeconds
			if span <= 0 {
				return a.factor
			}
			frac := (timeSeconds - a.timeSeconds) / span
			return lerp(a.factor, b.factor, frac)
		}
	}
	return last.factor
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
