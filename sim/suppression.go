package sim

import "github.com/blazeforge/ember/suppression"

// ApplySuppressionDrop paints an aerial retardant/foam/water drop onto
// the suppression grid, in effect starting with the next tick's ROS
// attenuation (field.Field consults the grid through the hook installed
// in New).
func (s *Simulation) ApplySuppressionDrop(drop suppression.Drop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop.Apply(s.suppression, s.dims.Dx)
	s.counters.suppressionDrops++
	s.log.Info("suppression_drop")
}

// ApplySuppressionLine paints a hand/dozer containment line onto the
// suppression grid.
func (s *Simulation) ApplySuppressionLine(line suppression.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line.Apply(s.suppression, s.dims.Dx)
	s.counters.suppressionDrops++
	s.log.Info("suppression_line")
}
