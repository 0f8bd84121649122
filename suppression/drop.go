package suppression

// AgentType is a suppression agent carried by an aerial Drop, following
// the property bundle in the reference engine's suppression/agent.rs.
type AgentType int

const (
	Water AgentType = iota
	FoamClassA
	ShortTermRetardant
	LongTermRetardant
	WettingAgent
)

// agentProperties holds the subset of suppression/agent.rs's bundle the
// field grid needs: the combustion-inhibition factor that becomes grid
// effectiveness, and how long the coating lasts before degrading away.
type agentProperties struct {
	combustionInhibition float64
	coatingDurationSec   float64
}

var agentTable = map[AgentType]agentProperties{
	Water:              {combustionInhibition: 0.0, coatingDurationSec: 120},
	FoamClassA:         {combustionInhibition: 0.1, coatingDurationSec: 1800},
	ShortTermRetardant: {combustionInhibition: 0.35, coatingDurationSec: 3600},
	LongTermRetardant:  {combustionInhibition: 0.6, coatingDurationSec: 28800},
	WettingAgent:       {combustionInhibition: 0.05, coatingDurationSec: 600},
}

// Drop is a single aerial retardant/foam/water drop footprint.
type Drop struct {
	CenterX, CenterY float64
	RadiusM          float64
	Agent            AgentType
}

// Apply paints the drop's footprint onto the grid, raising effectiveness
// within its radius and setting the decay time constant for the agent's
// coating duration. cellSize is the field solver's grid spacing.
func (d Drop) Apply(g *Grid, cellSize float64) {
	props := agentTable[d.Agent]
	g.apply(d.CenterX, d.CenterY, d.RadiusM, props.combustionInhibition, props.coatingDurationSec, cellSize)
}
