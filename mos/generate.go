package mos

import (
	"math"

	"github.com/scalatrix/scalatrix/lattice"
	"github.com/scalatrix/scalatrix/scale"
)

// GenerateScale replicates the one-period reference scale into nNodes
// nodes rooted at rootIdx. Tuning x positions are built as reference
// position plus a whole number of equaves, so octave-displaced copies
// of a degree agree exactly instead of accumulating drift. Tempering
// applied to the base scale carries over to every replica.
func (m *MOS) GenerateScale(baseFreq float64, nNodes, rootIdx int) (*scale.Scale, error) {
	sc, err := scale.New(baseFreq, nNodes, rootIdx)
	if err != nil {
		return nil, err
	}
	nodes := sc.Nodes()
	refs := m.baseScale.Nodes()
	equaveVec := lattice.Vec2i{X: m.a, Y: m.b}
	for i := -rootIdx; i < nNodes-rootIdx; i++ {
		idx := lattice.FloorMod(i, m.n)
		oct := lattice.FloorDiv(i, m.n)
		ref := refs[idx]
		node := &nodes[i+rootIdx]
		node.NaturalCoord = equaveVec.Scale(oct).Add(ref.NaturalCoord)
		node.TuningCoord = m.implied.ApplyInt(node.NaturalCoord)
		node.TuningCoord.X = ref.TuningCoord.X + float64(oct)*m.equave
		node.Pitch = baseFreq * math.Exp2(node.TuningCoord.X)
		node.Tempered = ref.Tempered
		node.TemperedPitch = ref.TemperedPitch
		node.ClosestPitch = ref.ClosestPitch
	}
	return sc, nil
}

// RetuneScale re-tunes an externally held scale from the reference
// period: each node's tuning x and pitch are rewritten from the degree
// it occupies, leaving its lattice coordinate alone.
func (m *MOS) RetuneScale(sc *scale.Scale, baseFreq float64) {
	nodes := sc.Nodes()
	refs := m.baseScale.Nodes()
	rootIdx := sc.RootIdx()
	for i := range nodes {
		idx := lattice.FloorMod(i-rootIdx, m.n)
		oct := lattice.FloorDiv(i-rootIdx, m.n)
		ref := refs[idx]
		node := &nodes[i]
		node.TuningCoord.X = ref.TuningCoord.X + float64(oct)*m.equave
		node.Pitch = baseFreq * math.Exp2(node.TuningCoord.X)
		node.Tempered = ref.Tempered
		node.TemperedPitch = ref.TemperedPitch
		node.ClosestPitch = ref.ClosestPitch
	}
}

// MapFromMOS reinterprets v, expressed in other's brightness-path
// basis, in the receiver's basis: unfold other's path, then fold the
// receiver's.
func (m *MOS) MapFromMOS(other *MOS, v lattice.Vec2i) lattice.Vec2i {
	return m.path.Apply(other.path.ApplyReverse(v))
}
