package ai

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/segmentio/fasthash/fnv1a"

	"github.com/driftlands/survivalcore/server/entity"
)

// distance returns the Euclidean distance between two positions.
func distance(a, b entity.Position) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// withinPerceptionCone reports whether target falls inside the animal's
// forward vision cone: always true for an omnidirectional perceiver
// (angle == 0), otherwise the angle between the animal's facing vector and
// the vector to target must be within half-angle.
func withinPerceptionCone(self entity.Position, facing float32, halfAngle float32, target entity.Position, perceptionRange float32) bool {
	if distance(self, target) > perceptionRange {
		return false
	}
	if halfAngle <= 0 {
		return true
	}
	facingVec := mgl32.Vec2{float32(math.Cos(float64(facing))), float32(math.Sin(float64(facing)))}
	toTarget := mgl32.Vec2{float32(target.X - self.X), float32(target.Y - self.Y)}
	if toTarget.Len() == 0 {
		return true
	}
	cosAngle := facingVec.Normalize().Dot(toTarget.Normalize())
	return float32(math.Acos(float64(clamp(cosAngle, -1, 1)))) <= halfAngle
}

func cosf(radians float64) float64 { return math.Cos(radians) }
func sinf(radians float64) float64 { return math.Sin(radians) }

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fleeDestination returns a position a fixed distance directly away from
// threat, the common "run in the opposite direction" rule every fleeing
// species shares.
func fleeDestination(self, threat entity.Position, runDistance float32) entity.Position {
	dx := self.X - threat.X
	dy := self.Y - threat.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if d == 0 {
		// No defined direction away from a threat at the same point;
		// pick an arbitrary axis rather than divide by zero.
		return entity.Position{X: self.X + float64(runDistance), Y: self.Y}
	}
	return entity.Position{
		X: self.X + dx/d*float64(runDistance),
		Y: self.Y + dy/d*float64(runDistance),
	}
}

// abandonChase reports whether the current distance to the target exceeds
// the species' chase-abandon range, scaled by a behavior's
// GetChaseAbandonmentMultiplier (the polar bear's 60% reduction when
// fatigued is the motivating case).
func abandonChase(dist, abandonRange, multiplier float32) bool {
	if multiplier <= 0 {
		multiplier = 1
	}
	return dist > abandonRange*multiplier
}

// fireFearTriggered implements the common fire-fear rule the generic, wolf
// and polar bear behaviours apply: a player holding a fire source
// suppresses the chase trigger, rather than being closed on to attack
// range.
func fireFearTriggered(holdsFireSource bool) bool {
	return holdsFireSource
}

// furIntimidationTriggered implements the wolf-pack rule: a player
// wearing a heavy fur/pelt armor set reads as a rival predator rather than
// prey, suppressing the chase trigger outright.
func furIntimidationTriggered(wearsFur bool) bool {
	return wearsFur
}

// flashlightHesitationTriggered implements the Shardkin rule: a player
// holding a lit flashlight delays the Shardkin's approach by making it
// re-roll its hesitation check every tick instead of closing distance.
func flashlightHesitationTriggered(holdsFlashlight bool, rng float32, hesitateChance float32) bool {
	return holdsFlashlight && rng < hesitateChance
}

// packHash derives a stable pack identifier from a spawn-group seed,
// grounding pack membership in a cheap non-cryptographic hash (wolves
// spawned together share a PackID) rather than a sequentially-assigned
// counter, so pack membership survives a world reload without a lookup
// table.
func packHash(spawnGroupSeed string) uint64 {
	return fnv1a.HashString64(spawnGroupSeed)
}

// TileQuery is the narrow sea-tile lookup the ai package declares so it
// doesn't depend on the tile-data package directly; env.IsSeaTile answers
// the same question. Nothing in this module implements it, and Tick and
// the species behaviours do not take one.
type TileQuery interface {
	IsSeaTile(x, y float64) bool
}
