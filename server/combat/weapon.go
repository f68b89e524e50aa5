// Package combat implements the damage pipeline, corpse and resource
// harvesting, storm debris, water interactions, and tilling — the
// "strike something, something happens" half of the simulation,
// grounded file-by-file on original_source/server/src/{armor,
// collectible_resources,harvestable_resource,coral,drinking,
// tilled_tiles,wet}.rs.
package combat

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
)

// Damage type tags, matching the keys used in item.ItemDefinition's
// ArmourResist/Immunities maps and item.DamageProfile.
const (
	DamageSlash  = "slash"
	DamageBlunt  = "blunt"
	DamagePierce = "pierce"
	DamageFire   = "fire"
	DamageBleed  = "bleed"
	DamagePoison = "poison"
)

// DefaultAttackArcDegrees and ScytheAttackArcDegrees are the melee
// attack-cone widths; a weapon with AttackArcDegrees unset in content
// data uses the default.
const (
	DefaultAttackArcDegrees = 90.0
	ScytheAttackArcDegrees  = 120.0
	DefaultMeleeRangePx     = 96.0
)

// Errors returned by ResolveAttack.
var (
	ErrNotAWeapon  = errors.New("item is not a weapon")
	ErrOutOfRange  = errors.New("target is outside melee attack range/arc")
	ErrNoAmmo      = errors.New("ranged weapon has no loaded ammo")
	ErrNoDamageRow = errors.New("weapon has no damage profile for this target type")
)

// AttackRequest is the resolved-attacker-state combat needs to validate a
// strike, step 1 of the damage pipeline.
type AttackRequest struct {
	AttackerPos    entity.Position
	AttackerFacing float32 // radians
	Weapon         *item.ItemDefinition
	TargetPos      entity.Position
	LoadedAmmo     int
}

// ResolveAttack implements step 1: a ranged weapon must have loaded ammo
// (the caller consumes consumedAmmo rounds on success); a melee weapon
// must have the target within AttackRangePx and inside the
// AttackArcDegrees-wide forward cone.
func ResolveAttack(req AttackRequest) (consumedAmmo int, err error) {
	if req.Weapon == nil || req.Weapon.Category != item.CategoryWeapon {
		return 0, ErrNotAWeapon
	}
	if req.Weapon.IsRangedWeapon {
		if req.LoadedAmmo <= 0 {
			return 0, ErrNoAmmo
		}
		return 1, nil
	}

	arc := req.Weapon.AttackArcDegrees
	if arc <= 0 {
		arc = DefaultAttackArcDegrees
	}
	reach := req.Weapon.AttackRangePx
	if reach <= 0 {
		reach = DefaultMeleeRangePx
	}
	if !withinMeleeArc(req.AttackerPos, req.AttackerFacing, arc, req.TargetPos, reach) {
		return 0, ErrOutOfRange
	}
	return 0, nil
}

// withinMeleeArc mirrors the ai package's perception-cone test: within
// reach, and within the half-angle of the attacker's facing vector.
func withinMeleeArc(self entity.Position, facing float32, arcDegrees float64, target entity.Position, reach float64) bool {
	dx := target.X - self.X
	dy := target.Y - self.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > reach {
		return false
	}
	if dist == 0 {
		return true
	}
	halfAngle := float32(arcDegrees * math.Pi / 360)
	facingVec := mgl32.Vec2{float32(math.Cos(float64(facing))), float32(math.Sin(float64(facing)))}
	toTarget := mgl32.Vec2{float32(dx), float32(dy)}.Normalize()
	cosAngle := facingVec.Normalize().Dot(toTarget)
	return float32(math.Acos(float64(clamp(cosAngle, -1, 1)))) <= halfAngle
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
