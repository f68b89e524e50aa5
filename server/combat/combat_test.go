package combat

import (
	"testing"
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/item"
	"github.com/driftlands/survivalcore/server/platform"
)

func TestResolveAttackMeleeOutOfRange(t *testing.T) {
	weapon := &item.ItemDefinition{Category: item.CategoryWeapon, AttackRangePx: 50}
	req := AttackRequest{
		AttackerPos:    entity.Position{X: 0, Y: 0},
		AttackerFacing: 0,
		Weapon:         weapon,
		TargetPos:      entity.Position{X: 500, Y: 0},
	}
	if _, err := ResolveAttack(req); err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestResolveAttackMeleeInArc(t *testing.T) {
	weapon := &item.ItemDefinition{Category: item.CategoryWeapon, AttackRangePx: 100}
	req := AttackRequest{
		AttackerPos:    entity.Position{X: 0, Y: 0},
		AttackerFacing: 0,
		Weapon:         weapon,
		TargetPos:      entity.Position{X: 50, Y: 0},
	}
	if _, err := ResolveAttack(req); err != nil {
		t.Fatalf("expected attack to resolve, got %v", err)
	}
}

func TestResolveAttackRangedRequiresAmmo(t *testing.T) {
	weapon := &item.ItemDefinition{Category: item.CategoryWeapon, IsRangedWeapon: true}
	req := AttackRequest{Weapon: weapon, LoadedAmmo: 0}
	if _, err := ResolveAttack(req); err != ErrNoAmmo {
		t.Fatalf("expected ErrNoAmmo, got %v", err)
	}
	req.LoadedAmmo = 3
	consumed, err := ResolveAttack(req)
	if err != nil || consumed != 1 {
		t.Fatalf("expected one round consumed, got %d, %v", consumed, err)
	}
}

func TestResolveAttackNotAWeapon(t *testing.T) {
	tool := &item.ItemDefinition{Category: item.CategoryTool}
	if _, err := ResolveAttack(AttackRequest{Weapon: tool}); err != ErrNotAWeapon {
		t.Fatalf("expected ErrNotAWeapon, got %v", err)
	}
}

func TestAggregateResistanceCapsAtMax(t *testing.T) {
	pieces := []*item.ItemDefinition{
		{ArmourResist: map[string]float32{DamageSlash: 0.6}},
		{ArmourResist: map[string]float32{DamageSlash: 0.6}},
	}
	if got := AggregateResistance(pieces, DamageSlash); got != MaxResistance {
		t.Fatalf("expected resistance capped at %v, got %v", MaxResistance, got)
	}
}

func TestAggregateImmunitiesThresholdRule(t *testing.T) {
	pieces := make([]*item.ItemDefinition, 0, 5)
	for i := 0; i < 4; i++ {
		pieces = append(pieces, &item.ItemDefinition{Immunities: map[string]float32{DamageFire: 5}})
	}
	if AggregateImmunities(pieces)[DamageFire] {
		t.Fatal("expected no immunity with only 4 of 5 required pieces")
	}
	pieces = append(pieces, &item.ItemDefinition{Immunities: map[string]float32{DamageFire: 5}})
	if !AggregateImmunities(pieces)[DamageFire] {
		t.Fatal("expected immunity once the 5th piece is equipped")
	}
}

func TestAggregateMeleeReflectCapsAtMax(t *testing.T) {
	pieces := []*item.ItemDefinition{
		{MeleeReflect: 0.4}, {MeleeReflect: 0.4},
	}
	if got := AggregateMeleeReflect(pieces); got != MaxMeleeReflect {
		t.Fatalf("expected reflect capped at %v, got %v", MaxMeleeReflect, got)
	}
}

func TestStrikeAppliesResistanceAndKillsOnLethalDamage(t *testing.T) {
	victim := &HealthState{Health: 10, MaxHealth: 10}
	armour := []*item.ItemDefinition{{ArmourResist: map[string]float32{DamageBlunt: 0.5}}}
	res := Strike(victim, StrikeInput{DamageType: DamageBlunt, Raw: 30, DefenderArmour: armour})
	if res.EffectiveDamage != 15 {
		t.Fatalf("expected 15 effective damage after 50%% resist, got %v", res.EffectiveDamage)
	}
	if !res.VictimDied || victim.Health != 0 {
		t.Fatalf("expected victim to die with health clamped to 0, got died=%v health=%d", res.VictimDied, victim.Health)
	}
}

func TestStrikeFireAmplify(t *testing.T) {
	victim := &HealthState{Health: 100, MaxHealth: 100}
	armour := []*item.ItemDefinition{{FireAmplify: 0.5}}
	res := Strike(victim, StrikeInput{DamageType: DamageFire, Raw: 10, DefenderArmour: armour})
	if res.EffectiveDamage != 15 {
		t.Fatalf("expected fire amplify to scale 10 -> 15, got %v", res.EffectiveDamage)
	}
}

func TestStrikeMeleeReflect(t *testing.T) {
	victim := &HealthState{Health: 100, MaxHealth: 100}
	armour := []*item.ItemDefinition{{MeleeReflect: 0.3}}
	res := Strike(victim, StrikeInput{DamageType: DamageSlash, Raw: 20, DefenderArmour: armour, MeleeStrike: true})
	if res.ReflectedDamage != 6 {
		t.Fatalf("expected 6 reflected damage, got %v", res.ReflectedDamage)
	}
}

func TestStrikeKnockbackBlockedByImmunity(t *testing.T) {
	victim := &HealthState{Health: 100, MaxHealth: 100}
	armour := []*item.ItemDefinition{{Immunities: map[string]float32{knockbackImmunityTag: 1}}}
	res := Strike(victim, StrikeInput{DamageType: DamageBlunt, Raw: 5, DefenderArmour: armour, Knockbacks: true, KnockbackDistancePx: 40})
	if res.Effects.Knockback {
		t.Fatal("expected knockback to be suppressed by immunity")
	}
}

func TestToolYieldChanceFallbackFloor(t *testing.T) {
	tool := &item.ItemDefinition{HarvestMultiplier: 0.01}
	got := ToolYieldChance(1.0, tool, false)
	want := float32(FallbackToolFractionMin)
	if got != want {
		t.Fatalf("expected fallback floor %v, got %v", want, got)
	}
}

func TestHarvestHitDepletesAndReportsYields(t *testing.T) {
	rng := platform.NewRNG(1, 2)
	target := &HarvestTarget{Health: 10, MaxHealth: 10}
	yields := []item.Yield{{ItemDefID: 1, MinQty: 1, MaxQty: 1, Chance: 1.0}}
	tool := &item.ItemDefinition{HarvestMultiplier: 1}
	granted, depleted := HarvestHit(target, 10, yields, tool, true, rng)
	if !depleted || target.Health != 0 {
		t.Fatalf("expected target depleted at 0 health, got depleted=%v health=%d", depleted, target.Health)
	}
	if len(granted) != 1 || granted[0].ItemDefID != 1 {
		t.Fatalf("expected the guaranteed yield to be granted, got %+v", granted)
	}
}

func TestSeasonalScarcityOrdering(t *testing.T) {
	if SeasonalScarcity(entity.SeasonWinter) <= SeasonalScarcity(entity.SeasonSummer) {
		t.Fatal("expected winter respawn scarcity multiplier to exceed summer's")
	}
}

func TestScheduleWildPlantRespawnAppliesSeasonalMultiplier(t *testing.T) {
	rng := platform.NewRNG(7, 9)
	now := time.Unix(1000, 0).UTC()
	winter := ScheduleWildPlantRespawn(now, entity.SeasonWinter, rng)
	if !winter.After(now) {
		t.Fatal("expected a future respawn time")
	}
}

func TestCanHarvestLivingCoralRequiresSeaAndSnorkel(t *testing.T) {
	if CanHarvestLivingCoral(true, false) {
		t.Fatal("expected no coral harvest without a snorkel")
	}
	if CanHarvestLivingCoral(false, true) {
		t.Fatal("expected no coral harvest off a sea tile")
	}
	if !CanHarvestLivingCoral(true, true) {
		t.Fatal("expected coral harvest to succeed with both conditions met")
	}
}

func TestRollDebrisKindStaysInTable(t *testing.T) {
	rng := platform.NewRNG(3, 4)
	for i := 0; i < 50; i++ {
		k := RollDebrisKind(rng)
		if k > DebrisMemoryShard {
			t.Fatalf("unexpected debris kind %d", k)
		}
	}
}

func TestDrinkSeaWaterPoisonsInsteadOfRestoringThirst(t *testing.T) {
	res := Drink(true)
	if res.ThirstRestored != 0 || res.PoisonedForSeconds != SeawaterPoisonDuration {
		t.Fatalf("expected sea water to poison instead of restore thirst, got %+v", res)
	}
	res = Drink(false)
	if res.ThirstRestored != InlandDrinkThirstRestore {
		t.Fatalf("expected inland water to restore thirst, got %+v", res)
	}
}

func TestWaterPatchGrowthMultiplierRanges(t *testing.T) {
	rng := platform.NewRNG(11, 12)
	salt := &entity.WaterPatch{IsSaltWater: true}
	for i := 0; i < 20; i++ {
		m := WaterPatchGrowthMultiplier(salt, rng)
		if m < SaltWaterGrowthMin || m > SaltWaterGrowthMax {
			t.Fatalf("salt water multiplier %v out of range", m)
		}
	}
	fresh := &entity.WaterPatch{IsSaltWater: false}
	for i := 0; i < 20; i++ {
		m := WaterPatchGrowthMultiplier(fresh, rng)
		if m < FreshWaterGrowthMin || m > FreshWaterGrowthMax {
			t.Fatalf("fresh water multiplier %v out of range", m)
		}
	}
}

func TestFillBrothPotCapsAtCapacity(t *testing.T) {
	pot := &entity.BrothPot{WaterMl: 900}
	absorbed := FillBrothPot(pot, 500)
	if absorbed != 100 || pot.WaterMl != BrothPotCapacityMl {
		t.Fatalf("expected fill to cap at capacity, got absorbed=%d waterMl=%d", absorbed, pot.WaterMl)
	}
}

func TestShouldRevertTilledTile(t *testing.T) {
	now := time.Unix(2000, 0).UTC()
	m := Till(3, 4, now)
	if ShouldRevert(m, now.Add(time.Hour)) {
		t.Fatal("tile should not revert before the 48h window elapses")
	}
	if !ShouldRevert(m, now.Add(entity.TillReversionWindow+time.Minute)) {
		t.Fatal("tile should revert once the 48h window elapses")
	}
}

func TestShouldBecomeWetRespectsImmunity(t *testing.T) {
	immune := make([]*item.ItemDefinition, 5)
	for i := range immune {
		immune[i] = &item.ItemDefinition{Immunities: map[string]float32{WetImmunityTag: WetImmunityThreshold}}
	}
	if ShouldBecomeWet(true, immune) {
		t.Fatal("expected wet-immune armour to suppress the Wet status")
	}
	if !ShouldBecomeWet(true, nil) {
		t.Fatal("expected exposure without armour to apply Wet")
	}
	if ShouldBecomeWet(false, nil) {
		t.Fatal("expected no Wet status without exposure")
	}
}

func TestResolveFishingCatchAlwaysGetsAtLeastOneFish(t *testing.T) {
	rng := platform.NewRNG(21, 22)
	catch := ResolveFishingCatch(0.5, entity.WeatherClear, rng)
	if catch.FishCount < 1 {
		t.Fatal("expected at least one fish from every cast")
	}
}
