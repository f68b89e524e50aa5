package ai

import (
	"testing"
	"time"

	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

func TestBeeDiesNearFireSource(t *testing.T) {
	a := &entity.WildAnimal{ID: 1, Species: SpeciesBee.String(), Health: 5, MaxHealth: 5}
	fires := []entity.Position{{X: 10, Y: 10}}
	a.Pos = entity.Position{X: 11, Y: 10}

	rng := platform.NewRNG(1, 2)
	changed := Tick(a, nil, fires, time.Unix(0, 0), 1.0, rng, nil)

	if !changed {
		t.Fatalf("Tick should report a change when the bee dies")
	}
	if a.Health != 0 {
		t.Fatalf("Health = %d, want 0", a.Health)
	}
	if a.State != entity.StateDespawning {
		t.Fatalf("State = %v, want StateDespawning", a.State)
	}
}

func TestBeeSurvivesAwayFromFire(t *testing.T) {
	a := &entity.WildAnimal{ID: 2, Species: SpeciesBee.String(), Health: 5, MaxHealth: 5}
	a.Pos = entity.Position{X: 1000, Y: 1000}
	fires := []entity.Position{{X: 10, Y: 10}}

	rng := platform.NewRNG(1, 2)
	Tick(a, nil, fires, time.Unix(0, 0), 1.0, rng, nil)

	if a.Health != 5 {
		t.Fatalf("Health = %d, want unchanged at 5", a.Health)
	}
}

func TestWolfIntimidatedByFurWorn(t *testing.T) {
	w := wolfBehavior{}
	stats := w.GetStats()
	target := &PlayerContext{WearsFur: true}
	if w.ShouldChasePlayer(&entity.WildAnimal{}, target, stats.ChaseTriggerRange-1) {
		t.Fatalf("wolf should not chase a player wearing fur")
	}
}

func TestWolfChasesUnarmoredPlayerWithinRange(t *testing.T) {
	w := wolfBehavior{}
	stats := w.GetStats()
	target := &PlayerContext{}
	if !w.ShouldChasePlayer(&entity.WildAnimal{}, target, stats.ChaseTriggerRange-1) {
		t.Fatalf("wolf should chase an unarmored player within trigger range")
	}
}

func TestPolarBearAbandonsChaseSoonerWhenFatigued(t *testing.T) {
	p := polarBearBehavior{}
	stats := p.GetStats()
	a := &entity.WildAnimal{State: entity.StateChasing, StateChangeTime: time.Unix(0, 0)}

	freshMultiplier := p.GetChaseAbandonmentMultiplier(a, time.Unix(0, 0).Add(time.Second))
	if freshMultiplier != 1 {
		t.Fatalf("fresh chase multiplier = %v, want 1", freshMultiplier)
	}

	fatiguedMultiplier := p.GetChaseAbandonmentMultiplier(a, time.Unix(0, 0).Add(FatigueChaseDuration+time.Second))
	if fatiguedMultiplier != FatigueAbandonMultiplier {
		t.Fatalf("fatigued chase multiplier = %v, want %v", fatiguedMultiplier, FatigueAbandonMultiplier)
	}
	if !abandonChase(stats.ChaseAbandonRange*0.5, stats.ChaseAbandonRange, fatiguedMultiplier) {
		t.Fatalf("fatigued bear should abandon a chase well inside its raw abandon range")
	}
}

func TestShardkinHesitatesAtFlashlight(t *testing.T) {
	rng := platform.NewRNG(7, 9)
	triggeredOnce := false
	for i := 0; i < 50; i++ {
		if flashlightHesitationTriggered(true, rng.Float32(), FlashlightHesitationChance) {
			triggeredOnce = true
			break
		}
	}
	if !triggeredOnce {
		t.Fatalf("flashlight hesitation should trigger at least once over 50 rolls at chance %v", FlashlightHesitationChance)
	}
	if flashlightHesitationTriggered(false, 0, FlashlightHesitationChance) {
		t.Fatalf("hesitation must never trigger when the player holds no flashlight")
	}
}

func TestSalmonSharkDispatchIsAquatic(t *testing.T) {
	if !SpeciesSalmonShark.IsAquatic() {
		t.Fatalf("salmon shark should be flagged aquatic")
	}
	if SpeciesWolf.IsAquatic() {
		t.Fatalf("wolf should not be flagged aquatic")
	}
}

func TestSpeciesFromStringRoundTrips(t *testing.T) {
	for sp := SpeciesBee; sp <= SpeciesNightStalker; sp++ {
		if got := speciesFromString(sp.String()); got != sp {
			t.Fatalf("speciesFromString(%q) = %v, want %v", sp.String(), got, sp)
		}
	}
	if got := speciesFromString("nonsense"); got != SpeciesCrab {
		t.Fatalf("speciesFromString(nonsense) = %v, want fallback SpeciesCrab", got)
	}
}

func TestGenericBehaviorFleeAtLowHealth(t *testing.T) {
	g := Dispatch(SpeciesFox)
	stats := g.GetStats()
	a := &entity.WildAnimal{Health: int(stats.FleeHealthThreshold*float32(stats.MaxHealth)) - 1, MaxHealth: stats.MaxHealth, State: entity.StateIdle}
	rng := platform.NewRNG(3, 4)
	next, reason := g.UpdateAIStateLogic(a, nil, 0, 1.0, time.Unix(0, 0), rng)
	if next != entity.StateFleeing {
		t.Fatalf("next state = %v (reason %q), want StateFleeing", next, reason)
	}
}

func TestPackAlertOnlyUpdatesUntargetedPackmates(t *testing.T) {
	members := []*entity.WildAnimal{
		{ID: 1, PackID: 42, HasPack: true},
		{ID: 2, PackID: 42, HasPack: true, HasTarget: true, TargetPlayer: platform.Identity{}},
		{ID: 3, PackID: 99, HasPack: true},
	}
	target := platform.System
	PackAlert(42, target, members)

	if members[0].State != entity.StateChasing || !members[0].HasTarget {
		t.Fatalf("untargeted packmate should adopt the alert and start chasing")
	}
	if members[2].State == entity.StateChasing {
		t.Fatalf("a wolf from a different pack must not be alerted")
	}
}

func TestAssignPackIsDeterministic(t *testing.T) {
	a := []*entity.WildAnimal{{ID: 1}, {ID: 2}}
	b := []*entity.WildAnimal{{ID: 3}}
	AssignPack(a, "spawn-group-7")
	AssignPack(b, "spawn-group-7")
	if a[0].PackID != b[0].PackID {
		t.Fatalf("the same spawn group seed must yield the same PackID")
	}
	if a[0].PackID != a[1].PackID {
		t.Fatalf("members of one AssignPack call must share a PackID")
	}
}
