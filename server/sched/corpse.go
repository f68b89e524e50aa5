package sched

import (
	"github.com/driftlands/survivalcore/server/entity"
	"github.com/driftlands/survivalcore/server/platform"
)

// ExpiredAnimalCorpses implements the cleanup_expired_animal_corpses
// scheduled reducer: reports which animal corpses should despawn,
// either because their despawn timer elapsed or they were fully
// harvested (health reached zero).
func ExpiredAnimalCorpses(tx *platform.Tx, corpses []*entity.AnimalCorpse) ([]*entity.AnimalCorpse, error) {
	if err := tx.RequireSystem(); err != nil {
		return nil, err
	}
	now := tx.Now()
	var expired []*entity.AnimalCorpse
	for _, c := range corpses {
		if c.Health <= 0 || !now.Before(c.DespawnAt) {
			expired = append(expired, c)
		}
	}
	return expired, nil
}

// ExpiredPlayerCorpses mirrors ExpiredAnimalCorpses for player corpses,
// which have no harvestable health pool and expire purely on timer.
func ExpiredPlayerCorpses(tx *platform.Tx, corpses []*entity.PlayerCorpse) ([]*entity.PlayerCorpse, error) {
	if err := tx.RequireSystem(); err != nil {
		return nil, err
	}
	now := tx.Now()
	var expired []*entity.PlayerCorpse
	for _, c := range corpses {
		if !now.Before(c.DespawnAt) {
			expired = append(expired, c)
		}
	}
	return expired, nil
}
