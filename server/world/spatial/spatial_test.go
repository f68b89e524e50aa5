package spatial

import (
	"testing"
	"time"
)

type fakeSource struct {
	statics  []posRef
	dynamics []posRef
	shelters []shelterBox
}

type posRef struct {
	x, y float64
	ref  Ref
}

type shelterBox struct {
	id                     uint64
	minX, minY, maxX, maxY float64
}

func (f *fakeSource) StaticEntities(yield func(x, y float64, ref Ref)) {
	for _, p := range f.statics {
		yield(p.x, p.y, p.ref)
	}
}

func (f *fakeSource) DynamicEntities(yield func(x, y float64, ref Ref)) {
	for _, p := range f.dynamics {
		yield(p.x, p.y, p.ref)
	}
}

func (f *fakeSource) Shelters(yield func(id uint64, minX, minY, maxX, maxY float64)) {
	for _, s := range f.shelters {
		yield(s.id, s.minX, s.minY, s.maxX, s.maxY)
	}
}

func containsRef(refs []Ref, want Ref) bool {
	for _, r := range refs {
		if r == want {
			return true
		}
	}
	return false
}

func TestEntitiesInRangeCompleteness(t *testing.T) {
	// A point near a cell boundary must still see an entity in the
	// neighbouring cell, since InRange scans a 3x3 neighbourhood.
	src := &fakeSource{
		statics: []posRef{{x: CellSize + 1, y: CellSize + 1, ref: Ref{Kind: KindTree, ID: 1}}},
	}
	c := NewCache(src, 100000, 100000)
	now := time.Unix(0, 0)

	got := c.InRange(now, CellSize-1, CellSize-1)
	if !containsRef(got, Ref{Kind: KindTree, ID: 1}) {
		t.Fatalf("expected neighbouring-cell tree to be present in InRange, got %v", got)
	}
}

func TestStaticCacheRebuildsOnlyOnInvalidation(t *testing.T) {
	src := &fakeSource{statics: []posRef{{x: 10, y: 10, ref: Ref{Kind: KindTree, ID: 1}}}}
	c := NewCache(src, 10000, 10000)
	now := time.Unix(0, 0)

	got := c.At(now, 10, 10)
	if !containsRef(got, Ref{Kind: KindTree, ID: 1}) {
		t.Fatalf("expected tree 1 at (10,10)")
	}

	// Mutate the source without invalidating: the cache must not see it.
	src.statics = append(src.statics, posRef{x: 10, y: 10, ref: Ref{Kind: KindTree, ID: 2}})
	got = c.At(now, 10, 10)
	if containsRef(got, Ref{Kind: KindTree, ID: 2}) {
		t.Fatalf("static cache should not reflect uninvalidated mutation")
	}

	c.InvalidateStatic()
	got = c.At(now, 10, 10)
	if !containsRef(got, Ref{Kind: KindTree, ID: 2}) {
		t.Fatalf("expected tree 2 visible after InvalidateStatic")
	}
}

func TestDynamicCacheRespectsRefreshInterval(t *testing.T) {
	src := &fakeSource{}
	c := NewCache(src, 10000, 10000)
	now := time.Unix(0, 0)

	_ = c.At(now, 10, 10)

	src.dynamics = append(src.dynamics, posRef{x: 10, y: 10, ref: Ref{Kind: KindPlayer, ID: 9}})
	got := c.At(now.Add(100*time.Millisecond), 10, 10)
	if containsRef(got, Ref{Kind: KindPlayer, ID: 9}) {
		t.Fatalf("dynamic cache should not refresh before DynamicRefreshInterval elapses")
	}

	got = c.At(now.Add(DynamicRefreshInterval+time.Millisecond), 10, 10)
	if !containsRef(got, Ref{Kind: KindPlayer, ID: 9}) {
		t.Fatalf("dynamic cache should refresh once DynamicRefreshInterval elapses")
	}
}

func TestShelterRasterisedAcrossOverlappingCells(t *testing.T) {
	src := &fakeSource{
		shelters: []shelterBox{{id: 5, minX: 0, minY: 0, maxX: CellSize * 2, maxY: 0}},
	}
	c := NewCache(src, 10000, 10000)
	now := time.Unix(0, 0)

	cell0 := c.At(now, 10, 10)
	cell1 := c.At(now, CellSize+10, 10)
	if !containsRef(cell0, Ref{Kind: KindShelter, ID: 5}) {
		t.Fatalf("shelter should be present in its origin cell")
	}
	if !containsRef(cell1, Ref{Kind: KindShelter, ID: 5}) {
		t.Fatalf("shelter should be rasterised into the overlapping neighbour cell")
	}
}

func TestEntityKindIsStatic(t *testing.T) {
	if !KindTree.IsStatic() {
		t.Fatalf("trees should be classified static")
	}
	if KindPlayer.IsStatic() {
		t.Fatalf("players should be classified dynamic")
	}
}
