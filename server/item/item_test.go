package item

import (
	"errors"
	"testing"
)

func TestSameVariant(t *testing.T) {
	tests := []struct {
		name string
		a, b Location
		want bool
	}{
		{"both hotbar", Hotbar{SlotIndex: 0}, Hotbar{SlotIndex: 3}, true},
		{"hotbar vs inventory", Hotbar{}, Inventory{}, false},
		{"container vs container different slot", Container{ContainerID: 1, SlotIndex: 0}, Container{ContainerID: 1, SlotIndex: 2}, true},
		{"dropped vs unknown", Dropped{}, Unknown{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameVariant(tt.a, tt.b); got != tt.want {
				t.Fatalf("SameVariant(%#v, %#v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCheckStackLimit(t *testing.T) {
	def := &ItemDefinition{StackSize: 1000}

	if err := CheckStackLimit(def, 500); err != nil {
		t.Fatalf("CheckStackLimit(500) = %v, want nil", err)
	}
	if err := CheckStackLimit(def, 1000); err != nil {
		t.Fatalf("CheckStackLimit(stack size) = %v, want nil", err)
	}
	if err := CheckStackLimit(def, 0); err != nil {
		t.Fatalf("CheckStackLimit(0) = %v, want nil (0 signals deletion, not error)", err)
	}
	if err := CheckStackLimit(def, 1001); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("CheckStackLimit(over stack size) = %v, want ErrInvalidQuantity", err)
	}
	if err := CheckStackLimit(def, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("CheckStackLimit(-1) = %v, want ErrInvalidQuantity", err)
	}
}

func TestSpareCapacity(t *testing.T) {
	def := &ItemDefinition{StackSize: 64}
	if got := SpareCapacity(def, 10); got != 54 {
		t.Fatalf("SpareCapacity(10) = %d, want 54", got)
	}
	if got := SpareCapacity(def, 64); got != 0 {
		t.Fatalf("SpareCapacity(64) = %d, want 0", got)
	}
	if got := SpareCapacity(def, 70); got != 0 {
		t.Fatalf("SpareCapacity(over-full) = %d, want 0", got)
	}
}
