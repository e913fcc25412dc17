package style

import (
	"slices"
	"sync"
	"testing"

	"github.com/gogpu/plinth"
)

func TestRegistryResolve(t *testing.T) {
	c := plinth.RGB(1, 2, 3)
	r := NewRegistry()
	r.Upsert(Class{Name: "a", Color: &c})

	got, ok := r.Resolve("a", SlotColor)
	if !ok || got != c {
		t.Errorf("Resolve(a, color) = %v, %v; want %v, true", got, ok, c)
	}
	if _, ok := r.Resolve("a", SlotBackgroundColor); ok {
		t.Error("Resolve(a, background_color) should be absent")
	}
	if _, ok := r.Resolve("missing", SlotColor); ok {
		t.Error("Resolve(missing) should be absent")
	}
}

func TestRegistryUpsertReplacesWholeClass(t *testing.T) {
	r := NewRegistry()
	r.Upsert(NewClass("a").WithColor(plinth.Red).WithBorderColor(plinth.Green))
	r.Upsert(NewClass("a").WithBackgroundColor(plinth.Blue))

	if _, ok := r.Resolve("a", SlotColor); ok {
		t.Error("color slot survived a replacing upsert")
	}
	if _, ok := r.Resolve("a", SlotBorderColor); ok {
		t.Error("border slot survived a replacing upsert")
	}
	if got, ok := r.Resolve("a", SlotBackgroundColor); !ok || got != plinth.Blue {
		t.Errorf("background = %v, %v; want Blue", got, ok)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryDoesNotAliasCaller(t *testing.T) {
	c := plinth.Red
	r := NewRegistry()
	r.Upsert(Class{Name: "a", Color: &c})
	c = plinth.Blue

	got, _ := r.Resolve("a", SlotColor)
	if got != plinth.Red {
		t.Errorf("registry aliased caller memory: got %v", got)
	}

	cls, ok := r.Class("a")
	if !ok {
		t.Fatal("Class(a) missing")
	}
	*cls.Color = plinth.Green
	if got, _ := r.Resolve("a", SlotColor); got != plinth.Red {
		t.Errorf("Class() result aliased registry state: got %v", got)
	}
}

func TestRegistryRemoveAndNames(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"c", "a", "b"} {
		r.Upsert(NewClass(n))
	}
	if got := r.Names(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Names() = %v", got)
	}
	r.Remove("b")
	r.Remove("unknown")
	if _, ok := r.Class("b"); ok {
		t.Error("b still present after Remove")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Upsert(NewClass("shared").WithColor(plinth.RGB(uint8(i), 0, 0)))
		}(i)
		go func() {
			defer wg.Done()
			r.Resolve("shared", SlotColor)
		}()
	}
	wg.Wait()
	if _, ok := r.Resolve("shared", SlotColor); !ok {
		t.Error("shared class missing after concurrent upserts")
	}
}

func TestSlotString(t *testing.T) {
	tests := map[Slot]string{
		SlotColor:           "color",
		SlotBackgroundColor: "background_color",
		SlotBorderColor:     "border_color",
		Slot(42):            "unknown",
	}
	for slot, want := range tests {
		if got := slot.String(); got != want {
			t.Errorf("Slot(%d).String() = %q, want %q", slot, got, want)
		}
	}
}
