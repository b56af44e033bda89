package roster

import (
	"errors"
	"testing"
)

func TestCopyWithinRegistry(t *testing.T) {
	healthComp := FactoryNewComponent[Health]()
	reg := Factory.NewRegistry(healthComp)

	e1, _ := reg.Create()
	healthComp.Add(reg, e1, Health{Current: 7, Max: 10})

	e2, err := Copy(e1, reg, reg)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if !reg.Valid(e2) {
		t.Fatal("copied entity not valid")
	}
	if !healthComp.Has(reg, e2) {
		t.Fatal("copied entity missing component")
	}
	if got := healthComp.GetIf(reg, e2); *got != (Health{Current: 7, Max: 10}) {
		t.Errorf("copied value = %+v, want {7 10}", got)
	}

	// The copy is independent storage, not a shared slot.
	healthComp.GetIf(reg, e2).Current = 1
	if healthComp.GetIf(reg, e1).Current != 7 {
		t.Error("mutating the copy changed the source")
	}
}

func TestCopyAcrossRegistries(t *testing.T) {
	healthComp := FactoryNewComponent[Health]()
	reg1 := Factory.NewRegistry(healthComp)
	reg2 := Factory.NewRegistry(healthComp)

	e1, _ := reg1.Create()
	healthComp.Add(reg1, e1, Health{Current: 3})

	e2, err := Copy(e1, reg1, reg2)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if !reg2.Valid(e2) {
		t.Fatal("copied entity not valid in destination")
	}
	if !healthComp.Has(reg2, e2) {
		t.Fatal("destination missing component")
	}
	if got := healthComp.GetIf(reg2, e2); got.Current != 3 {
		t.Errorf("copied value = %+v, want Current 3", got)
	}

	// Source registry and entity are untouched.
	if !reg1.Valid(e1) || reg1.Size() != 1 {
		t.Error("source registry mutated by copy")
	}
	if got := healthComp.GetIf(reg1, e1); got.Current != 3 {
		t.Error("source value mutated by copy")
	}
}

func TestCopySkipsAbsentKinds(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	reg := Factory.NewRegistry(posComp, velComp)

	e1, _ := reg.Create()
	posComp.Add(reg, e1, Position{X: 2})

	e2, err := Copy(e1, reg, reg)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if !posComp.Has(reg, e2) {
		t.Error("present kind not copied")
	}
	if velComp.Has(reg, e2) {
		t.Error("absent kind appeared on the copy")
	}
}

func TestCopyOverKindIntersection(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	src := Factory.NewRegistry(posComp, velComp)
	dst := Factory.NewRegistry(posComp)

	e1, _ := src.Create()
	posComp.Add(src, e1, Position{X: 5})
	velComp.Add(src, e1, Velocity{X: 9})

	// Only kinds registered in both registries transfer.
	e2, err := Copy(e1, src, dst)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if got := posComp.GetIf(dst, e2); got == nil || got.X != 5 {
		t.Errorf("position on copy = %+v, want X 5", got)
	}
	if velComp.Has(dst, e2) {
		t.Error("kind unregistered in destination was copied")
	}
}

func TestCopyInvalidSource(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	reg := Factory.NewRegistry(posComp)

	e, _ := reg.Create()
	reg.Destroy(e)

	if _, err := Copy(e, reg, reg); !errors.As(err, &InvalidEntityError{}) {
		t.Errorf("copy of stale entity = %v, want InvalidEntityError", err)
	}
	if reg.Size() != 0 {
		t.Errorf("size = %d, want 0", reg.Size())
	}
}

func TestCopyIntoFullBoundedRegistry(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	src := Factory.NewRegistry(posComp)
	dst := Factory.NewBoundedRegistry(1, posComp)

	e, _ := src.Create()
	posComp.Add(src, e, Position{})
	dst.Create()

	_, err := Copy(e, src, dst)
	if !errors.As(err, &CapacityError{}) {
		t.Fatalf("copy into full registry = %v, want CapacityError", err)
	}
	if dst.Size() != 1 {
		t.Errorf("destination size = %d, want 1", dst.Size())
	}
}
