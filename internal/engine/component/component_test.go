package component

import (
	"sort"
	"testing"
)

type health struct {
	hp int
}

func (*health) ComponentType() Type { return "Health" }

type label struct {
	text string
}

func (*label) ComponentType() Type { return "Label" }

// impostor shares the Health tag with a different Go type.
type impostor struct{}

func (impostor) ComponentType() Type { return "Health" }

func TestGetComponentMissing(t *testing.T) {
	s := NewStore()
	if c, ok := GetComponent[*health](s); ok || c != nil {
		t.Errorf("GetComponent on empty store = (%v, %v), want (nil, false)", c, ok)
	}
	if HasComponent[*health](s) {
		t.Error("HasComponent on empty store should be false")
	}
}

func TestAddAndGet(t *testing.T) {
	s := NewStore()
	h := &health{hp: 10}
	if replaced := AddComponent(s, h); replaced {
		t.Error("first AddComponent should not report a replacement")
	}
	AddComponent(s, &label{text: "crate"})

	got, ok := GetComponent[*health](s)
	if !ok || got != h {
		t.Fatalf("GetComponent[*health] = (%v, %v), want the attached instance", got, ok)
	}
	l, ok := GetComponent[*label](s)
	if !ok || l.text != "crate" {
		t.Errorf("GetComponent[*label] = (%v, %v)", l, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	types := s.Types()
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	if len(types) != 2 || types[0] != "Health" || types[1] != "Label" {
		t.Errorf("Types() = %v, want [Health Label]", types)
	}
}

func TestGetComponentIsMutable(t *testing.T) {
	s := NewStore()
	AddComponent(s, &health{hp: 10})

	h, _ := GetComponent[*health](s)
	h.hp -= 3

	again, _ := GetComponent[*health](s)
	if again.hp != 7 {
		t.Errorf("hp = %d after mutation, want 7", again.hp)
	}
}

func TestAddReplacesSameType(t *testing.T) {
	s := NewStore()
	AddComponent(s, &health{hp: 1})
	if replaced := AddComponent(s, &health{hp: 2}); !replaced {
		t.Error("second AddComponent of the same type should report a replacement")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	h, _ := GetComponent[*health](s)
	if h.hp != 2 {
		t.Errorf("hp = %d, want the replacement's 2", h.hp)
	}
}

func TestTagCollisionWithOtherGoType(t *testing.T) {
	s := NewStore()
	AddComponent(s, impostor{})
	if _, ok := GetComponent[*health](s); ok {
		t.Error("a component of another Go type must not be returned under the same tag")
	}
}

func TestRemoveComponent(t *testing.T) {
	s := NewStore()
	AddComponent(s, &label{text: "x"})
	if !RemoveComponent[*label](s) {
		t.Error("RemoveComponent should report the removed component")
	}
	if RemoveComponent[*label](s) {
		t.Error("second RemoveComponent should report nothing removed")
	}
	if HasComponent[*label](s) {
		t.Error("component still attached after removal")
	}
}

func TestZeroValueStore(t *testing.T) {
	var s Store
	if _, ok := GetComponent[*label](&s); ok {
		t.Error("zero store should be empty")
	}
	AddComponent(&s, &label{text: "lazy"})
	if !HasComponent[*label](&s) {
		t.Error("zero store should accept components")
	}
}
