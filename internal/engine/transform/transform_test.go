package transform

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/softraster/pkg/math"
)

func TestNewIsIdentity(t *testing.T) {
	tr := New()
	if tr.Matrix() != math.Identity() {
		t.Errorf("new transform matrix = %v, want identity", tr.Matrix())
	}
	if tr.Dirty() {
		t.Error("new transform should not be dirty")
	}
	inv, err := tr.InverseMatrix()
	if err != nil {
		t.Fatalf("InverseMatrix: %v", err)
	}
	if inv != math.Identity() {
		t.Errorf("new transform inverse = %v, want identity", inv)
	}
}

func TestTranslate(t *testing.T) {
	tr := New()
	tr.Translate(math.V3(1, 2, 3))
	tr.Translate(math.V3(1, 0, -1))

	if got := tr.Position(); got != math.V3(2, 2, 2) {
		t.Errorf("Position() = %v, want (2, 2, 2)", got)
	}
	if !tr.Dirty() {
		t.Error("Translate should mark the inverse stale")
	}
	if got := tr.ToWorldSpace(math.V3(1, 1, 1)); got != math.V3(3, 3, 3) {
		t.Errorf("ToWorldSpace() = %v, want (3, 3, 3)", got)
	}
}

func TestDirtyClearsOnlyOnRecompute(t *testing.T) {
	tr := New()
	tr.Rotate(0, 0.5, 0)
	if !tr.Dirty() {
		t.Fatal("Rotate should mark the inverse stale")
	}

	// Reading the forward matrix must not refresh the inverse.
	_ = tr.Matrix()
	_ = tr.ToWorldSpace(math.V3(1, 0, 0))
	if !tr.Dirty() {
		t.Fatal("forward reads should leave the inverse stale")
	}

	if _, err := tr.InverseMatrix(); err != nil {
		t.Fatalf("InverseMatrix: %v", err)
	}
	if tr.Dirty() {
		t.Error("InverseMatrix should clear the stale flag")
	}
}

func TestInverseIsCached(t *testing.T) {
	tr := New()
	tr.Translate(math.V3(4, 5, 6))

	first, err := tr.InverseMatrix()
	if err != nil {
		t.Fatalf("InverseMatrix: %v", err)
	}
	second, err := tr.InverseMatrix()
	if err != nil {
		t.Fatalf("InverseMatrix: %v", err)
	}
	if first != second {
		t.Errorf("cached inverse changed between calls: %v vs %v", first, second)
	}
	if got := first.Translation(); got != math.V3(-4, -5, -6) {
		t.Errorf("inverse translation = %v, want (-4, -5, -6)", got)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Transform)
	}{
		{"translate", func(tr *Transform) { tr.Translate(math.V3(10, -2, 7)) }},
		{"rotate", func(tr *Transform) { tr.Rotate(0.3, 1.2, -0.8) }},
		{"scale", func(tr *Transform) { tr.SetScale(math.V3(2, 0.5, 3)) }},
		{"everything", func(tr *Transform) {
			tr.SetScale(math.V3(1.5, 1.5, 0.25))
			tr.Rotate(1, 1, 1)
			tr.Translate(math.V3(-3, 4, 100))
			tr.Rotate(0, -0.4, 2)
		}},
	}

	points := []math.Vec3{{}, {X: 1}, {X: 5, Y: 3, Z: 12}, {X: -7, Y: 0.25, Z: -1e3}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			tt.setup(tr)
			for _, p := range points {
				got, err := tr.ToLocalSpace(tr.ToWorldSpace(p))
				if err != nil {
					t.Fatalf("ToLocalSpace: %v", err)
				}
				if !got.ApproxEqual(p, 1e-9*(1+p.Length())) {
					t.Errorf("round trip of %v = %v", p, got)
				}
			}
		})
	}
}

func TestRotateAccumulates(t *testing.T) {
	tr := New()
	for i := 0; i < 4; i++ {
		tr.Rotate(0, gomath.Pi/8, 0)
	}
	// Four eighth-turns make a quarter turn about Y: +X goes to -Z.
	got := tr.ToWorldSpace(math.V3(1, 0, 0))
	if !got.ApproxEqual(math.V3(0, 0, -1), 1e-9) {
		t.Errorf("accumulated rotation = %v, want (0, 0, -1)", got)
	}
}

func TestRotateManySmallStepsStaysRigid(t *testing.T) {
	tr := New()
	for i := 0; i < 10000; i++ {
		tr.Rotate(0.001, 0.002, 0.003)
	}
	if l := tr.ToWorldSpace(math.V3(1, 0, 0)).Length(); gomath.Abs(l-1) > 0.11 {
		t.Errorf("unit vector length after many rotations = %v, want ~1", l)
	}
	if q := tr.Rotation().LengthSquared(); gomath.Abs(1-q) >= 0.21 {
		t.Errorf("rotation |q|^2 = %v drifted past the normalize tolerance", q)
	}
}

func TestRotateKeepsTranslation(t *testing.T) {
	tr := New()
	tr.Translate(math.V3(1, 2, 3))
	tr.Rotate(0.5, 0.5, 0.5)
	if got := tr.Position(); got != math.V3(1, 2, 3) {
		t.Errorf("Rotate moved the translation to %v", got)
	}
}

func TestZeroScaleIsNotInvertible(t *testing.T) {
	tr := New()
	tr.Translate(math.V3(1, 1, 1))
	before, err := tr.InverseMatrix()
	if err != nil {
		t.Fatalf("InverseMatrix: %v", err)
	}

	tr.SetScale(math.V3(1, 0, 1))
	got, err := tr.InverseMatrix()
	if !errors.Is(err, math.ErrNotInvertible) {
		t.Fatalf("InverseMatrix() error = %v, want ErrNotInvertible", err)
	}
	if got != before {
		t.Errorf("failed inversion should return the previous inverse, got %v", got)
	}
	if !tr.Dirty() {
		t.Error("failed inversion must leave the transform dirty")
	}
	if _, err := tr.ToLocalSpace(math.V3(0, 0, 0)); !errors.Is(err, math.ErrNotInvertible) {
		t.Errorf("ToLocalSpace() error = %v, want ErrNotInvertible", err)
	}

	// Restoring the scale recovers.
	tr.SetScale(math.V3(1, 1, 1))
	if _, err := tr.InverseMatrix(); err != nil {
		t.Errorf("InverseMatrix after restoring scale: %v", err)
	}
}

func TestAffineMatchesMatrix(t *testing.T) {
	tr := New()
	tr.SetScale(math.V3(2, 1, 0.5))
	tr.Rotate(0.3, -1.1, 0.7)
	tr.SetPosition(math.V3(4, -2, 9))

	if !tr.Affine().Mat4().ApproxEqual(tr.Matrix(), 0) {
		t.Errorf("Affine().Mat4() = %v, want %v", tr.Affine().Mat4(), tr.Matrix())
	}
	p := math.V3(1, -3, 2)
	if got, want := tr.ToWorldSpace(p), tr.Matrix().TransformPoint(p); !got.ApproxEqual(want, 1e-12) {
		t.Errorf("ToWorldSpace(%v) = %v, want %v", p, got, want)
	}
}
