package math

import (
	"errors"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if m[i][j] != want {
				t.Errorf("Identity[%d][%d] = %v, want %v", i, j, m[i][j], want)
			}
		}
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I should equal M, got %v", got)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * M should equal M, got %v", got)
	}
}

func TestMulOrder(t *testing.T) {
	// Scale then translate: p * (S * T) = (p * S) * T.
	s := Scale(2, 2, 2)
	tr := Translate(10, 0, 0)
	p := Vec3{1, 1, 1}

	got := s.Mul(tr).TransformPoint(p)
	want := tr.TransformPoint(s.TransformPoint(p))
	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("composed transform = %v, want %v", got, want)
	}
	if !got.ApproxEqual(Vec3{12, 2, 2}, 1e-12) {
		t.Errorf("scale then translate = %v, want (12, 2, 2)", got)
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformPointPerspectiveDivide(t *testing.T) {
	m := Identity()
	m[2][3] = 1 // w = z
	m[3][3] = 0

	got := m.TransformPoint(Vec3{4, 8, 2})
	want := Vec3{2, 4, 1}
	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("TransformPoint with weight: got %v, want %v", got, want)
	}
}

func TestTransformDirection(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{1, 2, 3})
	if got != (Vec3{1, 2, 3}) {
		t.Errorf("TransformDirection should ignore translation, got %v", got)
	}
}

func TestInvertAffineTranslation(t *testing.T) {
	m := Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{3, 10, 1, 1},
	}
	inv, err := InvertMat4(m, true)
	if err != nil {
		t.Fatalf("InvertMat4: %v", err)
	}
	if got := inv.Translation(); !got.ApproxEqual(Vec3{-3, -10, -1}, 0.005) {
		t.Errorf("inverse translation = %v, want (-3, -10, -1)", got)
	}
	if inv[3][3] != 1 {
		t.Errorf("inverse weight = %v, want 1", inv[3][3])
	}
}

func TestInvertWholeMatrix(t *testing.T) {
	m := Mat4{
		{1.0, 0.5, 3.0, 0.0},
		{5.0, 6.0, 0.6, 0.0},
		{3.0, 1.0, 11.0, -12.0},
		{13.0, 14.0, 15.0, 2.0},
	}
	want := Mat4{
		{3.85953, 1.42211, -0.12309, -0.73853},
		{-3.17385, -0.98748, 0.10014, 0.60083},
		{-0.4242, -0.30946, 0.02434, 0.14604},
		{0.31154, -0.01043, -0.08345, -0.0007},
	}

	got, err := m.Invert(false)
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	if !got.ApproxEqual(want, 0.00001) {
		t.Errorf("Invert() = %v, want %v", got, want)
	}
	if !m.Mul(got).ApproxEqual(Identity(), 1e-9) {
		t.Errorf("M * M^-1 should be identity, got %v", m.Mul(got))
	}
}

func TestInvertZeroPivotSwapsRows(t *testing.T) {
	m := Mat4{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 2, 0},
		{1, 2, 3, 1},
	}
	want := Mat4{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0.5, 0},
		{-2, -1, -1.5, 1},
	}
	got, err := InvertMat4(m, true)
	if err != nil {
		t.Fatalf("InvertMat4: %v", err)
	}
	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("InvertMat4() = %v, want %v", got, want)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	q := QuatFromEuler(0.3, 1.1, -0.4)
	m := Identity()
	q.WriteRotation(&m, Vec3{2, 0.5, 3})
	m[3] = [4]float64{-4, 7, 1.5, 1}

	for _, ignore := range []bool{true, false} {
		inv, err := InvertMat4(m, ignore)
		if err != nil {
			t.Fatalf("InvertMat4(ignore=%v): %v", ignore, err)
		}
		back, err := InvertMat4(inv, ignore)
		if err != nil {
			t.Fatalf("InvertMat4(inverse, ignore=%v): %v", ignore, err)
		}
		if !back.ApproxEqual(m, 1e-9) {
			t.Errorf("invert(invert(M)) = %v, want %v (ignore=%v)", back, m, ignore)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name   string
		m      Mat4
		ignore bool
	}{
		{
			name: "zero column",
			m: Mat4{
				{0, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 0, 1, 0},
				{0, 0, 0, 1},
			},
		},
		{
			name: "zero scale",
			m: Mat4{
				{1, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 1, 0},
				{5, 5, 5, 1},
			},
			ignore: true,
		},
		{
			name: "dependent rows",
			m: Mat4{
				{1, 2, 0, 0},
				{2, 4, 0, 0},
				{0, 0, 1, 0},
				{0, 0, 0, 1},
			},
			ignore: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InvertMat4(tt.m, tt.ignore)
			if !errors.Is(err, ErrNotInvertible) {
				t.Errorf("InvertMat4() error = %v, want ErrNotInvertible", err)
			}
		})
	}
}

func TestInvertTranslationRowIsNotAPivotCandidate(t *testing.T) {
	// Column 0 is zero in every rotation row; only the translation row has an
	// entry there, which must not be swapped in.
	m := Mat4{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 1, 0},
		{7, 0, 0, 1},
	}
	if _, err := InvertMat4(m, true); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("InvertMat4() error = %v, want ErrNotInvertible", err)
	}
}

func TestApproxEqual(t *testing.T) {
	a := Identity()
	b := Identity()
	b[1][2] = 1e-7
	if !a.ApproxEqual(b, 1e-6) {
		t.Error("matrices within tolerance should compare equal")
	}
	if a.ApproxEqual(b, 1e-8) {
		t.Error("matrices outside tolerance should not compare equal")
	}
}
