package farseer_test

import (
	"math"
	"testing"

	farseer "github.com/EIGHTFINITE-Vendor/farseer-physics"
)

const tol = 1e-9

func vecNear(a, b farseer.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestVec2Normalize(t *testing.T) {
	v := farseer.MakeVec2(3.0, 4.0)
	length := v.Normalize()

	if math.Abs(length-5.0) > tol {
		t.Errorf("expected length 5, got %v", length)
	}
	if !vecNear(v, farseer.MakeVec2(0.6, 0.8), tol) {
		t.Errorf("expected (0.6, 0.8), got %v", v)
	}
}

func TestVec2NormalizeNearZero(t *testing.T) {
	v := farseer.MakeVec2(farseer.Epsilon*0.5, 0.0)
	before := v

	length := v.Normalize()

	if length != 0.0 {
		t.Errorf("expected length 0 for degenerate vector, got %v", length)
	}
	if v != before {
		t.Errorf("degenerate normalize should leave vector unchanged, got %v", v)
	}
}

func TestVec2SkewPerpendicular(t *testing.T) {
	v := farseer.MakeVec2(2.5, -1.5)
	if d := farseer.Vec2Dot(v.Skew(), v); math.Abs(d) > tol {
		t.Errorf("skew should be perpendicular, dot = %v", d)
	}
}

func TestVec2CrossIdentity(t *testing.T) {
	// w k % (rx i + ry j) = w * (-ry i + rx j)
	w := 3.0
	r := farseer.MakeVec2(1.5, -2.0)

	got := farseer.Vec2CrossScalarVector(w, r)
	want := farseer.MakeVec2(-w*r.Y, w*r.X)

	if !vecNear(got, want, tol) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMat22Solve(t *testing.T) {
	// A = [2 1; 1 3], column major
	var A farseer.Mat22
	A.Ex = farseer.MakeVec2(2.0, 1.0)
	A.Ey = farseer.MakeVec2(1.0, 3.0)

	// b = A * (1, 2)
	x := A.Solve(farseer.MakeVec2(4.0, 7.0))

	if !vecNear(x, farseer.MakeVec2(1.0, 2.0), tol) {
		t.Errorf("expected (1, 2), got %v", x)
	}
}

func TestMat22GetInverse(t *testing.T) {
	var A farseer.Mat22
	A.Ex = farseer.MakeVec2(4.0, 1.0)
	A.Ey = farseer.MakeVec2(2.0, 3.0)

	inv := A.GetInverse()

	// inv * A = I
	c1 := farseer.Vec2Mat22Mul(inv, A.Ex)
	c2 := farseer.Vec2Mat22Mul(inv, A.Ey)

	if !vecNear(c1, farseer.MakeVec2(1.0, 0.0), tol) || !vecNear(c2, farseer.MakeVec2(0.0, 1.0), tol) {
		t.Errorf("inverse check failed: %v %v", c1, c2)
	}
}

func TestMat33Solve33(t *testing.T) {
	// Symmetric positive definite, the shape the weld effective mass takes.
	// A = [2 1 0; 1 3 1; 0 1 4]
	var A farseer.Mat33
	A.Ex = farseer.MakeVec3(2.0, 1.0, 0.0)
	A.Ey = farseer.MakeVec3(1.0, 3.0, 1.0)
	A.Ez = farseer.MakeVec3(0.0, 1.0, 4.0)

	// b = A * (1, 2, 3)
	x := A.Solve33(farseer.MakeVec3(4.0, 10.0, 14.0))

	if math.Abs(x.X-1.0) > tol || math.Abs(x.Y-2.0) > tol || math.Abs(x.Z-3.0) > tol {
		t.Errorf("expected (1, 2, 3), got %v", x)
	}
}

func TestMat33Solve22(t *testing.T) {
	var A farseer.Mat33
	A.Ex = farseer.MakeVec3(2.0, 1.0, 0.0)
	A.Ey = farseer.MakeVec3(1.0, 3.0, 1.0)
	A.Ez = farseer.MakeVec3(0.0, 1.0, 4.0)

	// Uses only the upper-left 2x2 block: [2 1; 1 3]
	x := A.Solve22(farseer.MakeVec2(4.0, 7.0))

	if !vecNear(x, farseer.MakeVec2(1.0, 2.0), tol) {
		t.Errorf("expected (1, 2), got %v", x)
	}
}

func TestMat33GetSymInverse33(t *testing.T) {
	var A farseer.Mat33
	A.Ex = farseer.MakeVec3(2.0, 1.0, 0.0)
	A.Ey = farseer.MakeVec3(1.0, 3.0, 1.0)
	A.Ez = farseer.MakeVec3(0.0, 1.0, 4.0)

	var inv farseer.Mat33
	A.GetSymInverse33(&inv)

	// inv * A = I, column by column.
	cols := []farseer.Vec3{A.Ex, A.Ey, A.Ez}
	want := []farseer.Vec3{
		farseer.MakeVec3(1, 0, 0),
		farseer.MakeVec3(0, 1, 0),
		farseer.MakeVec3(0, 0, 1),
	}
	for i := range cols {
		got := farseer.Vec3Mat33Mul(inv, cols[i])
		if math.Abs(got.X-want[i].X) > tol || math.Abs(got.Y-want[i].Y) > tol || math.Abs(got.Z-want[i].Z) > tol {
			t.Errorf("column %d: expected %v, got %v", i, want[i], got)
		}
	}
}

func TestFloatClamp(t *testing.T) {
	if got := farseer.FloatClamp(5.0, -1.0, 1.0); got != 1.0 {
		t.Errorf("expected 1, got %v", got)
	}
	if got := farseer.FloatClamp(-5.0, -1.0, 1.0); got != -1.0 {
		t.Errorf("expected -1, got %v", got)
	}
	if got := farseer.FloatClamp(0.5, -1.0, 1.0); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
}

func TestRotRoundTrip(t *testing.T) {
	q := farseer.MakeRotFromAngle(0.7)
	v := farseer.MakeVec2(1.0, 2.0)

	back := farseer.RotVec2MulT(q, farseer.RotVec2Mul(q, v))

	if !vecNear(back, v, tol) {
		t.Errorf("expected %v, got %v", v, back)
	}
}

func TestSeededRandRepeatable(t *testing.T) {
	a := farseer.MakeRand(7)
	b := farseer.MakeRand(7)

	for i := 0; i < 10; i++ {
		if a.Float(-1.0, 1.0) != b.Float(-1.0, 1.0) {
			t.Fatal("same seed should yield the same sequence")
		}
	}

	c := farseer.MakeRand(8)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float(-1.0, 1.0) != c.Float(-1.0, 1.0) {
			same = false
		}
	}
	if same {
		t.Error("different seeds should diverge")
	}
}
