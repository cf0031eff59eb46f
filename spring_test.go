package farseer_test

import (
	"testing"

	farseer "github.com/EIGHTFINITE-Vendor/farseer-physics"
)

func springStep() farseer.TimeStep {
	step := farseer.MakeTimeStep()
	step.Dt = 1.0 / 60.0
	step.Inv_dt = 60.0
	return step
}

func TestFixedSpringStretchedPullsBack(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))
	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(2.0, 0.0), 0.5, 0.5, 1.0)

	spring := farseer.MakeFixedLinearSpring(box, farseer.MakeVec2(0, 0), farseer.MakeVec2(0.0, 0.0), 10.0, 0.0)
	spring.SetRestLength(1.0)

	spring.Update(springStep())

	// Stretch 1 m at k = 10: exactly 10 N toward the attachment point.
	if !vecNear(box.M_force, farseer.MakeVec2(-10.0, 0.0), tol) {
		t.Errorf("expected force (-10, 0), got %v", box.M_force)
	}
}

func TestFixedSpringCompressedPushesAway(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))
	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.5, 0.0), 0.5, 0.5, 1.0)

	spring := farseer.MakeFixedLinearSpring(box, farseer.MakeVec2(0, 0), farseer.MakeVec2(0.0, 0.0), 10.0, 0.0)
	spring.SetRestLength(1.0)

	spring.Update(springStep())

	if !vecNear(box.M_force, farseer.MakeVec2(5.0, 0.0), tol) {
		t.Errorf("expected force (5, 0), got %v", box.M_force)
	}
}

func TestFixedSpringAtRestLengthNoForce(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))
	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(1.0, 0.0), 0.5, 0.5, 1.0)

	// Rest length defaults to the construction-time distance.
	spring := farseer.MakeFixedLinearSpring(box, farseer.MakeVec2(0, 0), farseer.MakeVec2(0.0, 0.0), 10.0, 0.0)

	if spring.GetRestLength() != 1.0 {
		t.Fatalf("expected rest length 1, got %v", spring.GetRestLength())
	}

	spring.Update(springStep())

	if box.M_force != (farseer.MakeVec2(0.0, 0.0)) {
		t.Errorf("expected no force at rest length, got %v", box.M_force)
	}
}

func TestFixedSpringDampingOpposesVelocity(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))
	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(1.0, 0.0), 0.5, 0.5, 1.0)
	box.SetLinearVelocity(farseer.MakeVec2(2.0, 0.0))

	// At rest length with pure damping: F = -d * dot(v, u) * u.
	spring := farseer.MakeFixedLinearSpring(box, farseer.MakeVec2(0, 0), farseer.MakeVec2(0.0, 0.0), 0.0, 3.0)

	spring.Update(springStep())

	if !vecNear(box.M_force, farseer.MakeVec2(-6.0, 0.0), tol) {
		t.Errorf("expected damping force (-6, 0), got %v", box.M_force)
	}
}

func TestFixedSpringCoincidentPointsNoForce(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))
	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 0.0), 0.5, 0.5, 1.0)

	spring := farseer.MakeFixedLinearSpring(box, farseer.MakeVec2(0, 0), farseer.MakeVec2(0.0, 0.0), 10.0, 1.0)
	spring.SetRestLength(1.0)

	spring.Update(springStep())

	if box.M_force != (farseer.MakeVec2(0.0, 0.0)) {
		t.Errorf("coincident attachment points should apply no force, got %v", box.M_force)
	}
}

func TestFixedSpringBreaks(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))
	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(2.0, 0.0), 0.5, 0.5, 1.0)

	spring := farseer.MakeFixedLinearSpring(box, farseer.MakeVec2(0, 0), farseer.MakeVec2(0.0, 0.0), 10.0, 0.0)
	spring.SetRestLength(1.0)
	spring.SetBreakpoint(5.0)

	spring.Update(springStep())

	if spring.IsEnabled() {
		t.Error("spring should break at 10 N against a 5 N breakpoint")
	}
	if box.M_force != (farseer.MakeVec2(0.0, 0.0)) {
		t.Errorf("breaking spring must not apply the breaking force, got %v", box.M_force)
	}

	// Broken means disabled for good: further updates do nothing.
	spring.Update(springStep())
	if box.M_force != (farseer.MakeVec2(0.0, 0.0)) {
		t.Error("broken spring applied force on a later update")
	}
}

func TestFixedSpringInvalidAfterDestroy(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))
	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(2.0, 0.0), 0.5, 0.5, 1.0)

	spring := farseer.MakeFixedLinearSpring(box, farseer.MakeVec2(0, 0), farseer.MakeVec2(0.0, 0.0), 10.0, 0.0)
	world.AddController(spring)

	world.DestroyBody(box)

	if spring.IsValid() {
		t.Error("spring on a destroyed body should not be valid")
	}

	// The world must keep stepping without touching the dead spring.
	world.Step(1.0/60.0, farseer.DefaultVelocityIterations, farseer.DefaultPositionIterations)
}

func TestLinearSpringEqualAndOpposite(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))
	a := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 0.0), 0.5, 0.5, 1.0)
	b := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(3.0, 0.0), 0.5, 0.5, 1.0)

	spring := farseer.MakeLinearSpring(a, b, farseer.MakeVec2(0, 0), farseer.MakeVec2(0, 0), 10.0, 0.0)
	spring.SetRestLength(1.0)

	spring.Update(springStep())

	// Stretch 2 m at k = 10: 20 N pulling the bodies together.
	if !vecNear(b.M_force, farseer.MakeVec2(-20.0, 0.0), tol) {
		t.Errorf("expected force (-20, 0) on bodyB, got %v", b.M_force)
	}
	if !vecNear(a.M_force, farseer.MakeVec2(20.0, 0.0), tol) {
		t.Errorf("expected force (20, 0) on bodyA, got %v", a.M_force)
	}
}

func TestLinearSpringConvergesToRestLength(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))
	a := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 0.0), 0.5, 0.5, 1.0)
	b := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(3.0, 0.0), 0.5, 0.5, 1.0)

	spring := farseer.MakeLinearSpring(a, b, farseer.MakeVec2(0, 0), farseer.MakeVec2(0, 0), 20.0, 4.0)
	spring.SetRestLength(1.0)
	world.AddController(spring)

	for i := 0; i < 600; i++ {
		world.Step(1.0/60.0, farseer.DefaultVelocityIterations, farseer.DefaultPositionIterations)
	}

	dist := farseer.Vec2Distance(a.GetPosition(), b.GetPosition())
	if dist < 0.8 || dist > 1.2 {
		t.Errorf("expected separation near rest length 1, got %v", dist)
	}
}
