package farseer_test

import (
	"math"
	"testing"

	farseer "github.com/EIGHTFINITE-Vendor/farseer-physics"
)

func TestPointJointKeepsAnchorsPinned(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, -10.0))

	pivot := createBox(world, farseer.BodyType.StaticBody, farseer.MakeVec2(0.0, 10.0), 0.1, 0.1, 0.0)
	bob := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(2.0, 10.0), 0.25, 0.25, 1.0)

	jd := farseer.MakePointJointDef()
	jd.Initialize(pivot, bob, farseer.MakeVec2(0.0, 10.0))
	joint := world.CreateJoint(&jd)

	for i := 0; i < 240; i++ {
		world.Step(1.0/60.0, farseer.DefaultVelocityIterations, farseer.DefaultPositionIterations)

		sep := farseer.Vec2Distance(joint.GetAnchorA(), joint.GetAnchorB())
		if sep > 10.0*farseer.LinearSlop {
			t.Fatalf("step %d: anchors separated by %v", i, sep)
		}
	}

	// The bob swings like a pendulum: it stays on the circle of radius 2
	// around the pivot and must have swung below it by now.
	radius := farseer.Vec2Distance(bob.GetPosition(), farseer.MakeVec2(0.0, 10.0))
	if math.Abs(radius-2.0) > 0.05 {
		t.Errorf("expected swing radius near 2, got %v", radius)
	}
	if bob.GetPosition().Y >= 10.0 {
		t.Error("bob should have swung below the pivot")
	}
}

func TestPointJointLeavesRotationFree(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))

	a := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 0.0), 0.5, 0.5, 1.0)
	b := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(1.0, 0.0), 0.5, 0.5, 1.0)

	jd := farseer.MakePointJointDef()
	jd.Initialize(a, b, farseer.MakeVec2(0.5, 0.0))
	world.CreateJoint(&jd)

	b.SetAngularVelocity(3.0)

	world.Step(1.0/60.0, farseer.DefaultVelocityIterations, farseer.DefaultPositionIterations)

	// A point joint has no angular row; spin on bodyB induces motion at
	// the shared anchor but no direct angular coupling keeps the two
	// angles locked.
	if b.GetAngularVelocity() == 0.0 {
		t.Error("pinned body should keep spinning")
	}
	if a.GetAngle() == b.GetAngle() && b.GetAngle() != 0.0 {
		t.Error("point joint must not weld the relative angle")
	}
}

func TestPointJointPositionCorrection(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))

	a := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 0.0), 0.5, 0.5, 1.0)
	b := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(3.0, 0.0), 0.5, 0.5, 1.0)

	// Anchors start 1 m apart.
	jd := farseer.MakePointJointDef()
	jd.BodyA = a
	jd.BodyB = b
	jd.LocalAnchorA = farseer.MakeVec2(1.0, 0.0)  // world (1, 0)
	jd.LocalAnchorB = farseer.MakeVec2(-1.0, 0.0) // world (2, 0)
	joint := world.CreateJoint(&jd)

	for i := 0; i < 10; i++ {
		world.Step(1.0/60.0, farseer.DefaultVelocityIterations, farseer.DefaultPositionIterations)
	}

	sep := farseer.Vec2Distance(joint.GetAnchorA(), joint.GetAnchorB())
	if sep > farseer.LinearSlop {
		t.Errorf("anchor separation %v should settle below the linear slop", sep)
	}
}

func TestPointJointReactionForce(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, -10.0))

	pivot := createBox(world, farseer.BodyType.StaticBody, farseer.MakeVec2(0.0, 10.0), 0.1, 0.1, 0.0)
	bob := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 8.0), 0.5, 0.5, 1.0)

	// Hanging straight down, the pin carries the full weight.
	jd := farseer.MakePointJointDef()
	jd.Initialize(pivot, bob, farseer.MakeVec2(0.0, 10.0))
	joint := world.CreateJoint(&jd)

	dt := 1.0 / 60.0
	for i := 0; i < 60; i++ {
		world.Step(dt, farseer.DefaultVelocityIterations, farseer.DefaultPositionIterations)
	}

	reaction := joint.GetReactionForce(1.0 / dt).Length()
	if math.Abs(reaction-10.0) > 0.5 {
		t.Errorf("expected reaction near 10 N, got %v", reaction)
	}
	if torque := joint.GetReactionTorque(1.0 / dt); torque != 0.0 {
		t.Errorf("point joint has no angular constraint, torque = %v", torque)
	}
}
