package farseer_test

import (
	"testing"

	farseer "github.com/EIGHTFINITE-Vendor/farseer-physics"
)

func TestMouseJointTracksTarget(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))

	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 0.0), 0.5, 0.5, 1.0)

	md := farseer.MakeMouseJointDef()
	md.BodyB = box
	md.Target = box.GetPosition()
	md.MaxForce = 1000.0 * box.GetMass()
	joint := world.CreateJoint(&md)

	joint.SetTarget(farseer.MakeVec2(2.0, 1.0))

	for i := 0; i < 120; i++ {
		world.Step(1.0/60.0, farseer.DefaultVelocityIterations, farseer.DefaultPositionIterations)
	}

	if d := farseer.Vec2Distance(box.GetPosition(), farseer.MakeVec2(2.0, 1.0)); d > 0.1 {
		t.Errorf("box ended %v from the target", d)
	}
}

func TestMouseJointHasNoBodyA(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))

	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 0.0), 0.5, 0.5, 1.0)

	md := farseer.MakeMouseJointDef()
	md.BodyB = box
	md.Target = box.GetPosition()
	md.MaxForce = 100.0
	joint := world.CreateJoint(&md)

	if joint.GetBodyA() != nil {
		t.Error("mouse joint should have no bodyA")
	}
	if !joint.IsValid() {
		t.Error("mouse joint with a live bodyB should be valid")
	}
	if joint.GetAnchorA() != box.GetPosition() {
		t.Errorf("anchorA should be the target, got %v", joint.GetAnchorA())
	}
}

func TestMouseJointMaxForceLimitsPull(t *testing.T) {
	run := func(maxForce float64) float64 {
		world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))

		box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 0.0), 0.5, 0.5, 1.0)

		md := farseer.MakeMouseJointDef()
		md.BodyB = box
		md.Target = box.GetPosition()
		md.MaxForce = maxForce
		joint := world.CreateJoint(&md)

		joint.SetTarget(farseer.MakeVec2(10.0, 0.0))

		for i := 0; i < 30; i++ {
			world.Step(1.0/60.0, farseer.DefaultVelocityIterations, farseer.DefaultPositionIterations)
		}
		return box.GetPosition().X
	}

	weak := run(1.0)
	strong := run(1000.0)

	if weak >= strong {
		t.Errorf("weak pull %v should lag behind strong pull %v", weak, strong)
	}
}

func TestMouseJointSurvivesBodyADestroyChecks(t *testing.T) {
	world := farseer.NewWorld(farseer.MakeVec2(0.0, 0.0))

	box := createBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 0.0), 0.5, 0.5, 1.0)

	md := farseer.MakeMouseJointDef()
	md.BodyB = box
	md.Target = box.GetPosition()
	md.MaxForce = 100.0
	joint := world.CreateJoint(&md)

	removed := 0
	world.SetJointRemovedListener(func(j *farseer.Joint) {
		removed++
	})

	world.DestroyBody(box)

	if removed != 1 {
		t.Errorf("destroying bodyB should remove the mouse joint, removals = %d", removed)
	}
	if joint.IsValid() {
		t.Error("mouse joint on a destroyed body should not be valid")
	}
}
