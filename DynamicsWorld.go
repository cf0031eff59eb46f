package farseer

import (
	"math"
)

/// Called when a joint is removed from the world, either explicitly,
/// because an attached body was destroyed, or because the joint broke.
/// Dependent systems use this to drop cached references (for example an
/// interactive drag joint).
type JointRemovedListener func(joint *Joint)

/// The world holds the bodies, joints, and controllers and runs the
/// constraint solver once per fixed timestep. Exactly one stepping thread
/// may mutate world state; nothing here synchronizes.
type World struct {
	M_bodies      []*Body
	M_joints      []*Joint
	M_controllers []ControllerInterface

	M_gravity Vec2

	M_warmStarting bool

	// This is used to compute the time step ratio to
	// support a variable time step.
	M_inv_dt0 float64

	M_jointRemovedListener JointRemovedListener

	// Solver scratch, reused across steps.
	M_positions  []Position
	M_velocities []Velocity
}

func MakeWorld(gravity Vec2) World {
	return World{
		M_gravity:      gravity,
		M_warmStarting: true,
		M_inv_dt0:      0.0,
	}
}

func NewWorld(gravity Vec2) *World {
	res := MakeWorld(gravity)
	return &res
}

func (world World) GetGravity() Vec2 {
	return world.M_gravity
}

func (world *World) SetGravity(gravity Vec2) {
	world.M_gravity = gravity
}

/// Enable/disable warm starting. For testing.
func (world *World) SetWarmStarting(flag bool) {
	world.M_warmStarting = flag
}

func (world *World) SetJointRemovedListener(listener JointRemovedListener) {
	world.M_jointRemovedListener = listener
}

func (world World) GetBodyCount() int {
	return len(world.M_bodies)
}

func (world World) GetJointCount() int {
	return len(world.M_joints)
}

/// Create a rigid body given a definition.
func (world *World) CreateBody(def *BodyDef) *Body {
	body := NewBody(def, world)
	world.M_bodies = append(world.M_bodies, body)
	return body
}

/// Destroy a rigid body. Joints attached to the body are destroyed
/// first, each firing the joint-removed notification. Controllers
/// referencing the body discover it through their validity checks.
func (world *World) DestroyBody(body *Body) {
	// Delete the attached joints.
	for i := len(world.M_joints) - 1; i >= 0; i-- {
		j := world.M_joints[i]
		if j.GetBodyA() == body || j.GetBodyB() == body {
			world.DestroyJoint(j)
		}
	}

	body.M_destroyed = true

	for i, b := range world.M_bodies {
		if b == body {
			world.M_bodies = append(world.M_bodies[:i], world.M_bodies[i+1:]...)
			break
		}
	}
}

/// Create a joint to constrain bodies together. def has to be backed by
/// a pointer to one of the concrete joint definition types.
func (world *World) CreateJoint(def JointDefInterface) *Joint {
	joint := MakeJoint(def)
	joint.M_index = len(world.M_joints)
	world.M_joints = append(world.M_joints, joint)
	return joint
}

/// Destroy a joint, firing the joint-removed notification.
func (world *World) DestroyJoint(joint *Joint) {
	for i, j := range world.M_joints {
		if j == joint {
			world.M_joints = append(world.M_joints[:i], world.M_joints[i+1:]...)
			break
		}
	}

	joint.M_enabled = false

	if world.M_jointRemovedListener != nil {
		world.M_jointRemovedListener(joint)
	}
}

func (world *World) AddController(controller ControllerInterface) {
	world.M_controllers = append(world.M_controllers, controller)
}

func (world *World) RemoveController(controller ControllerInterface) {
	for i, c := range world.M_controllers {
		if c == controller {
			world.M_controllers = append(world.M_controllers[:i], world.M_controllers[i+1:]...)
			break
		}
	}
}

/// Take a time step. This performs controller force injection, velocity
/// integration, constraint solving, and position correction, in that
/// order. Velocity iterations all complete (across all joints) before
/// position iterations begin.
func (world *World) Step(dt float64, velocityIterations int, positionIterations int) {
	step := MakeTimeStep()
	step.Dt = dt
	step.VelocityIterations = velocityIterations
	step.PositionIterations = positionIterations
	if dt > 0.0 {
		step.Inv_dt = 1.0 / dt
	} else {
		step.Inv_dt = 0.0
	}

	step.DtRatio = world.M_inv_dt0 * dt
	step.WarmStarting = world.M_warmStarting

	// Force controllers run first so their forces integrate this step.
	for _, controller := range world.M_controllers {
		if controller.IsEnabled() && controller.IsValid() {
			controller.Update(step)
		}
	}

	world.solve(step)

	if step.Dt > 0.0 {
		world.M_inv_dt0 = step.Inv_dt
	}

	// Forces are consumed by the step.
	for _, body := range world.M_bodies {
		body.M_force.SetZero()
		body.M_torque = 0.0
	}
}

func (world *World) solve(step TimeStep) {
	n := len(world.M_bodies)

	if cap(world.M_positions) < n {
		world.M_positions = make([]Position, n)
		world.M_velocities = make([]Velocity, n)
	}
	world.M_positions = world.M_positions[:n]
	world.M_velocities = world.M_velocities[:n]

	// Integrate velocities and load solver state.
	h := step.Dt
	for i, b := range world.M_bodies {
		b.M_islandIndex = i

		c := b.M_sweep.C
		a := b.M_sweep.A
		v := b.M_linearVelocity
		w := b.M_angularVelocity

		// Store positions for continuity.
		b.M_sweep.C0 = b.M_sweep.C
		b.M_sweep.A0 = b.M_sweep.A

		if b.M_type == BodyType.DynamicBody {
			// Integrate velocities.
			v.OperatorPlusInplace(Vec2MulScalar(h, Vec2Add(
				Vec2MulScalar(b.M_gravityScale, world.M_gravity),
				Vec2MulScalar(b.M_invMass, b.M_force),
			)))
			w += h * b.M_invI * b.M_torque

			// Apply damping.
			// ODE: dv/dt + c * v = 0
			// Solution: v(t) = v0 * exp(-c * t)
			// Time step: v(t + dt) = v0 * exp(-c * (t + dt)) = v0 * exp(-c * t) * exp(-c * dt) = v * exp(-c * dt)
			// v2 = exp(-c * dt) * v1
			// Pade approximation:
			// v2 = v1 * 1 / (1 + c * dt)
			v.OperatorScalarMulInplace(1.0 / (1.0 + h*b.M_linearDamping))
			w *= 1.0 / (1.0 + h*b.M_angularDamping)
		}

		world.M_positions[i].C = c
		world.M_positions[i].A = a
		world.M_velocities[i].V = v
		world.M_velocities[i].W = w
	}

	solverData := SolverData{
		Step:       step,
		Positions:  world.M_positions,
		Velocities: world.M_velocities,
	}

	// Initialize velocity constraints. All joints are initialized before
	// any joint's velocity pass begins.
	for _, joint := range world.M_joints {
		if joint.IsEnabled() && joint.IsValid() {
			joint.InitVelocityConstraints(solverData)
		}
	}

	// Solve velocity constraints.
	for i := 0; i < step.VelocityIterations; i++ {
		for _, joint := range world.M_joints {
			if joint.IsEnabled() && joint.IsValid() {
				joint.SolveVelocityConstraints(solverData)
			}
		}
	}

	// Break joints whose reaction exceeds their threshold. This is a
	// policy outcome, not a fault.
	for i := len(world.M_joints) - 1; i >= 0; i-- {
		joint := world.M_joints[i]
		if !joint.IsEnabled() || joint.M_breakpoint == MaxFloat {
			continue
		}
		if joint.GetReactionForce(step.Inv_dt).Length() > joint.M_breakpoint {
			world.DestroyJoint(joint)
		}
	}

	// Integrate positions.
	for i := range world.M_bodies {
		c := world.M_positions[i].C
		a := world.M_positions[i].A
		v := world.M_velocities[i].V
		w := world.M_velocities[i].W

		// Check for large velocities and clamp them.
		translation := Vec2MulScalar(h, v)
		if Vec2Dot(translation, translation) > MaxTranslationSquared {
			ratio := MaxTranslation / translation.Length()
			v.OperatorScalarMulInplace(ratio)
		}

		rotation := h * w
		if rotation*rotation > MaxRotationSquared {
			ratio := MaxRotation / math.Abs(rotation)
			w *= ratio
		}

		// Integrate.
		c.OperatorPlusInplace(Vec2MulScalar(h, v))
		a += h * w

		world.M_positions[i].C = c
		world.M_positions[i].A = a
		world.M_velocities[i].V = v
		world.M_velocities[i].W = w
	}

	// Solve position constraints. Early out once every joint reports
	// its error within tolerance.
	for i := 0; i < step.PositionIterations; i++ {
		jointsOkay := true
		for _, joint := range world.M_joints {
			if joint.IsEnabled() && joint.IsValid() {
				jointOkay := joint.SolvePositionConstraints(solverData)
				jointsOkay = jointsOkay && jointOkay
			}
		}

		if jointsOkay {
			break
		}
	}

	// Copy state buffers back to the bodies.
	for i, b := range world.M_bodies {
		b.M_sweep.C = world.M_positions[i].C
		b.M_sweep.A = world.M_positions[i].A
		b.M_linearVelocity = world.M_velocities[i].V
		b.M_angularVelocity = world.M_velocities[i].W
		b.SynchronizeTransform()
	}
}
