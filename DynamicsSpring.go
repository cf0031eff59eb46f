package farseer

import (
	"math"
)

// Damped linear spring force law, shared by both spring kinds:
// F = -(k * (length - restLength) + d * dot(relVel, u)) * u
// where u is the unit vector from the far attachment toward the body
// anchor. Springs are stateless: the force is recomputed fresh from the
// current relative position and velocity every step.

/// A linear spring between a body anchor and a fixed world point. This is
/// a continuous force, not a hard constraint; the body oscillates about
/// the rest length and the damping constant bleeds energy out.
type FixedLinearSpring struct {
	Controller

	M_body             *Body
	M_bodyAttachPoint  Vec2 // local to the body
	M_worldAttachPoint Vec2

	M_restLength      float64
	M_springConstant  float64
	M_dampingConstant float64

	/// Spring force magnitude beyond which the spring self-disables.
	M_breakpoint float64
}

/// bodyAttachPoint is in the body's local frame; the rest length is the
/// current distance between the attachment points.
func MakeFixedLinearSpring(body *Body, bodyAttachPoint Vec2, worldAttachPoint Vec2, springConstant, dampingConstant float64) *FixedLinearSpring {
	res := &FixedLinearSpring{
		Controller:         MakeController(),
		M_body:             body,
		M_bodyAttachPoint:  bodyAttachPoint,
		M_worldAttachPoint: worldAttachPoint,
		M_springConstant:   springConstant,
		M_dampingConstant:  dampingConstant,
		M_breakpoint:       MaxFloat,
	}

	res.M_restLength = Vec2Distance(body.GetWorldPoint(bodyAttachPoint), worldAttachPoint)

	return res
}

func (spring FixedLinearSpring) GetRestLength() float64 {
	return spring.M_restLength
}

func (spring *FixedLinearSpring) SetRestLength(length float64) {
	spring.M_restLength = length
}

func (spring *FixedLinearSpring) SetBreakpoint(breakpoint float64) {
	spring.M_breakpoint = breakpoint
}

func (spring *FixedLinearSpring) SetWorldAttachPoint(point Vec2) {
	spring.M_worldAttachPoint = point
}

func (spring FixedLinearSpring) IsValid() bool {
	return spring.M_body != nil && !spring.M_body.IsDestroyed()
}

func (spring *FixedLinearSpring) Update(step TimeStep) {
	if !spring.M_enabled || !spring.IsValid() {
		return
	}

	anchor := spring.M_body.GetWorldPoint(spring.M_bodyAttachPoint)

	u := Vec2Sub(anchor, spring.M_worldAttachPoint)
	length := u.Normalize()
	if length == 0.0 {
		// Attachment points coincide; no meaningful direction this step.
		return
	}

	stretch := length - spring.M_restLength
	v := spring.M_body.GetLinearVelocityFromWorldPoint(anchor)

	forceMagnitude := -(spring.M_springConstant*stretch + spring.M_dampingConstant*Vec2Dot(v, u))

	if math.Abs(forceMagnitude) > spring.M_breakpoint {
		spring.M_enabled = false
		return
	}

	spring.M_body.ApplyForce(Vec2MulScalar(forceMagnitude, u), anchor)
}

/// A linear spring connecting anchor points on two bodies. Equal and
/// opposite forces are applied at each anchor.
type LinearSpring struct {
	Controller

	M_bodyA        *Body
	M_bodyB        *Body
	M_localAnchorA Vec2
	M_localAnchorB Vec2

	M_restLength      float64
	M_springConstant  float64
	M_dampingConstant float64

	M_breakpoint float64
}

/// Anchors are in each body's local frame; the rest length is the current
/// distance between them.
func MakeLinearSpring(bodyA, bodyB *Body, localAnchorA, localAnchorB Vec2, springConstant, dampingConstant float64) *LinearSpring {
	Assert(bodyA != bodyB)

	res := &LinearSpring{
		Controller:        MakeController(),
		M_bodyA:           bodyA,
		M_bodyB:           bodyB,
		M_localAnchorA:    localAnchorA,
		M_localAnchorB:    localAnchorB,
		M_springConstant:  springConstant,
		M_dampingConstant: dampingConstant,
		M_breakpoint:      MaxFloat,
	}

	res.M_restLength = Vec2Distance(
		bodyA.GetWorldPoint(localAnchorA),
		bodyB.GetWorldPoint(localAnchorB),
	)

	return res
}

func (spring LinearSpring) GetRestLength() float64 {
	return spring.M_restLength
}

func (spring *LinearSpring) SetRestLength(length float64) {
	spring.M_restLength = length
}

func (spring *LinearSpring) SetBreakpoint(breakpoint float64) {
	spring.M_breakpoint = breakpoint
}

func (spring LinearSpring) IsValid() bool {
	if spring.M_bodyA == nil || spring.M_bodyA.IsDestroyed() {
		return false
	}
	if spring.M_bodyB == nil || spring.M_bodyB.IsDestroyed() {
		return false
	}
	return true
}

func (spring *LinearSpring) Update(step TimeStep) {
	if !spring.M_enabled || !spring.IsValid() {
		return
	}

	pA := spring.M_bodyA.GetWorldPoint(spring.M_localAnchorA)
	pB := spring.M_bodyB.GetWorldPoint(spring.M_localAnchorB)

	u := Vec2Sub(pB, pA)
	length := u.Normalize()
	if length == 0.0 {
		return
	}

	stretch := length - spring.M_restLength
	relVel := Vec2Sub(
		spring.M_bodyB.GetLinearVelocityFromWorldPoint(pB),
		spring.M_bodyA.GetLinearVelocityFromWorldPoint(pA),
	)

	forceMagnitude := -(spring.M_springConstant*stretch + spring.M_dampingConstant*Vec2Dot(relVel, u))

	if math.Abs(forceMagnitude) > spring.M_breakpoint {
		spring.M_enabled = false
		return
	}

	force := Vec2MulScalar(forceMagnitude, u)
	spring.M_bodyB.ApplyForce(force, pB)
	spring.M_bodyA.ApplyForce(force.OperatorNegate(), pA)
}
