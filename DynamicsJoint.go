package farseer

var JointType = struct {
	E_unknownJoint uint8
	E_pointJoint   uint8
	E_weldJoint    uint8
	E_mouseJoint   uint8
}{
	E_unknownJoint: 0,
	E_pointJoint:   1,
	E_weldJoint:    2,
	E_mouseJoint:   3,
}

/// Joint definitions are used to construct joints.
type JointDef struct {

	/// The joint type is set automatically for concrete joint types.
	Type uint8

	/// Use this to attach application specific data to your joints.
	UserData interface{}

	/// The first attached body.
	BodyA *Body

	/// The second attached body.
	BodyB *Body

	/// The reaction force magnitude beyond which the joint breaks:
	/// it disables itself and the world emits a joint-removed event.
	Breakpoint float64
}

func MakeJointDef() JointDef {
	return JointDef{
		Type:       JointType.E_unknownJoint,
		UserData:   nil,
		BodyA:      nil,
		BodyB:      nil,
		Breakpoint: MaxFloat,
	}
}

type JointDefInterface interface {
	GetType() uint8
	GetUserData() interface{}
	GetBodyA() *Body
	GetBodyB() *Body
	GetBreakpoint() float64
}

func (def JointDef) GetType() uint8 {
	return def.Type
}

func (def JointDef) GetUserData() interface{} {
	return def.UserData
}

func (def JointDef) GetBodyA() *Body {
	return def.BodyA
}

func (def JointDef) GetBodyB() *Body {
	return def.BodyB
}

func (def JointDef) GetBreakpoint() float64 {
	return def.Breakpoint
}

/// A joint constrains two bodies together. The joint kinds form a closed
/// set; each kind carries its own constraint state and all of them are
/// dispatched through the single solver entry points below, keeping joint
/// data co-located for the solver's iteration passes.
type Joint struct {
	M_type  uint8
	M_bodyA *Body
	M_bodyB *Body

	M_index   int
	M_enabled bool

	M_breakpoint float64
	M_userData   interface{}

	point pointJointState
	weld  weldJointState
	mouse mouseJointState
}

/// Construct a joint of the kind named by the definition. The definition
/// has to be backed by a pointer to one of the concrete def types.
func MakeJoint(def JointDefInterface) *Joint {
	switch def.GetType() {
	case JointType.E_pointJoint:
		if typeddef, ok := def.(*PointJointDef); ok {
			return MakePointJoint(typeddef)
		}
		Assert(false)

	case JointType.E_weldJoint:
		if typeddef, ok := def.(*WeldJointDef); ok {
			return MakeWeldJoint(typeddef)
		}
		Assert(false)

	case JointType.E_mouseJoint:
		if typeddef, ok := def.(*MouseJointDef); ok {
			return MakeMouseJoint(typeddef)
		}
		Assert(false)

	default:
		Assert(false)
	}

	return nil
}

func makeJointBase(def JointDefInterface) Joint {
	Assert(def.GetBodyB() != nil)
	Assert(def.GetBodyA() != def.GetBodyB())

	res := Joint{}
	res.M_type = def.GetType()
	res.M_bodyA = def.GetBodyA()
	res.M_bodyB = def.GetBodyB()
	res.M_enabled = true
	res.M_breakpoint = def.GetBreakpoint()
	if res.M_breakpoint <= 0.0 {
		res.M_breakpoint = MaxFloat
	}
	res.M_userData = def.GetUserData()

	return res
}

func (j Joint) GetType() uint8 {
	return j.M_type
}

func (j Joint) GetBodyA() *Body {
	return j.M_bodyA
}

func (j Joint) GetBodyB() *Body {
	return j.M_bodyB
}

func (j Joint) GetUserData() interface{} {
	return j.M_userData
}

func (j *Joint) SetUserData(data interface{}) {
	j.M_userData = data
}

func (j Joint) GetBreakpoint() float64 {
	return j.M_breakpoint
}

func (j *Joint) SetBreakpoint(breakpoint float64) {
	j.M_breakpoint = breakpoint
}

func (j Joint) IsEnabled() bool {
	return j.M_enabled
}

func (j *Joint) SetEnabled(flag bool) {
	j.M_enabled = flag
}

/// A joint referencing a destroyed body must be skipped by the stepping
/// driver; permanent removal is the caller's responsibility.
func (j Joint) IsValid() bool {
	if j.M_bodyB == nil || j.M_bodyB.IsDestroyed() {
		return false
	}
	// The mouse joint has no bodyA.
	if j.M_bodyA != nil && j.M_bodyA.IsDestroyed() {
		return false
	}
	return true
}

/// Get the anchor point on bodyA in world coordinates.
func (j Joint) GetAnchorA() Vec2 {
	switch j.M_type {
	case JointType.E_pointJoint:
		return j.M_bodyA.GetWorldPoint(j.point.localAnchorA)
	case JointType.E_weldJoint:
		return j.M_bodyA.GetWorldPoint(j.weld.localAnchorA)
	case JointType.E_mouseJoint:
		return j.mouse.targetA
	}
	return MakeVec2(0, 0)
}

/// Get the anchor point on bodyB in world coordinates.
func (j Joint) GetAnchorB() Vec2 {
	switch j.M_type {
	case JointType.E_pointJoint:
		return j.M_bodyB.GetWorldPoint(j.point.localAnchorB)
	case JointType.E_weldJoint:
		return j.M_bodyB.GetWorldPoint(j.weld.localAnchorB)
	case JointType.E_mouseJoint:
		return j.M_bodyB.GetWorldPoint(j.mouse.localAnchorB)
	}
	return MakeVec2(0, 0)
}

/// Get the reaction force on bodyB at the joint anchor in Newtons.
/// Dependent systems (breakable joints) compare this against thresholds.
func (j Joint) GetReactionForce(inv_dt float64) Vec2 {
	switch j.M_type {
	case JointType.E_pointJoint:
		return Vec2MulScalar(inv_dt, j.point.impulse)
	case JointType.E_weldJoint:
		return Vec2MulScalar(inv_dt, MakeVec2(j.weld.impulse.X, j.weld.impulse.Y))
	case JointType.E_mouseJoint:
		return Vec2MulScalar(inv_dt, j.mouse.impulse)
	}
	return MakeVec2(0, 0)
}

/// Get the reaction torque on bodyB in N*m.
func (j Joint) GetReactionTorque(inv_dt float64) float64 {
	switch j.M_type {
	case JointType.E_weldJoint:
		return inv_dt * j.weld.impulse.Z
	}
	return 0.0
}

func (j *Joint) InitVelocityConstraints(data SolverData) {
	switch j.M_type {
	case JointType.E_pointJoint:
		j.initPointVelocityConstraints(data)
	case JointType.E_weldJoint:
		j.initWeldVelocityConstraints(data)
	case JointType.E_mouseJoint:
		j.initMouseVelocityConstraints(data)
	}
}

func (j *Joint) SolveVelocityConstraints(data SolverData) {
	switch j.M_type {
	case JointType.E_pointJoint:
		j.solvePointVelocityConstraints(data)
	case JointType.E_weldJoint:
		j.solveWeldVelocityConstraints(data)
	case JointType.E_mouseJoint:
		j.solveMouseVelocityConstraints(data)
	}
}

/// This returns true if the position errors are within tolerance.
func (j *Joint) SolvePositionConstraints(data SolverData) bool {
	switch j.M_type {
	case JointType.E_pointJoint:
		return j.solvePointPositionConstraints(data)
	case JointType.E_weldJoint:
		return j.solveWeldPositionConstraints(data)
	case JointType.E_mouseJoint:
		return j.solveMousePositionConstraints(data)
	}
	return true
}
