package farseer

/// Mouse joint definition. This requires a world target point and
/// tuning parameters.
type MouseJointDef struct {
	JointDef

	/// The initial world target point. This is assumed
	/// to coincide with the body anchor initially.
	Target Vec2

	/// The maximum constraint force that can be exerted
	/// to move the candidate body. Usually you will express
	/// as some multiple of the weight (multiplier * mass * gravity).
	MaxForce float64

	/// The response speed.
	FrequencyHz float64

	/// The damping ratio. 0 = no damping, 1 = critical damping.
	DampingRatio float64
}

func MakeMouseJointDef() MouseJointDef {
	res := MouseJointDef{
		JointDef: MakeJointDef(),
	}

	res.Type = JointType.E_mouseJoint
	res.Target.Set(0.0, 0.0)
	res.MaxForce = 0.0
	res.FrequencyHz = 5.0
	res.DampingRatio = 0.7

	return res
}

/// A mouse joint is used to make a point on a body track a
/// specified world point. This a soft constraint with a maximum
/// force. This allows the constraint to stretch without
/// applying huge forces. It exists for interactive dragging, so
/// it has no bodyA; the world target point plays that role.
type mouseJointState struct {
	localAnchorB Vec2
	targetA      Vec2
	frequencyHz  float64
	dampingRatio float64
	beta         float64

	// Solver shared
	impulse  Vec2
	maxForce float64
	gamma    float64

	// Solver temp
	indexB       int
	rB           Vec2
	localCenterB Vec2
	invMassB     float64
	invIB        float64
	mass         Mat22
	C            Vec2
}

// p = attached point, m = target point
// C = p - m
// Cdot = v
//      = v + cross(w, r)
// J = [I r_skew]
// Identity used:
// w k % (rx i + ry j) = w * (-ry i + rx j)

func MakeMouseJoint(def *MouseJointDef) *Joint {
	Assert(def.BodyB != nil)
	Assert(def.Target.IsValid())
	Assert(IsValidFloat(def.MaxForce) && def.MaxForce >= 0.0)
	Assert(IsValidFloat(def.FrequencyHz) && def.FrequencyHz >= 0.0)
	Assert(IsValidFloat(def.DampingRatio) && def.DampingRatio >= 0.0)

	res := Joint{}
	res.M_type = JointType.E_mouseJoint
	res.M_bodyB = def.BodyB
	res.M_enabled = true
	res.M_breakpoint = MaxFloat
	res.M_userData = def.UserData

	res.mouse.targetA = def.Target
	res.mouse.localAnchorB = TransformVec2MulT(res.M_bodyB.GetTransform(), res.mouse.targetA)

	res.mouse.maxForce = def.MaxForce
	res.mouse.impulse.SetZero()

	res.mouse.frequencyHz = def.FrequencyHz
	res.mouse.dampingRatio = def.DampingRatio

	res.mouse.beta = 0.0
	res.mouse.gamma = 0.0

	return &res
}

/// Update the target point of a mouse joint.
func (joint *Joint) SetTarget(target Vec2) {
	joint.mouse.targetA = target
}

func (joint Joint) GetTarget() Vec2 {
	return joint.mouse.targetA
}

func (joint *Joint) SetMaxForce(force float64) {
	joint.mouse.maxForce = force
}

func (joint Joint) GetMaxForce() float64 {
	return joint.mouse.maxForce
}

func (joint *Joint) initMouseVelocityConstraints(data SolverData) {
	st := &joint.mouse

	st.indexB = joint.M_bodyB.M_islandIndex
	st.localCenterB = joint.M_bodyB.M_sweep.LocalCenter
	st.invMassB = joint.M_bodyB.M_invMass
	st.invIB = joint.M_bodyB.M_invI

	cB := data.Positions[st.indexB].C
	aB := data.Positions[st.indexB].A
	vB := data.Velocities[st.indexB].V
	wB := data.Velocities[st.indexB].W

	qB := MakeRotFromAngle(aB)

	mass := joint.M_bodyB.GetMass()

	// Frequency
	omega := 2.0 * Pi * st.frequencyHz

	// Damping coefficient
	d := 2.0 * mass * st.dampingRatio * omega

	// Spring stiffness
	k := mass * (omega * omega)

	// magic formulas
	// gamma has units of inverse mass.
	// beta has units of inverse time.
	h := data.Step.Dt
	Assert(d+h*k > Epsilon)
	st.gamma = h * (d + h*k)
	if st.gamma != 0.0 {
		st.gamma = 1.0 / st.gamma
	}
	st.beta = h * k * st.gamma

	// Compute the effective mass matrix.
	st.rB = RotVec2Mul(qB, Vec2Sub(st.localAnchorB, st.localCenterB))

	// K    = [(1/m1 + 1/m2) * eye(2) - skew(r1) * invI1 * skew(r1) - skew(r2) * invI2 * skew(r2)]
	//      = [1/m1+1/m2     0    ] + invI1 * [r1.y*r1.y -r1.x*r1.y] + invI2 * [r1.y*r1.y -r1.x*r1.y]
	//        [    0     1/m1+1/m2]           [-r1.x*r1.y r1.x*r1.x]           [-r1.x*r1.y r1.x*r1.x]
	var K Mat22
	K.Ex.X = st.invMassB + st.invIB*st.rB.Y*st.rB.Y + st.gamma
	K.Ex.Y = -st.invIB * st.rB.X * st.rB.Y
	K.Ey.X = K.Ex.Y
	K.Ey.Y = st.invMassB + st.invIB*st.rB.X*st.rB.X + st.gamma

	st.mass = K.GetInverse()

	st.C = Vec2Sub(Vec2Add(cB, st.rB), st.targetA)
	st.C.OperatorScalarMulInplace(st.beta)

	// Cheat with some damping
	wB *= 0.98

	if data.Step.WarmStarting {
		st.impulse.OperatorScalarMulInplace(data.Step.DtRatio)
		vB.OperatorPlusInplace(Vec2MulScalar(st.invMassB, st.impulse))
		wB += st.invIB * Vec2Cross(st.rB, st.impulse)
	} else {
		st.impulse.SetZero()
	}

	data.Velocities[st.indexB].V = vB
	data.Velocities[st.indexB].W = wB
}

func (joint *Joint) solveMouseVelocityConstraints(data SolverData) {
	st := &joint.mouse

	vB := data.Velocities[st.indexB].V
	wB := data.Velocities[st.indexB].W

	// Cdot = v + cross(w, r)
	Cdot := Vec2Add(vB, Vec2CrossScalarVector(wB, st.rB))
	impulse := Vec2Mat22Mul(st.mass, (Vec2Add(Vec2Add(Cdot, st.C), Vec2MulScalar(st.gamma, st.impulse))).OperatorNegate())

	oldImpulse := st.impulse
	st.impulse.OperatorPlusInplace(impulse)
	maxImpulse := data.Step.Dt * st.maxForce
	if st.impulse.LengthSquared() > maxImpulse*maxImpulse {
		st.impulse.OperatorScalarMulInplace(maxImpulse / st.impulse.Length())
	}
	impulse = Vec2Sub(st.impulse, oldImpulse)

	vB.OperatorPlusInplace(Vec2MulScalar(st.invMassB, impulse))
	wB += st.invIB * Vec2Cross(st.rB, impulse)

	data.Velocities[st.indexB].V = vB
	data.Velocities[st.indexB].W = wB
}

func (joint *Joint) solveMousePositionConstraints(data SolverData) bool {
	// Soft constraint; position drift is the feature, not an error.
	return true
}
