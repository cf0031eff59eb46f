package farseer

/// Point joint definition. This requires defining an anchor point where
/// the bodies are joined. The definition uses local anchor points so that
/// the initial configuration can violate the constraint slightly.
type PointJointDef struct {
	JointDef

	/// The local anchor point relative to bodyA's origin.
	LocalAnchorA Vec2

	/// The local anchor point relative to bodyB's origin.
	LocalAnchorB Vec2
}

func MakePointJointDef() PointJointDef {
	res := PointJointDef{
		JointDef: MakeJointDef(),
	}

	res.Type = JointType.E_pointJoint
	res.LocalAnchorA.Set(0.0, 0.0)
	res.LocalAnchorB.Set(0.0, 0.0)

	return res
}

/// Initialize the bodies and anchors using a world anchor point.
func (def *PointJointDef) Initialize(bA *Body, bB *Body, anchor Vec2) {
	def.BodyA = bA
	def.BodyB = bB
	def.LocalAnchorA = def.BodyA.GetLocalPoint(anchor)
	def.LocalAnchorB = def.BodyB.GetLocalPoint(anchor)
}

/// A point joint pins two bodies together at a single anchor point while
/// leaving their relative rotation free.
type pointJointState struct {
	// Solver shared
	localAnchorA Vec2
	localAnchorB Vec2
	impulse      Vec2

	// Solver temp
	indexA       int
	indexB       int
	rA           Vec2
	rB           Vec2
	localCenterA Vec2
	localCenterB Vec2
	invMassA     float64
	invMassB     float64
	invIA        float64
	invIB        float64
	mass         Mat22
}

// Point-to-point constraint
// C = pB + rB - pA - rA
// Cdot = vB + cross(wB, rB) - vA - cross(wA, rA)
// J = [-I -rA_skew I rB_skew]

func MakePointJoint(def *PointJointDef) *Joint {
	res := makeJointBase(def)

	res.point.localAnchorA = def.LocalAnchorA
	res.point.localAnchorB = def.LocalAnchorB
	res.point.impulse.SetZero()

	return &res
}

func (joint *Joint) initPointVelocityConstraints(data SolverData) {
	st := &joint.point

	st.indexA = joint.M_bodyA.M_islandIndex
	st.indexB = joint.M_bodyB.M_islandIndex
	st.localCenterA = joint.M_bodyA.M_sweep.LocalCenter
	st.localCenterB = joint.M_bodyB.M_sweep.LocalCenter
	st.invMassA = joint.M_bodyA.M_invMass
	st.invMassB = joint.M_bodyB.M_invMass
	st.invIA = joint.M_bodyA.M_invI
	st.invIB = joint.M_bodyB.M_invI

	aA := data.Positions[st.indexA].A
	vA := data.Velocities[st.indexA].V
	wA := data.Velocities[st.indexA].W

	aB := data.Positions[st.indexB].A
	vB := data.Velocities[st.indexB].V
	wB := data.Velocities[st.indexB].W

	qA := MakeRotFromAngle(aA)
	qB := MakeRotFromAngle(aB)

	st.rA = RotVec2Mul(qA, Vec2Sub(st.localAnchorA, st.localCenterA))
	st.rB = RotVec2Mul(qB, Vec2Sub(st.localAnchorB, st.localCenterB))

	mA := st.invMassA
	mB := st.invMassB
	iA := st.invIA
	iB := st.invIB

	var K Mat22
	K.Ex.X = mA + mB + iA*st.rA.Y*st.rA.Y + iB*st.rB.Y*st.rB.Y
	K.Ex.Y = -iA*st.rA.X*st.rA.Y - iB*st.rB.X*st.rB.Y
	K.Ey.X = K.Ex.Y
	K.Ey.Y = mA + mB + iA*st.rA.X*st.rA.X + iB*st.rB.X*st.rB.X

	st.mass = K.GetInverse()

	if data.Step.WarmStarting {
		// Scale impulses to support a variable time step.
		st.impulse.OperatorScalarMulInplace(data.Step.DtRatio)

		vA.OperatorMinusInplace(Vec2MulScalar(mA, st.impulse))
		wA -= iA * Vec2Cross(st.rA, st.impulse)

		vB.OperatorPlusInplace(Vec2MulScalar(mB, st.impulse))
		wB += iB * Vec2Cross(st.rB, st.impulse)
	} else {
		st.impulse.SetZero()
	}

	data.Velocities[st.indexA].V = vA
	data.Velocities[st.indexA].W = wA
	data.Velocities[st.indexB].V = vB
	data.Velocities[st.indexB].W = wB
}

func (joint *Joint) solvePointVelocityConstraints(data SolverData) {
	st := &joint.point

	vA := data.Velocities[st.indexA].V
	wA := data.Velocities[st.indexA].W
	vB := data.Velocities[st.indexB].V
	wB := data.Velocities[st.indexB].W

	Cdot := Vec2Sub(Vec2Sub(Vec2Add(vB, Vec2CrossScalarVector(wB, st.rB)), vA), Vec2CrossScalarVector(wA, st.rA))

	impulse := Vec2Mat22Mul(st.mass, Cdot).OperatorNegate()
	st.impulse.OperatorPlusInplace(impulse)

	vA.OperatorMinusInplace(Vec2MulScalar(st.invMassA, impulse))
	wA -= st.invIA * Vec2Cross(st.rA, impulse)

	vB.OperatorPlusInplace(Vec2MulScalar(st.invMassB, impulse))
	wB += st.invIB * Vec2Cross(st.rB, impulse)

	data.Velocities[st.indexA].V = vA
	data.Velocities[st.indexA].W = wA
	data.Velocities[st.indexB].V = vB
	data.Velocities[st.indexB].W = wB
}

func (joint *Joint) solvePointPositionConstraints(data SolverData) bool {
	st := &joint.point

	cA := data.Positions[st.indexA].C
	aA := data.Positions[st.indexA].A
	cB := data.Positions[st.indexB].C
	aB := data.Positions[st.indexB].A

	qA := MakeRotFromAngle(aA)
	qB := MakeRotFromAngle(aB)

	rA := RotVec2Mul(qA, Vec2Sub(st.localAnchorA, st.localCenterA))
	rB := RotVec2Mul(qB, Vec2Sub(st.localAnchorB, st.localCenterB))

	C := Vec2Sub(Vec2Sub(Vec2Add(cB, rB), cA), rA)
	positionError := C.Length()

	mA := st.invMassA
	mB := st.invMassB
	iA := st.invIA
	iB := st.invIB

	var K Mat22
	K.Ex.X = mA + mB + iA*rA.Y*rA.Y + iB*rB.Y*rB.Y
	K.Ex.Y = -iA*rA.X*rA.Y - iB*rB.X*rB.Y
	K.Ey.X = K.Ex.Y
	K.Ey.Y = mA + mB + iA*rA.X*rA.X + iB*rB.X*rB.X

	impulse := K.Solve(C).OperatorNegate()

	cA.OperatorMinusInplace(Vec2MulScalar(mA, impulse))
	aA -= iA * Vec2Cross(rA, impulse)

	cB.OperatorPlusInplace(Vec2MulScalar(mB, impulse))
	aB += iB * Vec2Cross(rB, impulse)

	data.Positions[st.indexA].C = cA
	data.Positions[st.indexA].A = aA
	data.Positions[st.indexB].C = cB
	data.Positions[st.indexB].A = aB

	return positionError <= LinearSlop
}
