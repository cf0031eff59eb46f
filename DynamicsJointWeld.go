package farseer

import (
	"math"
)

/// Weld joint definition. You need to specify local anchor points
/// where they are attached and the relative body angle. The position
/// of the anchor points is important for computing the reaction torque.
type WeldJointDef struct {
	JointDef

	/// The local anchor point relative to bodyA's origin.
	LocalAnchorA Vec2

	/// The local anchor point relative to bodyB's origin.
	LocalAnchorB Vec2

	/// The bodyB angle minus bodyA angle in the reference state (radians).
	ReferenceAngle float64
}

func MakeWeldJointDef() WeldJointDef {
	res := WeldJointDef{
		JointDef: MakeJointDef(),
	}

	res.Type = JointType.E_weldJoint
	res.LocalAnchorA.Set(0.0, 0.0)
	res.LocalAnchorB.Set(0.0, 0.0)
	res.ReferenceAngle = 0.0

	return res
}

/// Initialize the bodies, anchors, and reference angle using a world
/// anchor point.
func (def *WeldJointDef) Initialize(bA *Body, bB *Body, anchor Vec2) {
	def.BodyA = bA
	def.BodyB = bB
	def.LocalAnchorA = def.BodyA.GetLocalPoint(anchor)
	def.LocalAnchorB = def.BodyB.GetLocalPoint(anchor)
	def.ReferenceAngle = def.BodyB.GetAngle() - def.BodyA.GetAngle()
}

/// A weld joint essentially glues two bodies together. A weld joint may
/// distort somewhat because the constraint solver is approximate.
type weldJointState struct {
	// Solver shared
	localAnchorA   Vec2
	localAnchorB   Vec2
	referenceAngle float64
	impulse        Vec3

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
	mass         Mat33
}

// Point-to-point constraint
// C = p2 - p1
// Cdot = v2 - v1
//      = v2 + cross(w2, r2) - v1 - cross(w1, r1)
// J = [-I -r1_skew I r2_skew ]
// Identity used:
// w k % (rx i + ry j) = w * (-ry i + rx j)

// Angle constraint
// C = angle2 - angle1 - referenceAngle
// Cdot = w2 - w1
// J = [0 0 -1 0 0 1]
// K = invI1 + invI2

func MakeWeldJoint(def *WeldJointDef) *Joint {
	res := makeJointBase(def)

	res.weld.localAnchorA = def.LocalAnchorA
	res.weld.localAnchorB = def.LocalAnchorB
	res.weld.referenceAngle = def.ReferenceAngle
	res.weld.impulse.SetZero()

	return &res
}

/// Get the reference angle of a weld joint.
func (j Joint) GetReferenceAngle() float64 {
	return j.weld.referenceAngle
}

func (joint *Joint) initWeldVelocityConstraints(data SolverData) {
	st := &joint.weld

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

	// J = [-I -r1_skew I r2_skew]
	//     [ 0       -1 0       1]
	// r_skew = [-ry; rx]

	// K = [ mA+r1y^2*iA+mB+r2y^2*iB,  -r1y*iA*r1x-r2y*iB*r2x,          -r1y*iA-r2y*iB]
	//     [  -r1y*iA*r1x-r2y*iB*r2x, mA+r1x^2*iA+mB+r2x^2*iB,           r1x*iA+r2x*iB]
	//     [          -r1y*iA-r2y*iB,           r1x*iA+r2x*iB,                   iA+iB]

	mA := st.invMassA
	mB := st.invMassB
	iA := st.invIA
	iB := st.invIB

	var K Mat33
	K.Ex.X = mA + mB + st.rA.Y*st.rA.Y*iA + st.rB.Y*st.rB.Y*iB
	K.Ey.X = -st.rA.Y*st.rA.X*iA - st.rB.Y*st.rB.X*iB
	K.Ez.X = -st.rA.Y*iA - st.rB.Y*iB
	K.Ex.Y = K.Ey.X
	K.Ey.Y = mA + mB + st.rA.X*st.rA.X*iA + st.rB.X*st.rB.X*iB
	K.Ez.Y = st.rA.X*iA + st.rB.X*iB
	K.Ex.Z = K.Ez.X
	K.Ey.Z = K.Ez.Y
	K.Ez.Z = iA + iB

	if K.Ez.Z == 0.0 {
		// Both bodies have fixed rotation; only the translational rows remain.
		K.GetInverse22(&st.mass)
	} else {
		K.GetSymInverse33(&st.mass)
	}

	if data.Step.WarmStarting {
		// Scale impulses to support a variable time step.
		st.impulse.OperatorScalarMultInplace(data.Step.DtRatio)

		P := MakeVec2(st.impulse.X, st.impulse.Y)

		vA.OperatorMinusInplace(Vec2MulScalar(mA, P))
		wA -= iA * (Vec2Cross(st.rA, P) + st.impulse.Z)

		vB.OperatorPlusInplace(Vec2MulScalar(mB, P))
		wB += iB * (Vec2Cross(st.rB, P) + st.impulse.Z)
	} else {
		st.impulse.SetZero()
	}

	data.Velocities[st.indexA].V = vA
	data.Velocities[st.indexA].W = wA
	data.Velocities[st.indexB].V = vB
	data.Velocities[st.indexB].W = wB
}

func (joint *Joint) solveWeldVelocityConstraints(data SolverData) {
	st := &joint.weld

	vA := data.Velocities[st.indexA].V
	wA := data.Velocities[st.indexA].W
	vB := data.Velocities[st.indexB].V
	wB := data.Velocities[st.indexB].W

	mA := st.invMassA
	mB := st.invMassB
	iA := st.invIA
	iB := st.invIB

	Cdot1 := Vec2Sub(Vec2Sub(Vec2Add(vB, Vec2CrossScalarVector(wB, st.rB)), vA), Vec2CrossScalarVector(wA, st.rA))
	Cdot2 := wB - wA
	Cdot := MakeVec3(Cdot1.X, Cdot1.Y, Cdot2)

	impulse := Vec3Mat33Mul(st.mass, Cdot).OperatorNegate()
	st.impulse.OperatorPlusInplace(impulse)

	P := MakeVec2(impulse.X, impulse.Y)

	vA.OperatorMinusInplace(Vec2MulScalar(mA, P))
	wA -= iA * (Vec2Cross(st.rA, P) + impulse.Z)

	vB.OperatorPlusInplace(Vec2MulScalar(mB, P))
	wB += iB * (Vec2Cross(st.rB, P) + impulse.Z)

	data.Velocities[st.indexA].V = vA
	data.Velocities[st.indexA].W = wA
	data.Velocities[st.indexB].V = vB
	data.Velocities[st.indexB].W = wB
}

func (joint *Joint) solveWeldPositionConstraints(data SolverData) bool {
	st := &joint.weld

	cA := data.Positions[st.indexA].C
	aA := data.Positions[st.indexA].A
	cB := data.Positions[st.indexB].C
	aB := data.Positions[st.indexB].A

	qA := MakeRotFromAngle(aA)
	qB := MakeRotFromAngle(aB)

	mA := st.invMassA
	mB := st.invMassB
	iA := st.invIA
	iB := st.invIB

	rA := RotVec2Mul(qA, Vec2Sub(st.localAnchorA, st.localCenterA))
	rB := RotVec2Mul(qB, Vec2Sub(st.localAnchorB, st.localCenterB))

	positionError := 0.0
	angularError := 0.0

	var K Mat33
	K.Ex.X = mA + mB + rA.Y*rA.Y*iA + rB.Y*rB.Y*iB
	K.Ey.X = -rA.Y*rA.X*iA - rB.Y*rB.X*iB
	K.Ez.X = -rA.Y*iA - rB.Y*iB
	K.Ex.Y = K.Ey.X
	K.Ey.Y = mA + mB + rA.X*rA.X*iA + rB.X*rB.X*iB
	K.Ez.Y = rA.X*iA + rB.X*iB
	K.Ex.Z = K.Ez.X
	K.Ey.Z = K.Ez.Y
	K.Ez.Z = iA + iB

	C1 := Vec2Sub(Vec2Sub(Vec2Add(cB, rB), cA), rA)
	C2 := aB - aA - st.referenceAngle

	positionError = C1.Length()
	angularError = math.Abs(C2)

	C := MakeVec3(C1.X, C1.Y, C2)

	var impulse Vec3
	if K.Ez.Z > 0.0 {
		impulse = K.Solve33(C).OperatorNegate()
	} else {
		impulse2 := K.Solve22(C1).OperatorNegate()
		impulse.Set(impulse2.X, impulse2.Y, 0.0)
	}

	P := MakeVec2(impulse.X, impulse.Y)

	cA.OperatorMinusInplace(Vec2MulScalar(mA, P))
	aA -= iA * (Vec2Cross(rA, P) + impulse.Z)

	cB.OperatorPlusInplace(Vec2MulScalar(mB, P))
	aB += iB * (Vec2Cross(rB, P) + impulse.Z)

	data.Positions[st.indexA].C = cA
	data.Positions[st.indexA].A = aA
	data.Positions[st.indexB].C = cB
	data.Positions[st.indexB].A = aB

	return positionError <= LinearSlop && angularError <= AngularSlop
}
