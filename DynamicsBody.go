package farseer

/// The body type.
/// static: zero mass, zero velocity, may be moved manually
/// kinematic: zero mass, non-zero velocity set by user, moved by solver
/// dynamic: positive mass, non-zero velocity determined by forces, moved by solver
var BodyType = struct {
	StaticBody    uint8
	KinematicBody uint8
	DynamicBody   uint8
}{
	StaticBody:    0,
	KinematicBody: 1,
	DynamicBody:   2,
}

/// A body definition holds all the data needed to construct a rigid body.
/// You can safely re-use body definitions.
type BodyDef struct {

	/// The body type: static, kinematic, or dynamic.
	/// Note: if a dynamic body would have zero mass, the mass is set to one.
	Type uint8

	/// The world position of the body. Avoid creating bodies at the origin
	/// since this can lead to many overlapping shapes.
	Position Vec2

	/// The world angle of the body in radians.
	Angle float64

	/// The linear velocity of the body's origin in world co-ordinates.
	LinearVelocity Vec2

	/// The angular velocity of the body.
	AngularVelocity float64

	/// Linear damping is use to reduce the linear velocity. The damping parameter
	/// can be larger than 1.0 but the damping effect becomes sensitive to the
	/// time step when the damping parameter is large.
	LinearDamping float64

	/// Angular damping is use to reduce the angular velocity. The damping parameter
	/// can be larger than 1.0 but the damping effect becomes sensitive to the
	/// time step when the damping parameter is large.
	AngularDamping float64

	/// Scale the gravity applied to this body.
	GravityScale float64

	/// Use this to store application specific body data.
	UserData interface{}
}

func MakeBodyDef() BodyDef {
	return BodyDef{
		Type:            BodyType.StaticBody,
		Position:        MakeVec2(0, 0),
		Angle:           0.0,
		LinearVelocity:  MakeVec2(0, 0),
		AngularVelocity: 0.0,
		LinearDamping:   0.0,
		AngularDamping:  0.0,
		GravityScale:    1.0,
		UserData:        nil,
	}
}

func NewBodyDef() *BodyDef {
	res := MakeBodyDef()
	return &res
}

/// A rigid body.
type Body struct {
	M_type uint8

	M_islandIndex int

	M_xf    Transform // the body origin transform
	M_sweep Sweep     // the swept motion for the position solver

	M_linearVelocity  Vec2
	M_angularVelocity float64

	M_force  Vec2
	M_torque float64

	M_world *World

	M_fixtureList []*Fixture

	M_mass, M_invMass float64

	// Rotational inertia about the center of mass.
	M_I, M_invI float64

	M_linearDamping  float64
	M_angularDamping float64
	M_gravityScale   float64

	M_destroyed bool

	M_userData interface{}
}

func NewBody(def *BodyDef, world *World) *Body {
	Assert(def.Position.IsValid())
	Assert(def.LinearVelocity.IsValid())
	Assert(IsValidFloat(def.Angle))
	Assert(IsValidFloat(def.AngularVelocity))
	Assert(IsValidFloat(def.AngularDamping) && def.AngularDamping >= 0.0)
	Assert(IsValidFloat(def.LinearDamping) && def.LinearDamping >= 0.0)

	body := &Body{}

	body.M_world = world
	body.M_type = def.Type

	body.M_xf.P = def.Position
	body.M_xf.Q.Set(def.Angle)

	body.M_sweep.LocalCenter.SetZero()
	body.M_sweep.C0 = body.M_xf.P
	body.M_sweep.C = body.M_xf.P
	body.M_sweep.A0 = def.Angle
	body.M_sweep.A = def.Angle
	body.M_sweep.Alpha0 = 0.0

	body.M_linearVelocity = def.LinearVelocity
	body.M_angularVelocity = def.AngularVelocity

	body.M_linearDamping = def.LinearDamping
	body.M_angularDamping = def.AngularDamping
	body.M_gravityScale = def.GravityScale

	body.M_force.SetZero()
	body.M_torque = 0.0

	if body.M_type == BodyType.DynamicBody {
		body.M_mass = 1.0
		body.M_invMass = 1.0
	} else {
		body.M_mass = 0.0
		body.M_invMass = 0.0
	}

	body.M_I = 0.0
	body.M_invI = 0.0

	body.M_userData = def.UserData

	return body
}

/// Attach a polygon shape to this body with the given density (kg/m^2).
/// The body's mass data is recomputed from its fixtures.
func (body *Body) CreateFixture(shape *PolygonShape, density float64) *Fixture {
	fixture := NewFixture(body, shape, density)
	body.M_fixtureList = append(body.M_fixtureList, fixture)
	body.ResetMassData()
	return fixture
}

/// This resets the mass properties to the sum of the mass properties of the fixtures.
func (body *Body) ResetMassData() {
	body.M_mass = 0.0
	body.M_invMass = 0.0
	body.M_I = 0.0
	body.M_invI = 0.0
	body.M_sweep.LocalCenter.SetZero()

	// Static and kinematic bodies have zero mass.
	if body.M_type == BodyType.StaticBody || body.M_type == BodyType.KinematicBody {
		body.M_sweep.C0 = body.M_xf.P
		body.M_sweep.C = body.M_xf.P
		body.M_sweep.A0 = body.M_sweep.A
		return
	}

	// Accumulate mass over all fixtures.
	localCenter := MakeVec2(0, 0)
	for _, f := range body.M_fixtureList {
		if f.M_density == 0.0 {
			continue
		}

		massData := MakeMassData()
		f.M_shape.ComputeMass(&massData, f.M_density)
		body.M_mass += massData.Mass
		localCenter.OperatorPlusInplace(Vec2MulScalar(massData.Mass, massData.Center))
		body.M_I += massData.I
	}

	// Compute center of mass.
	if body.M_mass > 0.0 {
		body.M_invMass = 1.0 / body.M_mass
		localCenter.OperatorScalarMulInplace(body.M_invMass)
	} else {
		// Force all dynamic bodies to have a positive mass.
		body.M_mass = 1.0
		body.M_invMass = 1.0
	}

	if body.M_I > 0.0 {
		// Center the inertia about the center of mass.
		body.M_I -= body.M_mass * Vec2Dot(localCenter, localCenter)
		Assert(body.M_I > 0.0)
		body.M_invI = 1.0 / body.M_I
	} else {
		body.M_I = 0.0
		body.M_invI = 0.0
	}

	// Move center of mass.
	oldCenter := body.M_sweep.C
	body.M_sweep.LocalCenter = localCenter
	body.M_sweep.C = TransformVec2Mul(body.M_xf, body.M_sweep.LocalCenter)
	body.M_sweep.C0 = body.M_sweep.C

	// Update center of mass velocity.
	body.M_linearVelocity.OperatorPlusInplace(Vec2CrossScalarVector(
		body.M_angularVelocity,
		Vec2Sub(body.M_sweep.C, oldCenter),
	))
}

/// Set the mass properties to override the mass properties of the fixtures.
/// This changes the center of mass position.
func (body *Body) SetMassData(massData *MassData) {
	if body.M_type != BodyType.DynamicBody {
		return
	}

	body.M_invMass = 0.0
	body.M_I = 0.0
	body.M_invI = 0.0

	body.M_mass = massData.Mass
	if body.M_mass <= 0.0 {
		body.M_mass = 1.0
	}

	body.M_invMass = 1.0 / body.M_mass

	if massData.I > 0.0 {
		body.M_I = massData.I - body.M_mass*Vec2Dot(massData.Center, massData.Center)
		Assert(body.M_I > 0.0)
		body.M_invI = 1.0 / body.M_I
	}

	// Move center of mass.
	oldCenter := body.M_sweep.C
	body.M_sweep.LocalCenter = massData.Center
	body.M_sweep.C = TransformVec2Mul(body.M_xf, body.M_sweep.LocalCenter)
	body.M_sweep.C0 = body.M_sweep.C

	// Update center of mass velocity.
	body.M_linearVelocity.OperatorPlusInplace(Vec2CrossScalarVector(
		body.M_angularVelocity,
		Vec2Sub(body.M_sweep.C, oldCenter),
	))
}

func (body Body) GetType() uint8 {
	return body.M_type
}

func (body Body) GetTransform() Transform {
	return body.M_xf
}

func (body Body) GetPosition() Vec2 {
	return body.M_xf.P
}

func (body Body) GetAngle() float64 {
	return body.M_sweep.A
}

func (body Body) GetWorldCenter() Vec2 {
	return body.M_sweep.C
}

func (body Body) GetLocalCenter() Vec2 {
	return body.M_sweep.LocalCenter
}

/// Set the position of the body's origin and rotation.
/// Note: joints connected to this body drift toward the new pose over
/// subsequent steps.
func (body *Body) SetTransform(position Vec2, angle float64) {
	body.M_xf.Q.Set(angle)
	body.M_xf.P = position

	body.M_sweep.C = TransformVec2Mul(body.M_xf, body.M_sweep.LocalCenter)
	body.M_sweep.A = angle

	body.M_sweep.C0 = body.M_sweep.C
	body.M_sweep.A0 = angle
}

func (body *Body) SetLinearVelocity(v Vec2) {
	if body.M_type == BodyType.StaticBody {
		return
	}

	body.M_linearVelocity = v
}

func (body Body) GetLinearVelocity() Vec2 {
	return body.M_linearVelocity
}

func (body *Body) SetAngularVelocity(w float64) {
	if body.M_type == BodyType.StaticBody {
		return
	}

	body.M_angularVelocity = w
}

func (body Body) GetAngularVelocity() float64 {
	return body.M_angularVelocity
}

func (body Body) GetMass() float64 {
	return body.M_mass
}

func (body Body) GetInertia() float64 {
	return body.M_I + body.M_mass*Vec2Dot(body.M_sweep.LocalCenter, body.M_sweep.LocalCenter)
}

/// Get the world coordinates of a point given the local coordinates.
func (body Body) GetWorldPoint(localPoint Vec2) Vec2 {
	return TransformVec2Mul(body.M_xf, localPoint)
}

/// Get the world coordinates of a vector given the local coordinates.
func (body Body) GetWorldVector(localVector Vec2) Vec2 {
	return RotVec2Mul(body.M_xf.Q, localVector)
}

/// Gets a local point relative to the body's origin given a world point.
func (body Body) GetLocalPoint(worldPoint Vec2) Vec2 {
	return TransformVec2MulT(body.M_xf, worldPoint)
}

/// Gets a local vector given a world vector.
func (body Body) GetLocalVector(worldVector Vec2) Vec2 {
	return RotVec2MulT(body.M_xf.Q, worldVector)
}

/// Get the world linear velocity of a world point attached to this body.
func (body Body) GetLinearVelocityFromWorldPoint(worldPoint Vec2) Vec2 {
	return Vec2Add(
		body.M_linearVelocity,
		Vec2CrossScalarVector(
			body.M_angularVelocity,
			Vec2Sub(worldPoint, body.M_sweep.C),
		),
	)
}

/// Get the world velocity of a local point.
func (body Body) GetLinearVelocityFromLocalPoint(localPoint Vec2) Vec2 {
	return body.GetLinearVelocityFromWorldPoint(body.GetWorldPoint(localPoint))
}

func (body Body) GetLinearDamping() float64 {
	return body.M_linearDamping
}

func (body *Body) SetLinearDamping(linearDamping float64) {
	body.M_linearDamping = linearDamping
}

func (body Body) GetAngularDamping() float64 {
	return body.M_angularDamping
}

func (body *Body) SetAngularDamping(angularDamping float64) {
	body.M_angularDamping = angularDamping
}

func (body Body) GetGravityScale() float64 {
	return body.M_gravityScale
}

func (body *Body) SetGravityScale(scale float64) {
	body.M_gravityScale = scale
}

/// Apply a force at a world point. If the force is not
/// applied at the center of mass, it will generate a torque and
/// affect the angular velocity.
func (body *Body) ApplyForce(force Vec2, point Vec2) {
	if body.M_type != BodyType.DynamicBody || body.M_destroyed {
		return
	}

	body.M_force.OperatorPlusInplace(force)
	body.M_torque += Vec2Cross(
		Vec2Sub(point, body.M_sweep.C),
		force,
	)
}

/// Apply a force to the center of mass.
func (body *Body) ApplyForceToCenter(force Vec2) {
	if body.M_type != BodyType.DynamicBody || body.M_destroyed {
		return
	}

	body.M_force.OperatorPlusInplace(force)
}

/// Apply a torque. This affects the angular velocity
/// without affecting the linear velocity of the center of mass.
func (body *Body) ApplyTorque(torque float64) {
	if body.M_type != BodyType.DynamicBody || body.M_destroyed {
		return
	}

	body.M_torque += torque
}

/// Apply an impulse at a point. This immediately modifies the velocity.
/// It also modifies the angular velocity if the point of application
/// is not at the center of mass.
func (body *Body) ApplyLinearImpulse(impulse Vec2, point Vec2) {
	if body.M_type != BodyType.DynamicBody || body.M_destroyed {
		return
	}

	body.M_linearVelocity.OperatorPlusInplace(Vec2MulScalar(body.M_invMass, impulse))
	body.M_angularVelocity += body.M_invI * Vec2Cross(
		Vec2Sub(point, body.M_sweep.C),
		impulse,
	)
}

func (body Body) GetFixtureList() []*Fixture {
	return body.M_fixtureList
}

func (body Body) IsStatic() bool {
	return body.M_invMass == 0.0 && body.M_invI == 0.0
}

/// A destroyed body must never receive forces or corrections; joints and
/// controllers referencing it report themselves invalid.
func (body Body) IsDestroyed() bool {
	return body.M_destroyed
}

func (body *Body) SetUserData(data interface{}) {
	body.M_userData = data
}

func (body Body) GetUserData() interface{} {
	return body.M_userData
}

func (body Body) GetWorld() *World {
	return body.M_world
}

func (body *Body) SynchronizeTransform() {
	body.M_xf.Q.Set(body.M_sweep.A)
	body.M_xf.P = Vec2Sub(
		body.M_sweep.C,
		RotVec2Mul(body.M_xf.Q, body.M_sweep.LocalCenter),
	)
}
