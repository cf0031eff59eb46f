package farseer

/// This holds the mass data computed for a shape.
type MassData struct {
	/// The mass of the shape, usually in kilograms.
	Mass float64

	/// The position of the shape's centroid relative to the shape's origin.
	Center Vec2

	/// The rotational inertia of the shape about the local origin.
	I float64
}

func MakeMassData() MassData {
	return MassData{
		Mass:   0.0,
		Center: MakeVec2(0, 0),
		I:      0.0,
	}
}

/// A solid convex polygon. The interior of the polygon is to the left of
/// each edge; vertices wind counter-clockwise.
type PolygonShape struct {
	M_centroid Vec2
	M_vertices []Vec2
}

func MakePolygonShape() PolygonShape {
	return PolygonShape{
		M_centroid: MakeVec2(0, 0),
	}
}

func NewPolygonShape() *PolygonShape {
	res := MakePolygonShape()
	return &res
}

func (poly PolygonShape) GetVertexCount() int {
	return len(poly.M_vertices)
}

func (poly PolygonShape) GetVertex(index int) Vec2 {
	Assert(0 <= index && index < len(poly.M_vertices))
	return poly.M_vertices[index]
}

/// Build vertices to represent an axis-aligned box centered on the local origin.
func (poly *PolygonShape) SetAsBox(hx, hy float64) {
	poly.M_vertices = []Vec2{
		MakeVec2(-hx, -hy),
		MakeVec2(hx, -hy),
		MakeVec2(hx, hy),
		MakeVec2(-hx, hy),
	}
	poly.M_centroid.SetZero()
}

/// Build vertices to represent an oriented box.
func (poly *PolygonShape) SetAsBoxFromCenterAndAngle(hx, hy float64, center Vec2, angle float64) {
	poly.SetAsBox(hx, hy)
	poly.M_centroid = center

	xf := MakeTransform()
	xf.P = center
	xf.Q.Set(angle)

	for i := range poly.M_vertices {
		poly.M_vertices[i] = TransformVec2Mul(xf, poly.M_vertices[i])
	}
}

/// Create a convex polygon from the given counter-clockwise vertex list.
/// The vertices are copied.
func (poly *PolygonShape) Set(vertices []Vec2) {
	Assert(3 <= len(vertices) && len(vertices) <= MaxPolygonVertices)

	poly.M_vertices = make([]Vec2, len(vertices))
	copy(poly.M_vertices, vertices)
	poly.M_centroid = ComputeCentroid(poly.M_vertices)
}

func ComputeCentroid(vs []Vec2) Vec2 {

	count := len(vs)
	Assert(count >= 3)

	c := MakeVec2(0, 0)
	area := 0.0

	// pRef is the reference point for forming triangles.
	// Its location doesn't change the result (except for rounding error).
	pRef := MakeVec2(0.0, 0.0)
	for i := 0; i < count; i++ {
		pRef.OperatorPlusInplace(vs[i])
	}
	pRef.OperatorScalarMulInplace(1.0 / float64(count))

	inv3 := 1.0 / 3.0

	for i := 0; i < count; i++ {
		// Triangle vertices.
		p1 := pRef
		p2 := vs[i]
		p3 := vs[(i+1)%count]

		e1 := Vec2Sub(p2, p1)
		e2 := Vec2Sub(p3, p1)

		D := Vec2Cross(e1, e2)

		triangleArea := 0.5 * D
		area += triangleArea

		// Area weighted centroid
		c.OperatorPlusInplace(Vec2MulScalar(triangleArea*inv3, Vec2Add(Vec2Add(p1, p2), p3)))
	}

	Assert(area > Epsilon)
	c.OperatorScalarMulInplace(1.0 / area)
	return c
}

/// Compute the signed area of the polygon by the shoelace formula.
func (poly PolygonShape) ComputeArea() float64 {
	count := len(poly.M_vertices)
	area := 0.0
	for i := 0; i < count; i++ {
		v1 := poly.M_vertices[i]
		v2 := poly.M_vertices[(i+1)%count]
		area += Vec2Cross(v1, v2)
	}
	return 0.5 * area
}

/// Compute the axis-aligned bounding box of the polygon under a transform.
func (poly PolygonShape) ComputeAABB(xf Transform) AABB {
	lower := TransformVec2Mul(xf, poly.M_vertices[0])
	upper := lower

	for i := 1; i < len(poly.M_vertices); i++ {
		v := TransformVec2Mul(xf, poly.M_vertices[i])
		lower = Vec2Min(lower, v)
		upper = Vec2Max(upper, v)
	}

	return MakeAABB(lower, upper)
}

/// Compute mass, centroid, and rotational inertia about the local origin.
func (poly PolygonShape) ComputeMass(massData *MassData, density float64) {
	// Polygon mass, centroid, and inertia.
	// Let rho be the polygon density in mass per unit area.
	// Then:
	// mass = rho * int(dA)
	// centroid.x = (1/mass) * rho * int(x * dA)
	// centroid.y = (1/mass) * rho * int(y * dA)
	// I = rho * int((x*x + y*y) * dA)
	//
	// We can compute these integrals by summing all the integrals
	// for each triangle of the polygon.

	count := len(poly.M_vertices)
	Assert(count >= 3)

	center := MakeVec2(0, 0)
	area := 0.0
	I := 0.0

	// s is the reference point for forming triangles.
	// It's location doesn't change the result (except for rounding error).
	s := poly.M_vertices[0]

	k_inv3 := 1.0 / 3.0

	for i := 0; i < count; i++ {
		// Triangle vertices.
		e1 := Vec2Sub(poly.M_vertices[i], s)
		e2 := Vec2Sub(poly.M_vertices[(i+1)%count], s)

		D := Vec2Cross(e1, e2)

		triangleArea := 0.5 * D
		area += triangleArea

		// Area weighted centroid
		center.OperatorPlusInplace(Vec2MulScalar(triangleArea*k_inv3, Vec2Add(e1, e2)))

		ex1 := e1.X
		ey1 := e1.Y
		ex2 := e2.X
		ey2 := e2.Y

		intx2 := ex1*ex1 + ex2*ex1 + ex2*ex2
		inty2 := ey1*ey1 + ey2*ey1 + ey2*ey2

		I += (0.25 * k_inv3 * D) * (intx2 + inty2)
	}

	// Total mass
	massData.Mass = density * area

	// Center of mass
	Assert(area > Epsilon)
	center.OperatorScalarMulInplace(1.0 / area)
	massData.Center = Vec2Add(center, s)

	// Inertia tensor relative to the local origin (point s).
	massData.I = density * I

	// Shift to center of mass then to original body origin.
	massData.I += massData.Mass * (Vec2Dot(massData.Center, massData.Center) - Vec2Dot(center, center))
}
