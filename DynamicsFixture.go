package farseer

/// A fixture binds a polygon shape to a body with a surface density.
/// Fixtures carry no broad-phase state; the fluid controller queries their
/// world bounding box directly from the current body transform.
type Fixture struct {
	M_body    *Body
	M_shape   *PolygonShape
	M_density float64

	M_userData interface{}
}

func NewFixture(body *Body, shape *PolygonShape, density float64) *Fixture {
	Assert(IsValidFloat(density) && density >= 0.0)

	return &Fixture{
		M_body:    body,
		M_shape:   shape,
		M_density: density,
	}
}

func (fix Fixture) GetBody() *Body {
	return fix.M_body
}

func (fix Fixture) GetShape() *PolygonShape {
	return fix.M_shape
}

func (fix Fixture) GetDensity() float64 {
	return fix.M_density
}

func (fix *Fixture) SetDensity(density float64) {
	Assert(IsValidFloat(density) && density >= 0.0)
	fix.M_density = density
}

func (fix Fixture) GetUserData() interface{} {
	return fix.M_userData
}

func (fix *Fixture) SetUserData(data interface{}) {
	fix.M_userData = data
}

/// Get the world bounding box of the shape under the body's current transform.
func (fix Fixture) GetAABB() AABB {
	return fix.M_shape.ComputeAABB(fix.M_body.GetTransform())
}
