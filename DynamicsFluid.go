package farseer

import (
	"math"
)

/// A fluid region is a queryable area of fluid: a coarse bounding-box
/// intersection test for cheap rejection, an exact point containment
/// test, and a per-step update hook for animated regions.
type FluidRegionInterface interface {
	Intersects(aabb AABB) bool
	Contains(p Vec2) bool
	Update(dt float64)
}

/// A static axis-aligned box of fluid.
type AABBFluidRegion struct {
	M_bounds AABB
}

func MakeAABBFluidRegion(bounds AABB) *AABBFluidRegion {
	return &AABBFluidRegion{
		M_bounds: bounds,
	}
}

func (region AABBFluidRegion) Intersects(aabb AABB) bool {
	return TestOverlapBoundingBoxes(region.M_bounds, aabb)
}

func (region AABBFluidRegion) Contains(p Vec2) bool {
	return region.M_bounds.ContainsPoint(p)
}

func (region *AABBFluidRegion) Update(dt float64) {}

/// A box of fluid whose surface height animates as a travelling sine
/// wave. The sides and bottom stay fixed; only the surface moves.
type WaveFluidRegion struct {
	M_bounds     AABB
	M_amplitude  float64
	M_frequency  float64 // temporal, in Hz
	M_waveNumber float64 // spatial, in radians per meter
	M_phase      float64
}

func MakeWaveFluidRegion(bounds AABB, amplitude, frequency, waveNumber float64) *WaveFluidRegion {
	return &WaveFluidRegion{
		M_bounds:     bounds,
		M_amplitude:  amplitude,
		M_frequency:  frequency,
		M_waveNumber: waveNumber,
	}
}

func (region *WaveFluidRegion) Update(dt float64) {
	region.M_phase += 2.0 * Pi * region.M_frequency * dt
}

/// Get the surface height at horizontal position x.
func (region WaveFluidRegion) SurfaceHeight(x float64) float64 {
	return region.M_bounds.UpperBound.Y + region.M_amplitude*math.Sin(region.M_waveNumber*x-region.M_phase)
}

func (region WaveFluidRegion) Intersects(aabb AABB) bool {
	// Inflate the rest bounds by the wave amplitude on top.
	bounds := region.M_bounds
	bounds.UpperBound.Y += region.M_amplitude
	return TestOverlapBoundingBoxes(bounds, aabb)
}

func (region WaveFluidRegion) Contains(p Vec2) bool {
	if p.X < region.M_bounds.LowerBound.X || p.X > region.M_bounds.UpperBound.X {
		return false
	}
	if p.Y < region.M_bounds.LowerBound.Y {
		return false
	}
	return p.Y <= region.SurfaceHeight(p.X)
}

/// Called when a tracked fixture transitions from dry to submerged.
/// The polygon holds the fixture's submerged world-space vertices.
type FluidEntryListener func(fixture *Fixture, polygon []Vec2)

/// Applies buoyancy and drag to tracked fixtures each step, based on how
/// much of each fixture's polygon lies inside a fluid region. The only
/// state persisted across steps is the per-fixture submerged flag, which
/// drives the entry notification.
type FluidDragController struct {
	Controller

	M_region       FluidRegionInterface
	M_fluidDensity float64
	M_gravity      Vec2

	M_linearDragCoefficient  float64
	M_angularDragCoefficient float64

	M_fixtures  []*Fixture
	M_submerged map[*Fixture]bool

	M_entryListener FluidEntryListener
}

func MakeFluidDragController(region FluidRegionInterface, fluidDensity float64, linearDrag, angularDrag float64, gravity Vec2) *FluidDragController {
	return &FluidDragController{
		Controller:               MakeController(),
		M_region:                 region,
		M_fluidDensity:           fluidDensity,
		M_gravity:                gravity,
		M_linearDragCoefficient:  linearDrag,
		M_angularDragCoefficient: angularDrag,
		M_submerged:              make(map[*Fixture]bool),
	}
}

/// Track a fixture. The fixture starts out classified as dry.
func (fluid *FluidDragController) AddFixture(fixture *Fixture) {
	fluid.M_fixtures = append(fluid.M_fixtures, fixture)
	fluid.M_submerged[fixture] = false
}

func (fluid *FluidDragController) RemoveFixture(fixture *Fixture) {
	for i, f := range fluid.M_fixtures {
		if f == fixture {
			fluid.M_fixtures = append(fluid.M_fixtures[:i], fluid.M_fixtures[i+1:]...)
			break
		}
	}
	delete(fluid.M_submerged, fixture)
}

/// Register the listener notified on dry-to-submerged transitions.
func (fluid *FluidDragController) SetEntryListener(listener FluidEntryListener) {
	fluid.M_entryListener = listener
}

/// Is the fixture currently classified as submerged?
func (fluid FluidDragController) IsSubmerged(fixture *Fixture) bool {
	return fluid.M_submerged[fixture]
}

func (fluid FluidDragController) GetRegion() FluidRegionInterface {
	return fluid.M_region
}

func (fluid FluidDragController) IsValid() bool {
	return fluid.M_region != nil
}

func (fluid *FluidDragController) Update(step TimeStep) {
	if !fluid.M_enabled || fluid.M_region == nil {
		return
	}

	fluid.M_region.Update(step.Dt)

	for _, fixture := range fluid.M_fixtures {
		body := fixture.GetBody()
		if body.IsDestroyed() {
			continue
		}

		if !fluid.M_region.Intersects(fixture.GetAABB()) {
			fluid.M_submerged[fixture] = false
			continue
		}

		xf := body.GetTransform()
		shape := fixture.GetShape()

		inside := make([]Vec2, 0, shape.GetVertexCount())
		for _, v := range shape.M_vertices {
			w := TransformVec2Mul(xf, v)
			if fluid.M_region.Contains(w) {
				inside = append(inside, w)
			}
		}

		fraction := float64(len(inside)) / float64(shape.GetVertexCount())
		wasSubmerged := fluid.M_submerged[fixture]

		if fraction < FluidSubmergedFractionMin {
			fluid.M_submerged[fixture] = false
		} else {
			fluid.M_submerged[fixture] = true
			if !wasSubmerged && fluid.M_entryListener != nil {
				fluid.M_entryListener(fixture, inside)
			}
		}

		area, centroid := SubmergedAreaAndCentroid(inside)
		if area <= FluidAreaMin {
			continue
		}

		// Buoyancy opposes gravity, scaled by the displaced weight.
		force := Vec2MulScalar(-area*fixture.GetDensity()*fluid.M_fluidDensity, fluid.M_gravity)

		partialMass := body.GetMass() * (area / shape.ComputeArea())

		vc := body.GetLinearVelocityFromWorldPoint(centroid)
		speed := vc.Length()
		if speed > Epsilon {
			// Drag cross-section: the extent of the submerged polygon on
			// the axis perpendicular to the centroid velocity.
			perp := Vec2MulScalar(1.0/speed, vc).Skew()

			min := Vec2Dot(inside[0], perp)
			max := min
			for i := 1; i < len(inside); i++ {
				d := Vec2Dot(inside[i], perp)
				min = math.Min(min, d)
				max = math.Max(max, d)
			}
			dragWidth := max - min

			drag := Vec2MulScalar(-0.5*fluid.M_fluidDensity*dragWidth*fluid.M_linearDragCoefficient*partialMass, vc)
			force.OperatorPlusInplace(drag)
		}

		body.ApplyForceToCenter(force)
		body.ApplyTorque(-body.GetAngularVelocity() * fluid.M_angularDragCoefficient * partialMass)
	}
}

/// Area and centroid of the polygon formed by the submerged vertices,
/// by the shoelace formula. Polygons with fewer than three vertices have
/// no area.
func SubmergedAreaAndCentroid(vs []Vec2) (float64, Vec2) {
	count := len(vs)
	if count < 3 {
		return 0.0, MakeVec2(0, 0)
	}

	area := 0.0
	centroid := MakeVec2(0, 0)

	for i := 0; i < count; i++ {
		v1 := vs[i]
		v2 := vs[(i+1)%count]

		cross := Vec2Cross(v1, v2)
		area += cross
		centroid.OperatorPlusInplace(Vec2MulScalar(cross, Vec2Add(v1, v2)))
	}

	area *= 0.5
	if math.Abs(area) < Epsilon {
		return 0.0, MakeVec2(0, 0)
	}

	centroid.OperatorScalarMulInplace(1.0 / (6.0 * area))
	return area, centroid
}
