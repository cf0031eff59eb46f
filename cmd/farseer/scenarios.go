package main

import (
	"math"
	"sort"

	farseer "github.com/EIGHTFINITE-Vendor/farseer-physics"
	"github.com/EIGHTFINITE-Vendor/farseer-physics/internal/config"
)

// A scenario populates the world and returns the body whose height the
// run command samples and plots.
type scenarioFunc func(world *farseer.World, cfg *config.Config) *farseer.Body

var scenarios = map[string]scenarioFunc{
	"weld_pair":  buildWeldPair,
	"fluid_bath": buildFluidBath,
	"spring_web": buildSpringWeb,
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func makeBox(world *farseer.World, bodyType uint8, position farseer.Vec2, hx, hy, density float64) *farseer.Body {
	def := farseer.MakeBodyDef()
	def.Type = bodyType
	def.Position = position

	body := world.CreateBody(&def)

	shape := farseer.MakePolygonShape()
	shape.SetAsBox(hx, hy)
	body.CreateFixture(&shape, density)

	return body
}

// Two boxes welded side by side, hung from a fixed spring. The weld keeps
// them rigid while the spring makes the pair bounce.
func buildWeldPair(world *farseer.World, cfg *config.Config) *farseer.Body {
	rng := farseer.MakeRand(cfg.Seed)

	left := makeBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(-0.5, 5.0), 0.5, 0.5, 1.0)
	right := makeBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.5, 5.0), 0.5, 0.5, 1.0)

	jd := farseer.MakeWeldJointDef()
	jd.Initialize(left, right, farseer.MakeVec2(0.0, 5.0))
	world.CreateJoint(&jd)

	anchor := farseer.MakeVec2(rng.Float(-0.2, 0.2), 10.0)
	spring := farseer.MakeFixedLinearSpring(left, farseer.MakeVec2(0, 0), anchor,
		cfg.Spring.Stiffness, cfg.Spring.Damping)
	if cfg.Spring.Breakpoint > 0 {
		spring.SetBreakpoint(cfg.Spring.Breakpoint)
	}
	world.AddController(spring)

	return left
}

// A box dropped into a fluid box. With a wave amplitude configured the
// surface animates; otherwise it is a flat bath.
func buildFluidBath(world *farseer.World, cfg *config.Config) *farseer.Body {
	rng := farseer.MakeRand(cfg.Seed)

	drop := rng.Float(-2.0, 2.0)
	box := makeBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(drop, 4.0), 0.5, 0.5, 1.0)

	bounds := farseer.MakeAABB(farseer.MakeVec2(-10.0, -5.0), farseer.MakeVec2(10.0, 0.0))

	var region farseer.FluidRegionInterface
	if cfg.Fluid.WaveAmplitude > 0 {
		region = farseer.MakeWaveFluidRegion(bounds, cfg.Fluid.WaveAmplitude, cfg.Fluid.WaveFrequency, cfg.Fluid.WaveNumber)
	} else {
		region = farseer.MakeAABBFluidRegion(bounds)
	}

	fluid := farseer.MakeFluidDragController(region, cfg.Fluid.Density,
		cfg.Fluid.LinearDrag, cfg.Fluid.AngularDrag, world.GetGravity())
	fluid.AddFixture(box.GetFixtureList()[0])
	world.AddController(fluid)

	return box
}

// A ring of boxes around a hub, connected by body-to-body springs. The
// hub is what gets tracked.
func buildSpringWeb(world *farseer.World, cfg *config.Config) *farseer.Body {
	rng := farseer.MakeRand(cfg.Seed)

	hub := makeBox(world, farseer.BodyType.DynamicBody, farseer.MakeVec2(0.0, 6.0), 0.3, 0.3, 2.0)
	hub.SetGravityScale(0.0)

	const count = 6
	for i := 0; i < count; i++ {
		angle := 2.0 * math.Pi * float64(i) / count
		pos := farseer.MakeVec2(2.0*math.Cos(angle), 6.0+2.0*math.Sin(angle))
		pos.OperatorPlusInplace(rng.Vec2(-0.1, 0.1))

		node := makeBox(world, farseer.BodyType.DynamicBody, pos, 0.2, 0.2, 1.0)

		spring := farseer.MakeLinearSpring(hub, node,
			farseer.MakeVec2(0, 0), farseer.MakeVec2(0, 0),
			cfg.Spring.Stiffness, cfg.Spring.Damping)
		if cfg.Spring.Breakpoint > 0 {
			spring.SetBreakpoint(cfg.Spring.Breakpoint)
		}
		world.AddController(spring)
	}

	return hub
}
