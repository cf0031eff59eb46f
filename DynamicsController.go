package farseer

/// Controllers are continuous force generators. The world runs every
/// enabled, valid controller once per step, before velocity integration;
/// controllers write into the body force/torque accumulators and never
/// touch the constraint solver.
type ControllerInterface interface {
	/// Compute and apply this step's forces.
	Update(step TimeStep)

	IsEnabled() bool
	SetEnabled(flag bool)

	/// Reports false once a referenced body has been destroyed. The
	/// stepping driver must check this before calling Update; permanent
	/// removal is the caller's responsibility.
	IsValid() bool
}

/// Common controller lifecycle state, embedded by the concrete controllers.
type Controller struct {
	M_enabled bool
}

func MakeController() Controller {
	return Controller{
		M_enabled: true,
	}
}

func (c Controller) IsEnabled() bool {
	return c.M_enabled
}

func (c *Controller) SetEnabled(flag bool) {
	c.M_enabled = flag
}
