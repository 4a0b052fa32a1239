package component

// HealthComponent marks an entity as a damage target
type HealthComponent struct {
	Current int
	Maximum int
}

// NewHealth returns a full health component
func NewHealth(maximum int) HealthComponent {
	return HealthComponent{Current: maximum, Maximum: maximum}
}

// Apply subtracts damage saturating at zero and reports whether the entity died
func (h *HealthComponent) Apply(damage int) bool {
	if damage < 0 {
		damage = 0
	}
	h.Current -= damage
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}
