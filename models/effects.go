package models

// SpecialEffects is the wire shape of the mutually-exclusive visual effect
// bundle. The stored documents keep one boolean per effect for historical
// reasons; internally the bundle is always reduced to a single [Effect]
// value, which makes "at most one enabled" structural rather than a
// runtime promise.
type SpecialEffects struct {
	ParticleEffects bool `json:"particle_effects"`
	GlitchEffect    bool `json:"glitch_effect"`
	NeonGlow        bool `json:"neon_glow"`
	MatrixRain      bool `json:"matrix_rain"`
	FloatingShapes  bool `json:"floating_shapes"`
}

// Effect identifies which visual effect, if any, is enabled for a page.
type Effect int

// Effect values in their fixed precedence order. When a stored document
// claims several effects at once, the lowest-numbered one wins.
const (
	EffectNone Effect = iota
	EffectParticles
	EffectGlitch
	EffectNeonGlow
	EffectMatrixRain
	EffectFloatingShapes
)

// String returns the effect name as used in stored documents, or "none".
func (e Effect) String() string {
	switch e {
	case EffectParticles:
		return "particle_effects"
	case EffectGlitch:
		return "glitch_effect"
	case EffectNeonGlow:
		return "neon_glow"
	case EffectMatrixRain:
		return "matrix_rain"
	case EffectFloatingShapes:
		return "floating_shapes"
	default:
		return "none"
	}
}

// Active reduces the boolean bag to a single effect. The scan order is
// fixed so that reducing an already-reduced bundle yields the same result.
func (s SpecialEffects) Active() Effect {
	switch {
	case s.ParticleEffects:
		return EffectParticles
	case s.GlitchEffect:
		return EffectGlitch
	case s.NeonGlow:
		return EffectNeonGlow
	case s.MatrixRain:
		return EffectMatrixRain
	case s.FloatingShapes:
		return EffectFloatingShapes
	default:
		return EffectNone
	}
}

// SetActive rewrites the bundle so that exactly the given effect is enabled,
// or none at all for [EffectNone].
func (s *SpecialEffects) SetActive(e Effect) {
	*s = SpecialEffects{
		ParticleEffects: e == EffectParticles,
		GlitchEffect:    e == EffectGlitch,
		NeonGlow:        e == EffectNeonGlow,
		MatrixRain:      e == EffectMatrixRain,
		FloatingShapes:  e == EffectFloatingShapes,
	}
}
