package game

// ScreenShake tracks camera shake intensity. The offset itself is sampled by
// the presentation layer.
type ScreenShake struct {
	Amount float64
	Timer  float64
}

// Trigger starts a shake lasting intensity seconds.
func (s *ScreenShake) Trigger(intensity float64) {
	s.Timer = intensity
}

// Update decays the shake.
func (s *ScreenShake) Update(dt float64) {
	if s.Timer > 0 {
		s.Amount = s.Timer * 10
		s.Timer -= dt
		return
	}
	s.Amount *= 0.9
	if s.Amount < 0.01 {
		s.Amount = 0
	}
}
