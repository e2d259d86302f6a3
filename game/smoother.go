package game

// Smoother advances Current towards Target by Rate units per second. Setting a new
// target mid-way simply redirects the motion from wherever Current is.
type Smoother struct {
	Current float32
	Target  float32
	Rate    float32
}

// SetTarget changes the value the smoother is moving towards.
func (s *Smoother) SetTarget(target float32) {
	s.Target = target
}

// Snap sets both the current and target value to v.
func (s *Smoother) Snap(v float32) {
	s.Current, s.Target = v, v
}

// Advance moves Current towards Target for dt seconds and returns the new value.
func (s *Smoother) Advance(dt float32) float32 {
	if s.Rate <= 0 {
		s.Current = s.Target
		return s.Current
	}
	s.Current = MoveTowards(s.Current, s.Target, s.Rate*dt)
	return s.Current
}

// Settled returns true if Current has reached Target.
func (s *Smoother) Settled() bool {
	return s.Current == s.Target
}
