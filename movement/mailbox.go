package movement

// Mailbox holds single-use requests modules leave for each other. Each entry is drained by
// the consuming module, typically on its next OnEnterState.
type Mailbox struct {
	startCrouched bool

	jump    JumpRequest
	hasJump bool

	airborneState    State
	hasAirborneState bool

	slideLatch float32
}

// PostStartCrouched asks the next grounded activation to begin crouched.
func (m *Mailbox) PostStartCrouched() {
	m.startCrouched = true
}

// TakeStartCrouched drains the start-crouched request.
func (m *Mailbox) TakeStartCrouched() bool {
	v := m.startCrouched
	m.startCrouched = false
	return v
}

// PostJump records a jump execution intent. A later request replaces an earlier one.
func (m *Mailbox) PostJump(r JumpRequest) {
	m.jump, m.hasJump = r, true
}

// PeekJump returns the pending jump request without draining it.
func (m *Mailbox) PeekJump() (JumpRequest, bool) {
	return m.jump, m.hasJump
}

// TakeJump drains the pending jump request.
func (m *Mailbox) TakeJump() (JumpRequest, bool) {
	r, ok := m.jump, m.hasJump
	m.jump, m.hasJump = JumpRequest{}, false
	return r, ok
}

// PostAirborneState forces the sub-state of the next airborne entry.
func (m *Mailbox) PostAirborneState(s State) {
	m.airborneState, m.hasAirborneState = s, true
}

// TakeAirborneState drains the forced airborne sub-state.
func (m *Mailbox) TakeAirborneState() (State, bool) {
	s, ok := m.airborneState, m.hasAirborneState
	m.airborneState, m.hasAirborneState = StateNone, false
	return s, ok
}

// LatchSlide keeps a slide initiation input armed for window seconds.
func (m *Mailbox) LatchSlide(window float32) {
	m.slideLatch = window
}

// SlideLatched returns true if a slide initiation input is armed.
func (m *Mailbox) SlideLatched() bool {
	return m.slideLatch > 0
}

// ConsumeSlide disarms the slide initiation input.
func (m *Mailbox) ConsumeSlide() {
	m.slideLatch = 0
}

// Advance counts down the timed entries of the mailbox.
func (m *Mailbox) Advance(dt float32) {
	if m.slideLatch > 0 {
		m.slideLatch -= dt
	}
}

// Clear drops every pending entry.
func (m *Mailbox) Clear() {
	*m = Mailbox{}
}
