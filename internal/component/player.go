package component

// Input is the per-tick control vector for the player tank.
type Input struct {
	Move Direction // DirNone when no direction is held
	Fire bool
}

// FireLatch ignores a fire key that was already down when play began, such
// as the key that started the run from the menu. Fire is honoured once the
// key has been seen released.
type FireLatch struct {
	armed bool
}

// Disarm waits for the next release before honouring fire again.
func (l *FireLatch) Disarm() {
	l.armed = false
}

// Filter returns whether a held fire key counts this tick.
func (l *FireLatch) Filter(pressed bool) bool {
	if !pressed {
		l.armed = true
		return false
	}
	return l.armed
}
