package player

import "testing"

// ============================================================
// Transport
// ============================================================

func TestTransportAdvance(t *testing.T) {
	tr := NewTransport(10)
	tr.SetPlaying(true)

	tr.Advance(2.5)
	if tr.CurrentTime() != 2.5 {
		t.Fatalf("time %v, expected 2.5", tr.CurrentTime())
	}

	// Paused transport does not move.
	tr.SetPlaying(false)
	tr.Advance(5)
	if tr.CurrentTime() != 2.5 {
		t.Fatalf("time %v after paused advance", tr.CurrentTime())
	}
}

func TestTransportStopsAtEnd(t *testing.T) {
	tr := NewTransport(10)
	tr.SetPlaying(true)

	tr.Advance(100)
	if tr.CurrentTime() != 10 {
		t.Fatalf("time %v, expected clamp at 10", tr.CurrentTime())
	}
	if tr.Playing() {
		t.Fatal("still playing past the end")
	}
	// Cannot resume play at the very end.
	tr.SetPlaying(true)
	if tr.Playing() {
		t.Fatal("resumed at end of media")
	}
}

func TestTransportSeekClamps(t *testing.T) {
	tr := NewTransport(10)
	tr.Seek(-3)
	if tr.CurrentTime() != 0 {
		t.Fatalf("time %v, expected 0", tr.CurrentTime())
	}
	tr.Seek(99)
	if tr.CurrentTime() != 10 {
		t.Fatalf("time %v, expected 10", tr.CurrentTime())
	}
}

func TestTransportSeekFrames(t *testing.T) {
	tr := NewTransport(10)
	tr.Seek(1)

	tr.SeekFrames(24, 24)
	if tr.CurrentTime() != 2 {
		t.Fatalf("time %v, expected 2", tr.CurrentTime())
	}
	tr.SeekFrames(-12, 24)
	if tr.CurrentTime() != 1.5 {
		t.Fatalf("time %v, expected 1.5", tr.CurrentTime())
	}
	// Bad fps falls back to the default rather than dividing by zero.
	tr.SeekFrames(DefaultFPS, 0)
	if tr.CurrentTime() != 2.5 {
		t.Fatalf("time %v, expected 2.5", tr.CurrentTime())
	}
}

// ============================================================
// Scrub session
// ============================================================

func TestScrubPausesAndResumes(t *testing.T) {
	tr := NewTransport(60)
	tr.SetPlaying(true)
	s := NewScrubSession(tr)

	s.Start()
	if tr.Playing() {
		t.Fatal("playback not suspended during scrub")
	}
	s.To(30)
	s.To(31)
	if tr.CurrentTime() != 31 {
		t.Fatalf("time %v, expected 31", tr.CurrentTime())
	}

	s.Stop()
	if !tr.Playing() {
		t.Fatal("play state not restored after scrub")
	}
}

func TestScrubRemembersPausedState(t *testing.T) {
	tr := NewTransport(60)
	s := NewScrubSession(tr)

	s.Start()
	s.To(10)
	s.Stop()
	if tr.Playing() {
		t.Fatal("scrub resumed playback that was never active")
	}
}

func TestScrubDoubleStartKeepsLatch(t *testing.T) {
	tr := NewTransport(60)
	tr.SetPlaying(true)
	s := NewScrubSession(tr)

	s.Start()
	s.Start() // player is now paused; must not overwrite wasPlaying
	s.Stop()
	if !tr.Playing() {
		t.Fatal("second Start clobbered the remembered play state")
	}
}

func TestScrubStopWithoutStart(t *testing.T) {
	tr := NewTransport(60)
	s := NewScrubSession(tr)
	s.Stop() // must be harmless
	if s.Active() || tr.Playing() {
		t.Fatal("state inconsistent after unmatched Stop")
	}
}

func TestScrubImplicitStart(t *testing.T) {
	tr := NewTransport(60)
	tr.SetPlaying(true)
	s := NewScrubSession(tr)

	s.To(5) // first callback is a change: latches implicitly
	if !s.Active() || tr.Playing() {
		t.Fatal("implicit start did not suspend playback")
	}
	s.Stop()
	if !tr.Playing() {
		t.Fatal("implicit start lost the play state")
	}
}
