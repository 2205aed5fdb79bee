// Package player models the playback transport the annotation core
// drives. Real video decode lives behind the Player interface; the
// in-repo Transport is a pure time accumulator the TUI advances on its
// tick.
package player

// DefaultFPS is the frame rate used for frame-step seeks when the
// source does not report one.
const DefaultFPS = 24

// Player is the playback surface the core consumes: current position,
// known duration, play/pause, and seeking.
type Player interface {
	CurrentTime() float64
	Duration() float64
	Playing() bool
	SetPlaying(bool)
	Seek(seconds float64)
	SeekFrames(frames int, fps int)
}

// Transport is a clock-driven Player: Advance moves the playhead while
// playing, clamping at the duration and pausing at the end.
type Transport struct {
	duration float64
	time     float64
	playing  bool
}

func NewTransport(durationSeconds float64) *Transport {
	return &Transport{duration: durationSeconds}
}

func (t *Transport) CurrentTime() float64 { return t.time }
func (t *Transport) Duration() float64    { return t.duration }
func (t *Transport) Playing() bool        { return t.playing }

func (t *Transport) SetPlaying(playing bool) {
	if playing && t.time >= t.duration {
		return
	}
	t.playing = playing
}

// Seek clamps the playhead into [0, duration].
func (t *Transport) Seek(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > t.duration {
		seconds = t.duration
	}
	t.time = seconds
}

// SeekFrames steps the playhead by a frame count at the given rate.
func (t *Transport) SeekFrames(frames int, fps int) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	t.Seek(t.time + float64(frames)/float64(fps))
}

// Advance moves the playhead by dt seconds of wall time while playing.
func (t *Transport) Advance(dt float64) {
	if !t.playing {
		return
	}
	t.time += dt
	if t.time >= t.duration {
		t.time = t.duration
		t.playing = false
	}
}

// ScrubSession suspends playback-driven updates while the user drags
// the playhead. Start remembers whether playback was active so Stop can
// resume it; the remembered state survives the whole scrub, it is not
// re-derived from the (paused) player.
type ScrubSession struct {
	player     Player
	active     bool
	wasPlaying bool
}

func NewScrubSession(p Player) *ScrubSession {
	return &ScrubSession{player: p}
}

// Start begins a scrub. A second Start within one session is a no-op so
// repeated change callbacks cannot clobber the remembered play state.
func (s *ScrubSession) Start() {
	if s.active {
		return
	}
	s.active = true
	s.wasPlaying = s.player.Playing()
	s.player.SetPlaying(false)
}

// To seeks during an active scrub; outside a session it latches one
// implicitly, mirroring a drag whose first callback is a change.
func (s *ScrubSession) To(seconds float64) {
	if !s.active {
		s.Start()
	}
	s.player.Seek(seconds)
}

// Stop ends the scrub and restores the remembered play state. Safe to
// call without a matching Start; abandoned gestures leave the player
// consistent.
func (s *ScrubSession) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.player.SetPlaying(s.wasPlaying)
}

// Active reports whether a scrub is in flight.
func (s *ScrubSession) Active() bool { return s.active }
