package sim

// AnimState is the player's animation state.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimWalking
	AnimJumping
	AnimFallingIntoHole
	animStateCount
)

// String returns the state name.
func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimWalking:
		return "walking"
	case AnimJumping:
		return "jumping"
	case AnimFallingIntoHole:
		return "falling"
	default:
		return "unknown"
	}
}

// animTransitions lists the states each state may move to. Falling into a
// hole is terminal.
var animTransitions = [animStateCount][]AnimState{
	AnimIdle:            {AnimWalking, AnimJumping, AnimFallingIntoHole},
	AnimWalking:         {AnimIdle, AnimJumping, AnimFallingIntoHole},
	AnimJumping:         {AnimIdle, AnimWalking, AnimFallingIntoHole},
	AnimFallingIntoHole: nil,
}

// CanTransition reports whether from may move to to.
func CanTransition(from, to AnimState) bool {
	if from == to {
		return true
	}
	if int(from) >= len(animTransitions) {
		return false
	}
	for _, s := range animTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// movementState picks the state implied by the player's motion.
func movementState(isJumping bool, vx float64) AnimState {
	switch {
	case isJumping:
		return AnimJumping
	case vx != 0:
		return AnimWalking
	default:
		return AnimIdle
	}
}

// FrameSet maps each animation state to its image keys.
type FrameSet struct {
	Idle    []string
	Walking []string
	Jumping []string
}

// DefaultPlayerFrames returns the frames the player starts every run with.
func DefaultPlayerFrames() FrameSet {
	return FrameSet{
		Idle:    []string{"player_idle"},
		Walking: []string{"player_walk1", "player_idle", "player_walk2"},
		Jumping: []string{"player_jump"},
	}
}

// UniformFrames returns a set showing key in every state.
func UniformFrames(key string) FrameSet {
	return FrameSet{
		Idle:    []string{key},
		Walking: []string{key},
		Jumping: []string{key},
	}
}

// Snapshot captures the set for later restoration: the first idle frame,
// a copy of the walking sequence and the first jumping frame.
func (f FrameSet) Snapshot() FrameSet {
	snap := FrameSet{Walking: append([]string(nil), f.Walking...)}
	if len(f.Idle) > 0 {
		snap.Idle = []string{f.Idle[0]}
	}
	if len(f.Jumping) > 0 {
		snap.Jumping = []string{f.Jumping[0]}
	}
	return snap
}

// For returns the frames of a state. Falling reuses the jump frames.
func (f FrameSet) For(s AnimState) []string {
	switch s {
	case AnimWalking:
		return f.Walking
	case AnimJumping, AnimFallingIntoHole:
		return f.Jumping
	default:
		return f.Idle
	}
}

// Animation is the playback position of one state's frame sequence.
type Animation struct {
	Index   int
	timer   int
	Playing bool
}

// Start rewinds and plays.
func (a *Animation) Start() {
	a.Index = 0
	a.timer = 0
	a.Playing = true
}

// Stop halts playback without rewinding.
func (a *Animation) Stop() {
	a.Playing = false
}

// Advance moves one tick, stepping to the next frame every frameTicks ticks.
func (a *Animation) Advance(frames, frameTicks int) {
	if !a.Playing || frames == 0 {
		return
	}
	a.timer++
	if a.timer >= frameTicks {
		a.timer = 0
		a.Index = (a.Index + 1) % frames
	}
}

// CurrentFrame returns the image key to draw for the player.
func (p *Player) CurrentFrame() string {
	frames := p.Frames.For(p.State)
	if len(frames) == 0 {
		return ""
	}
	idx := p.anims[p.State].Index
	if idx >= len(frames) {
		idx = 0
	}
	return frames[idx]
}

// setState switches animations when the transition table allows it.
func (p *Player) setState(s AnimState) {
	if s == p.State || !CanTransition(p.State, s) {
		return
	}
	p.anims[p.State].Stop()
	p.State = s
	p.anims[s].Start()
}

// restartAnimation replays the current state from its first frame, used
// after the frame set changes.
func (p *Player) restartAnimation() {
	p.anims[p.State].Start()
}

func (p *Player) advanceAnimation(frameTicks int) {
	p.anims[p.State].Advance(len(p.Frames.For(p.State)), frameTicks)
}
