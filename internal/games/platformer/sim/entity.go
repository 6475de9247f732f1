// Package sim is the platformer simulation engine: entity model, kinematics,
// platform attachment, collision resolution, the gap hazard state machine,
// timed power-up modifiers, camera follow and the fixed-timestep loop.
//
// The package has no I/O of its own. Input and level layout reach it through
// the collaborator interfaces in input.go and level.go.
package sim

// Box is an axis-aligned bounding box in world pixels. Y grows downward.
type Box struct {
	X, Y, W, H float64
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// Shrink returns the box inset by margin on all four sides.
func (b Box) Shrink(margin float64) Box {
	return Box{X: b.X + margin, Y: b.Y + margin, W: b.W - 2*margin, H: b.H - 2*margin}
}

// Handle is a stable arena index identifying an entity within its kind.
// Handles never dangle: lookups of removed or unknown handles return nil.
type Handle int32

// NoHandle marks an absent reference.
const NoHandle Handle = -1

// PlayerHandle identifies the single player of a run.
const PlayerHandle Handle = 0

// Kind tags the closed set of entity variants.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlatform
	KindCoin
	KindPowerUp
	KindCheckpoint
	KindBackground
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlatform:
		return "platform"
	case KindCoin:
		return "coin"
	case KindPowerUp:
		return "power-up"
	case KindCheckpoint:
		return "checkpoint"
	case KindBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Body is the header shared by every entity: geometry plus the active flag.
// Inactive entities are logically removed; they keep their slot so handles
// stay stable.
type Body struct {
	Box
	Active    bool
	Offscreen bool // Outside the camera window this tick
}

// Bounds returns the entity's bounding box.
func (b *Body) Bounds() Box { return b.Box }

// IsActive reports whether the entity still takes part in gameplay.
func (b *Body) IsActive() bool { return b.Active }

// Entity is implemented by every entity variant. Renderers and passes that
// treat entities uniformly type-switch on the concrete pointer types.
type Entity interface {
	Kind() Kind
	Bounds() Box
	IsActive() bool
	Draw() Drawable
}

// Drawable describes how an entity should look this tick.
// Key names an image in the resource collaborator; when the image is
// missing the renderer falls back to a primitive shape for Kind.
type Drawable struct {
	Kind   Kind
	Key    string
	Box    Box
	FlipX  bool
	Alpha  float64 // 1 is opaque, 0 invisible
	Marker Marker
	Blink  bool // Renderer may skip alternate blink phases
}

// Marker is the highlight drawn around the player while a power-up is active.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerWarm        // speed
	MarkerCool        // jump
	MarkerGold        // invincibility
)

// Player is the controlled actor.
type Player struct {
	Body
	VX, VY    float64
	IsJumping bool
	Facing    float64 // -1 left, +1 right
	State     AnimState

	IsFallingIntoHole bool
	FallScale         float64 // 1 at fall start, shrinks to 0

	Invulnerable   bool
	InvulnerableMs float64
	Lives          int

	Marker   Marker
	Frames   FrameSet
	Snapshot *FrameSet // Frames to restore when the active power-up expires

	anims [animStateCount]Animation
}

// NewPlayer creates a player standing at (x, y) with the default frame set.
func NewPlayer(x, y, w, h float64, lives int) Player {
	p := Player{
		Body:      Body{Box: Box{X: x, Y: y, W: w, H: h}, Active: true},
		Facing:    1,
		State:     AnimIdle,
		FallScale: 1,
		Lives:     lives,
		Frames:    DefaultPlayerFrames(),
	}
	p.anims[AnimIdle].Start()
	return p
}

// Kind implements Entity.
func (p *Player) Kind() Kind { return KindPlayer }

// Draw implements Entity.
func (p *Player) Draw() Drawable {
	d := Drawable{
		Kind:   KindPlayer,
		Key:    p.CurrentFrame(),
		Box:    p.Box,
		FlipX:  p.Facing < 0,
		Alpha:  1,
		Marker: p.Marker,
		Blink:  p.Invulnerable,
	}
	if p.IsFallingIntoHole {
		d.Alpha = p.FallScale
		d.Marker = MarkerNone
		d.Blink = false
	}
	return d
}

// MakeInvulnerable arms (or re-arms) the invulnerability window.
func (p *Player) MakeInvulnerable(durationMs float64) {
	p.Invulnerable = true
	p.InvulnerableMs = durationMs
}

// LoseLife applies one hit. It is a no-op returning false while the player
// is invulnerable; otherwise it removes a life, arms the post-damage
// invulnerability window and reports whether no lives remain.
func (p *Player) LoseLife(invulnerabilityMs float64) bool {
	if p.Invulnerable {
		return false
	}
	p.Lives--
	p.MakeInvulnerable(invulnerabilityMs)
	return p.Lives <= 0
}

// Enemy patrols either a stretch of ground or the surface of a platform.
type Enemy struct {
	Body
	Type string // Sprite key: enemy1, enemy2, enemy3
	VX   float64

	// Ground patrol
	StartX     float64
	PatrolArea float64

	// Platform patrol, used when OnPlatform is set
	OnPlatform      Handle
	PlatformOffsetX float64

	turnCooldown int
	AnimFrame    int
	frameCounter int
}

// NewGroundEnemy creates an enemy patrolling ±patrol around x.
func NewGroundEnemy(x, y, w, h, patrol, speed float64, typ string) Enemy {
	return Enemy{
		Body:       Body{Box: Box{X: x, Y: y, W: w, H: h}, Active: true},
		Type:       typ,
		VX:         -speed,
		StartX:     x,
		PatrolArea: patrol,
		OnPlatform: NoHandle,
	}
}

// NewPlatformEnemy creates an enemy walking back and forth on a platform,
// starting offset pixels from its left edge.
func NewPlatformEnemy(platform Handle, offset, w, h, speed float64, typ string) Enemy {
	return Enemy{
		Body:            Body{Box: Box{W: w, H: h}, Active: true},
		Type:            typ,
		VX:              -speed,
		OnPlatform:      platform,
		PlatformOffsetX: offset,
	}
}

// Kind implements Entity.
func (e *Enemy) Kind() Kind { return KindEnemy }

// Draw implements Entity.
func (e *Enemy) Draw() Drawable {
	return Drawable{Kind: KindEnemy, Key: e.Type, Box: e.Box, FlipX: e.VX < 0, Alpha: 1}
}

// Platform is a solid surface, optionally oscillating around its anchor.
type Platform struct {
	Body
	OriginX, OriginY float64
	MoveHorizontal   bool
	MoveVertical     bool
	Range            float64
	Speed            float64
	Direction        float64 // -1 or +1

	// Rider is the player standing on the platform, carried by its motion.
	Rider Handle

	// DX, DY hold the displacement of the most recent tick.
	DX, DY float64

	carried bool // Rider already moved with the platform this tick
}

// NewPlatform creates a platform. Static platforms pass zero rng and speed.
func NewPlatform(x, y, w, h float64, horizontal, vertical bool, rng, speed float64) Platform {
	return Platform{
		Body:           Body{Box: Box{X: x, Y: y, W: w, H: h}, Active: true},
		OriginX:        x,
		OriginY:        y,
		MoveHorizontal: horizontal,
		MoveVertical:   vertical,
		Range:          rng,
		Speed:          speed,
		Direction:      1,
		Rider:          NoHandle,
	}
}

// Moving reports whether the platform oscillates.
func (pl *Platform) Moving() bool { return pl.MoveHorizontal || pl.MoveVertical }

// Kind implements Entity.
func (pl *Platform) Kind() Kind { return KindPlatform }

// Draw implements Entity.
func (pl *Platform) Draw() Drawable {
	return Drawable{Kind: KindPlatform, Key: "platform", Box: pl.Box, Alpha: 1}
}

// Coin is a collectible worth a fixed amount of points.
type Coin struct {
	Body
	Phase   int // Spin phase, 0..3
	counter int
}

// NewCoin creates a coin at (x, y).
func NewCoin(x, y, size float64) Coin {
	return Coin{Body: Body{Box: Box{X: x, Y: y, W: size, H: size}, Active: true}}
}

// Kind implements Entity.
func (c *Coin) Kind() Kind { return KindCoin }

// coinSpin is the drawn width share per spin phase.
var coinSpin = [4]float64{1, 0.6, 0.2, 0.6}

// Draw implements Entity. The drawn box narrows with the spin phase;
// the collision box does not.
func (c *Coin) Draw() Drawable {
	b := c.Box
	b.W = c.W * coinSpin[c.Phase%4]
	b.X = c.X + (c.W-b.W)/2
	return Drawable{Kind: KindCoin, Key: "coin", Box: b, Alpha: 1}
}

// PowerUpType selects the modifier a power-up installs.
type PowerUpType uint8

const (
	PowerUpNone PowerUpType = iota
	PowerUpSpeed
	PowerUpJump
	PowerUpInvincibility
)

// String returns the power-up name as used in level files.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeed:
		return "speed"
	case PowerUpJump:
		return "jump"
	case PowerUpInvincibility:
		return "invincibility"
	default:
		return "none"
	}
}

// ParsePowerUpType converts a level-file name to a PowerUpType.
func ParsePowerUpType(name string) (PowerUpType, bool) {
	switch name {
	case "speed":
		return PowerUpSpeed, true
	case "jump":
		return PowerUpJump, true
	case "invincibility":
		return PowerUpInvincibility, true
	default:
		return PowerUpNone, false
	}
}

// PowerUp is a collectible that activates a timed modifier.
type PowerUp struct {
	Body
	Type     PowerUpType
	bobFrame int
	counter  int
}

// NewPowerUp creates a power-up of the given type at (x, y).
func NewPowerUp(x, y, size float64, typ PowerUpType) PowerUp {
	return PowerUp{Body: Body{Box: Box{X: x, Y: y, W: size, H: size}, Active: true}, Type: typ}
}

// Kind implements Entity.
func (pu *PowerUp) Kind() Kind { return KindPowerUp }

// Draw implements Entity.
func (pu *PowerUp) Draw() Drawable {
	return Drawable{Kind: KindPowerUp, Key: "powerup_" + pu.Type.String(), Box: pu.Box, Alpha: 1}
}

// Checkpoint is the goal flag. Touching it ends the run in victory, once.
type Checkpoint struct {
	Body
	Activated bool
}

// NewCheckpoint creates a checkpoint flag at (x, y).
func NewCheckpoint(x, y, w, h float64) Checkpoint {
	return Checkpoint{Body: Body{Box: Box{X: x, Y: y, W: w, H: h}, Active: true}}
}

// Kind implements Entity.
func (c *Checkpoint) Kind() Kind { return KindCheckpoint }

// Draw implements Entity.
func (c *Checkpoint) Draw() Drawable {
	key := "checkpoint"
	if c.Activated {
		key = "checkpoint_active"
	}
	return Drawable{Kind: KindCheckpoint, Key: key, Box: c.Box, Alpha: 1}
}

// Background is scenery drifting against the player's motion.
type Background struct {
	Body
	Type     string  // Sprite key: cloud1, cloud2, tree
	Parallax float64 // Share of the player's velocity it drifts by
}

// NewBackground creates a scenery element.
func NewBackground(x, y, w, h float64, typ string, parallax float64) Background {
	return Background{Body: Body{Box: Box{X: x, Y: y, W: w, H: h}, Active: true}, Type: typ, Parallax: parallax}
}

// Kind implements Entity.
func (b *Background) Kind() Kind { return KindBackground }

// Draw implements Entity.
func (b *Background) Draw() Drawable {
	return Drawable{Kind: KindBackground, Key: b.Type, Box: b.Box, Alpha: 1}
}

// Hazard is a lethal gap in the ground spanning [X, X+Width).
type Hazard struct {
	X, Width float64
}

// Contains reports whether x lies inside the gap.
func (h Hazard) Contains(x float64) bool {
	return x >= h.X && x < h.X+h.Width
}

// Center returns the gap's horizontal center.
func (h Hazard) Center() float64 {
	return h.X + h.Width/2
}

// World is the arena holding every entity of one run.
type World struct {
	Player      Player
	Platforms   []Platform
	Enemies     []Enemy
	Coins       []Coin
	PowerUps    []PowerUp
	Checkpoints []Checkpoint
	Backgrounds []Background
	Hazards     []Hazard
	GoalX       float64
}

// Platform resolves a platform handle. Returns nil for NoHandle, unknown
// handles and deactivated platforms.
func (w *World) Platform(h Handle) *Platform {
	if h < 0 || int(h) >= len(w.Platforms) {
		return nil
	}
	pl := &w.Platforms[h]
	if !pl.Active {
		return nil
	}
	return pl
}

// Each visits every active entity in draw order: scenery first, player
// before enemies.
func (w *World) Each(fn func(Entity)) {
	for i := range w.Backgrounds {
		if w.Backgrounds[i].Active {
			fn(&w.Backgrounds[i])
		}
	}
	for i := range w.Platforms {
		if w.Platforms[i].Active {
			fn(&w.Platforms[i])
		}
	}
	for i := range w.Coins {
		if w.Coins[i].Active {
			fn(&w.Coins[i])
		}
	}
	for i := range w.PowerUps {
		if w.PowerUps[i].Active {
			fn(&w.PowerUps[i])
		}
	}
	for i := range w.Checkpoints {
		if w.Checkpoints[i].Active {
			fn(&w.Checkpoints[i])
		}
	}
	fn(&w.Player)
	for i := range w.Enemies {
		if w.Enemies[i].Active {
			fn(&w.Enemies[i])
		}
	}
}

// ActiveCount returns how many entities of a kind are still active.
func (w *World) ActiveCount(k Kind) int {
	n := 0
	w.Each(func(e Entity) {
		if e.Kind() == k {
			n++
		}
	})
	return n
}
