package animations

type Animation struct {
	Frames     []string // sprite names, cycled in order
	SpeedInTps int      // how many ticks before next frame
	timer      int
	frame      int
	Looped     bool
}

// Update advances the frame timer by one tick.
func (a *Animation) Update() {
	if len(a.Frames) == 0 {
		return
	}
	a.timer++
	if a.timer >= a.SpeedInTps {
		a.timer = 0
		a.frame++
		if a.frame >= len(a.Frames) {
			a.Looped = true
			// loop back to the beginning
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// FrameName returns the sprite name for the current frame.
func (a *Animation) FrameName() string {
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[a.frame]
}

func (a *Animation) Restart() {
	a.frame = 0
	a.timer = 0
	a.Looped = false
}

func NewAnimation(frames []string, speed int) *Animation {
	return &Animation{
		Frames:     frames,
		SpeedInTps: speed,
	}
}
