package control

import "time"

// DefaultAnimationDuration is the length of stock press animations.
const DefaultAnimationDuration = 250 * time.Millisecond

// Clock is the time base animation progress advances against. Tests swap
// in a fake via SetClock to step polls deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var animClock Clock = systemClock{}

// SetClock replaces the animation time base and returns the previous
// clock so test cleanup can restore it.
func SetClock(c Clock) Clock {
	prev := animClock
	animClock = c
	return prev
}

// AnimationFunc runs once per dirty poll while an animation is active,
// receiving the owning control and elapsed-fraction progress. Progress is
// not clamped and exceeds 1.0 on the poll that ends the run.
type AnimationFunc func(c Control, progress float64)

// DefaultAnimationFunc animates nothing itself; installing it still drives
// the timer so OnEndAnimation fires when the duration elapses.
func DefaultAnimationFunc(c Control, progress float64) {}

// animationState is the per-control scheduler: Idle when fn is nil,
// Running otherwise.
type animationState struct {
	fn       AnimationFunc
	start    time.Time
	duration time.Duration
}

// StartAnimation records the current clock time and duration, resetting
// progress to zero. The animation advances on subsequent IsDirty polls.
func (b *Base) StartAnimation(duration time.Duration) {
	b.anim.start = animClock.Now()
	b.anim.duration = duration
}

// SetAnimation installs the animation callback without starting the timer.
// Passing nil cancels any active animation.
func (b *Base) SetAnimation(fn AnimationFunc) { b.anim.fn = fn }

// SetAnimationWithDuration installs the animation callback and starts it.
func (b *Base) SetAnimationWithDuration(fn AnimationFunc, duration time.Duration) {
	b.anim.fn = fn
	b.StartAnimation(duration)
}

// AnimationFunc returns the active animation callback, or nil when idle.
func (b *Base) AnimationFunc() AnimationFunc { return b.anim.fn }

// AnimationDuration returns the duration of the last started animation.
func (b *Base) AnimationDuration() time.Duration { return b.anim.duration }

// AnimationProgress returns elapsed time over duration for the active
// animation, unclamped. Idle controls report zero.
func (b *Base) AnimationProgress() float64 {
	if b.anim.fn == nil {
		return 0
	}
	if b.anim.duration <= 0 {
		return 1
	}
	return float64(animClock.Now().Sub(b.anim.start)) / float64(b.anim.duration)
}

// OnEndAnimation clears the animation callback and marks the control dirty
// without notification, so the final state still gets drawn. Widgets that
// loop shadow this and restart the timer instead; shadowing for any other
// reason must still clear the callback or the animation never goes idle.
func (b *Base) OnEndAnimation() {
	b.anim.fn = nil
	b.SetDirty(false, AllValues)
}

// IsDirty is the per-tick poll the container's redraw loop drives. It runs
// the animation step first: the callback sees the current progress, and
// the end hook fires on the poll where progress first reaches 1.0. The
// return value is the dirty flag after the step; an active animation alone
// does not imply dirty unless its callback marks dirty.
func (b *Base) IsDirty() bool {
	if b.anim.fn != nil {
		progress := b.AnimationProgress()
		b.anim.fn(b.Self(), progress)
		if progress >= 1 {
			b.Self().OnEndAnimation()
		}
	}
	return b.dirty
}
