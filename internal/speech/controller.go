// Package speech wraps the platform text-to-speech engine behind the
// entitlement check for natural voice. The "currently speaking" flag is
// explicit state owned by the controller, queried rather than ambient.
package speech

import (
	"fmt"
	"sync"

	"github.com/shelfward/shelfward/internal/subscription"
)

// Engine is the platform TTS collaborator. Implementations do the actual
// audio work; the controller only sequences and gates them.
type Engine interface {
	Speak(text string, naturalVoice bool) error
	Stop() error
	Pause() error
	Resume() error
}

// Entitlements is the slice of the subscription service the controller
// needs.
type Entitlements interface {
	CanUseNaturalVoice() (bool, error)
}

// Controller drives a single speech session at a time.
type Controller struct {
	engine       Engine
	entitlements Entitlements

	mu       sync.Mutex
	speaking bool
}

// NewController creates a speech controller around an engine.
func NewController(engine Engine, entitlements Entitlements) *Controller {
	return &Controller{engine: engine, entitlements: entitlements}
}

// Speak reads text aloud. Natural voice requires the matching entitlement
// and fails before the engine is touched when it is missing; robotic voice
// is always permitted.
func (c *Controller) Speak(text string, naturalVoice bool) error {
	if naturalVoice {
		ok, err := c.entitlements.CanUseNaturalVoice()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("natural voice: %w", subscription.ErrSubscriptionRequired)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.engine.Speak(text, naturalVoice); err != nil {
		return fmt.Errorf("speech engine: %w", err)
	}
	c.speaking = true
	return nil
}

// Stop ends the current speech session.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.engine.Stop(); err != nil {
		return err
	}
	c.speaking = false
	return nil
}

// Pause suspends the current speech session without ending it.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Pause()
}

// Resume continues a paused speech session.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Resume()
}

// IsSpeaking reports whether a speech session is active.
func (c *Controller) IsSpeaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speaking
}

// NoopEngine is the engine used when no platform TTS is wired up, e.g. in
// tests or headless runs.
type NoopEngine struct{}

func (NoopEngine) Speak(text string, naturalVoice bool) error { return nil }
func (NoopEngine) Stop() error                                { return nil }
func (NoopEngine) Pause() error                               { return nil }
func (NoopEngine) Resume() error                              { return nil }
