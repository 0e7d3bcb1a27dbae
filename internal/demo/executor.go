package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/app"
	"github.com/zhubert/canvas/internal/config"
	"github.com/zhubert/canvas/internal/ui"
	"github.com/zhubert/canvas/internal/ui/modals"
	"github.com/zhubert/canvas/internal/workspace"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// PointerDelay is the delay between pointer moves of a drag (default: 40ms)
	PointerDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		PointerDelay:     40 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Model returns the model driven by the last Run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Run executes a scenario and returns the captured frames. The model is
// closed afterwards, so no input listeners outlive the run.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.model.Close()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup builds a model over the seeded workspaces.
func (e *Executor) setup(scenario *Scenario) error {
	cfg := config.Default()
	cfg.Workspace = scenario.Setup.Workspace
	if scenario.Setup.Modifier != "" {
		cfg.Modifier = scenario.Setup.Modifier
	}
	if scenario.Setup.Theme != "" {
		cfg.SetTheme(scenario.Setup.Theme)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.model = app.New(cfg, workspace.Seed(), "demo")
	e.update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
	return nil
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepHold, StepRelease:
		code, ok := modifierCode(step.Mod)
		if !ok {
			return fmt.Errorf("no modifier key for %v", step.Mod)
		}
		if step.Type == StepHold {
			e.update(tea.KeyPressMsg{Code: code, Mod: step.Mod})
		} else {
			e.update(tea.KeyReleaseMsg{Code: code})
		}
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepClick:
		e.update(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft, Mod: step.Mod})
		e.update(tea.MouseReleaseMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft, Mod: step.Mod})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepDrag:
		e.drag(index, step)

	case StepWheel:
		button := tea.MouseWheelDown
		if step.Up {
			button = tea.MouseWheelUp
		}
		for range step.Ticks {
			e.update(tea.MouseWheelMsg{X: step.X, Y: step.Y, Button: button, Mod: step.Mod})
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.PointerDelay)
			}
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

// drag moves the pointer one cell at a time along the longer axis so a
// recording shows the motion.
func (e *Executor) drag(index int, step Step) {
	e.update(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft, Mod: step.Mod})

	dx, dy := step.ToX-step.X, step.ToY-step.Y
	n := max(abs(dx), abs(dy), 1)
	for i := 1; i <= n; i++ {
		x := step.X + dx*i/n
		y := step.Y + dy*i/n
		e.update(tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft, Mod: step.Mod})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.PointerDelay)
		}
	}

	e.update(tea.MouseReleaseMsg{X: step.ToX, Y: step.ToY, Button: tea.MouseLeft, Mod: step.Mod})
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	content := e.model.RenderToString()

	frame := Frame{
		Content:    content,
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// update feeds msg to the model. Commands the model returns are resolved
// and the messages that act on the model, such as the composer's send, are
// fed back in. Timer commands are abandoned.
func (e *Executor) update(msg tea.Msg) {
	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)
	e.feed(cmd)
}

func (e *Executor) feed(cmd tea.Cmd) {
	switch next := resolve(cmd).(type) {
	case tea.BatchMsg:
		for _, c := range next {
			e.feed(c)
		}
	case ui.ComposerSendMsg, ui.SidebarSelectMsg, modals.HelpShortcutTriggeredMsg:
		e.update(next)
	}
}

// commandTimeout bounds how long a command may take to answer before the
// executor treats it as a timer and moves on.
const commandTimeout = 20 * time.Millisecond

func resolve(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(commandTimeout):
		return nil
	}
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

func modifierCode(mod tea.KeyMod) (rune, bool) {
	switch mod {
	case tea.ModCtrl:
		return tea.KeyLeftCtrl, true
	case tea.ModAlt:
		return tea.KeyLeftAlt, true
	case tea.ModShift:
		return tea.KeyLeftShift, true
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// keyPress converts a key string to a tea.KeyPressMsg.
// Duplicated from the app tests, which cannot be imported.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+left":
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}
	case "ctrl+right":
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}
	case "ctrl+up":
		return tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl}
	case "ctrl+down":
		return tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
