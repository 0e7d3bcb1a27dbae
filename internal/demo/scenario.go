// Package demo drives the app model through scripted scenarios and captures
// rendered frames. No terminal is involved, so recordings are deterministic
// and reproducible.
package demo

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepHold presses a bare modifier key and keeps it down.
	StepHold
	// StepRelease lets go of a held modifier key.
	StepRelease
	// StepClick presses and releases the left button at a cell.
	StepClick
	// StepDrag presses at one cell, moves to another and releases there.
	StepDrag
	// StepWheel sends wheel ticks at a cell.
	StepWheel
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For pointer steps. ToX/ToY are the drag target.
	X, Y     int
	ToX, ToY int
	Mod      tea.KeyMod

	// For StepWheel
	Up    bool
	Ticks int

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Workspace opened on start
	Workspace string

	// Theme name; empty keeps the configured one
	Theme string

	// Modifier for pan and zoom
	Modifier string
}

// DefaultSetup opens the first seeded workspace with ctrl as the modifier.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Workspace: "ws-1",
		Modifier:  "ctrl",
	}
}

// Validate checks that the scenario is valid.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	for i, step := range s.Steps {
		if step.Type == StepWheel && step.Ticks < 0 {
			return &ValidationError{Field: "Steps", Message: "wheel ticks must not be negative", Index: i}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
	Index   int
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Hold presses a modifier key without releasing it.
func Hold(mod tea.KeyMod) Step {
	return Step{Type: StepHold, Mod: mod}
}

// Release releases a held modifier key.
func Release(mod tea.KeyMod) Step {
	return Step{Type: StepRelease, Mod: mod}
}

// Click creates a left click at a cell.
func Click(x, y int) Step {
	return Step{Type: StepClick, X: x, Y: y}
}

// Drag creates a left-button drag between two cells, optionally with a
// modifier held.
func Drag(x, y, toX, toY int, mod tea.KeyMod) Step {
	return Step{Type: StepDrag, X: x, Y: y, ToX: toX, ToY: toY, Mod: mod}
}

// Wheel creates ticks of the wheel at a cell.
func Wheel(x, y int, up bool, ticks int, mod tea.KeyMod) Step {
	return Step{Type: StepWheel, X: x, Y: y, Up: up, Ticks: ticks, Mod: mod}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
