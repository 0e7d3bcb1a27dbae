package demo

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name      string
		scenario  *Scenario
		wantErr   bool
		errField  string
		wantWidth int
	}{
		{
			name:     "missing name",
			scenario: &Scenario{},
			wantErr:  true,
			errField: "Name",
		},
		{
			name:      "defaults applied",
			scenario:  &Scenario{Name: "x"},
			wantWidth: 120,
		},
		{
			name:      "explicit size kept",
			scenario:  &Scenario{Name: "x", Width: 80, Height: 24},
			wantWidth: 80,
		},
		{
			name: "negative wheel ticks",
			scenario: &Scenario{Name: "x", Steps: []Step{
				Wait(time.Millisecond),
				{Type: StepWheel, Ticks: -1},
			}},
			wantErr:  true,
			errField: "Steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil {
				if ve, ok := err.(*ValidationError); ok {
					if ve.Field != tt.errField {
						t.Errorf("Validate() error field = %v, want %v", ve.Field, tt.errField)
					}
				}
			}
			if !tt.wantErr && tt.wantWidth > 0 {
				if tt.scenario.Width != tt.wantWidth {
					t.Errorf("Width = %v, want %v", tt.scenario.Width, tt.wantWidth)
				}
				if tt.scenario.Setup == nil {
					t.Error("Setup should default")
				}
			}
		})
	}
}

func TestStepBuilders(t *testing.T) {
	t.Run("Wait", func(t *testing.T) {
		step := Wait(500 * time.Millisecond)
		if step.Type != StepWait {
			t.Errorf("Type = %v, want StepWait", step.Type)
		}
		if step.Duration != 500*time.Millisecond {
			t.Errorf("Duration = %v, want 500ms", step.Duration)
		}
	})

	t.Run("KeyWithDesc", func(t *testing.T) {
		step := KeyWithDesc("enter", "Open chat")
		if step.Type != StepKey || step.Key != "enter" {
			t.Errorf("step = %+v", step)
		}
		if step.Description != "Open chat" {
			t.Errorf("Description = %v, want 'Open chat'", step.Description)
		}
	})

	t.Run("Type", func(t *testing.T) {
		step := Type("hello world")
		if step.Type != StepTypeText || step.Text != "hello world" {
			t.Errorf("step = %+v", step)
		}
	})

	t.Run("Drag", func(t *testing.T) {
		step := Drag(1, 2, 3, 4, tea.ModCtrl)
		if step.Type != StepDrag {
			t.Errorf("Type = %v, want StepDrag", step.Type)
		}
		if step.X != 1 || step.Y != 2 || step.ToX != 3 || step.ToY != 4 || step.Mod != tea.ModCtrl {
			t.Errorf("step = %+v", step)
		}
	})

	t.Run("Wheel", func(t *testing.T) {
		step := Wheel(5, 6, true, 3, tea.ModAlt)
		if step.Type != StepWheel || !step.Up || step.Ticks != 3 {
			t.Errorf("step = %+v", step)
		}
	})

	t.Run("Hold and Release", func(t *testing.T) {
		if s := Hold(tea.ModCtrl); s.Type != StepHold || s.Mod != tea.ModCtrl {
			t.Errorf("Hold = %+v", s)
		}
		if s := Release(tea.ModCtrl); s.Type != StepRelease {
			t.Errorf("Release = %+v", s)
		}
	})
}

func TestDefaultSetup(t *testing.T) {
	setup := DefaultSetup()

	if setup.Workspace != "ws-1" {
		t.Errorf("Workspace = %v, want ws-1", setup.Workspace)
	}
	if setup.Modifier != "ctrl" {
		t.Errorf("Modifier = %v, want ctrl", setup.Modifier)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "Name",
		Message: "is required",
	}

	expected := "validation error: Name: is required"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}
