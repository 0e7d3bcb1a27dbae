// Package workspace holds the in-memory list of workspaces and the chat
// panels each one starts with. Nothing here is persisted.
package workspace

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/zhubert/canvas/internal/errors"
	"github.com/zhubert/canvas/internal/logger"
)

// DefaultName is used when a workspace is created without a name.
const DefaultName = "New Workspace"

// MaxNameLength bounds workspace names.
const MaxNameLength = 64

// PanelSpec describes a chat panel as a workspace opens. Coordinates are
// pivot-relative logical pixels; zero sizes take the canvas defaults.
type PanelSpec struct {
	ID     string
	Title  string
	X, Y   float64
	Width  float64
	Height float64
	Turns  []string
}

// LinkSpec is a connector between two panels of the same workspace.
type LinkSpec struct {
	ID   string
	From string
	To   string
}

// Workspace is a named canvas of chat panels.
type Workspace struct {
	ID     string
	Name   string
	Panels []PanelSpec
	Links  []LinkSpec
}

// Store is an ordered, in-memory set of workspaces. It is owned by the UI
// loop and is not safe for concurrent use.
type Store struct {
	order []string
	byID  map[string]*Workspace
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[string]*Workspace)}
}

// List returns the workspaces in display order.
func (s *Store) List() []*Workspace {
	out := make([]*Workspace, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Names returns the workspace names in display order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.order))
	for _, id := range s.order {
		names = append(names, s.byID[id].Name)
	}
	return names
}

// Len returns the number of workspaces.
func (s *Store) Len() int {
	return len(s.order)
}

// Get returns the workspace with id.
func (s *Store) Get(id string) (*Workspace, error) {
	ws, ok := s.byID[id]
	if !ok {
		return nil, errors.WorkspaceNotFound(id)
	}
	return ws, nil
}

// Index returns the display position of id, or -1.
func (s *Store) Index(id string) int {
	return slices.Index(s.order, id)
}

// Add inserts a fully formed workspace at the end of the list.
func (s *Store) Add(ws *Workspace) {
	if _, ok := s.byID[ws.ID]; !ok {
		s.order = append(s.order, ws.ID)
	}
	s.byID[ws.ID] = ws
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxNameLength || strings.ContainsAny(name, "\n\r\t") {
		return "", errors.WorkspaceNameInvalid(name)
	}
	return name, nil
}

// Create adds a workspace holding a single empty chat panel. An empty name
// falls back to DefaultName.
func (s *Store) Create(name string) (*Workspace, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	ws := &Workspace{
		ID:   uuid.New().String(),
		Name: name,
		Panels: []PanelSpec{{
			ID:    uuid.New().String(),
			Title: "New Chat",
			X:     -350,
			Y:     -250,
		}},
	}
	s.Add(ws)
	logger.WithWorkspace(ws.ID).Info("workspace created", "name", name)
	return ws, nil
}

// Rename changes the name of a workspace.
func (s *Store) Rename(id, name string) error {
	ws, err := s.Get(id)
	if err != nil {
		return err
	}
	name, err = cleanName(name)
	if err != nil {
		return err
	}
	ws.Name = name
	logger.WithWorkspace(id).Info("workspace renamed", "name", name)
	return nil
}

// Delete removes a workspace.
func (s *Store) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	logger.WithWorkspace(id).Info("workspace deleted")
	return nil
}
