package usecase

import (
	"context"

	"github.com/codinganovel/texty/internal/domain"
)

// EditorStatus describes one known editor's availability.
// Fields are ordered to minimize memory padding.
type EditorStatus struct {
	Name      string // Display name
	Command   string // Command probed on PATH
	Path      string // Resolved path when available
	Available bool
	Current   bool // This is the editor the create flow would use
}

// ListEditorsOutput contains the editor listing.
type ListEditorsOutput struct {
	Editors []EditorStatus
	// Resolved is what editor resolution currently yields, with its source.
	Resolved *ResolveEditorOutput
}

// ListEditors is the use case for listing known editors.
type ListEditors struct {
	finder   domain.CommandFinder
	resolver *ResolveEditor
}

// NewListEditors creates a new ListEditors use case.
func NewListEditors(finder domain.CommandFinder, resolver *ResolveEditor) *ListEditors {
	return &ListEditors{finder: finder, resolver: resolver}
}

// Execute probes the known-editor registry and the current resolution.
func (uc *ListEditors) Execute(ctx context.Context) (*ListEditorsOutput, error) {
	resolved, err := uc.resolver.Execute(ctx, ResolveEditorInput{})
	if err != nil {
		return nil, err
	}

	statuses := make([]EditorStatus, 0, len(domain.KnownEditors))
	for _, e := range domain.KnownEditors {
		status := EditorStatus{
			Name:    e.Name,
			Command: e.Command,
			Current: e.Command == resolved.Command,
		}
		if path, err := uc.finder.Find(e.Command); err == nil {
			status.Available = true
			status.Path = path
		}
		statuses = append(statuses, status)
	}

	return &ListEditorsOutput{Editors: statuses, Resolved: resolved}, nil
}
