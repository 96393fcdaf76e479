package usecase

import (
	"context"

	"github.com/codinganovel/texty/internal/domain"
)

// ListTemplatesOutput contains the template listing.
type ListTemplatesOutput struct {
	Templates []domain.TemplateInfo
}

// ListTemplates is the use case for listing content templates.
type ListTemplates struct {
	templates domain.TemplateStore
}

// NewListTemplates creates a new ListTemplates use case.
func NewListTemplates(templates domain.TemplateStore) *ListTemplates {
	return &ListTemplates{templates: templates}
}

// Execute returns the available templates.
func (uc *ListTemplates) Execute(_ context.Context) (*ListTemplatesOutput, error) {
	infos, err := uc.templates.List()
	if err != nil {
		return nil, err
	}
	return &ListTemplatesOutput{Templates: infos}, nil
}
