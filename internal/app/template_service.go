package app

import (
	"context"
	"fmt"

	"github.com/example/factogo/internal/ports/primary"
	"github.com/example/factogo/internal/ports/secondary"
)

// TemplateServiceImpl implements the TemplateService interface.
type TemplateServiceImpl struct {
	templateRepo secondary.TemplateRepository
}

// NewTemplateService creates a new TemplateService with injected dependencies.
func NewTemplateService(templateRepo secondary.TemplateRepository) *TemplateServiceImpl {
	return &TemplateServiceImpl{templateRepo: templateRepo}
}

// CreateTemplate creates a new document template.
func (s *TemplateServiceImpl) CreateTemplate(ctx context.Context, name, htmlContent string) (*primary.Template, error) {
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}

	rec := &secondary.TemplateRecord{Name: name, HTMLContent: htmlContent}
	id, err := s.templateRepo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	return &primary.Template{ID: id, Name: name, HTMLContent: htmlContent}, nil
}

// GetTemplate retrieves a template by id.
func (s *TemplateServiceImpl) GetTemplate(ctx context.Context, id int64) (*primary.Template, error) {
	rec, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &primary.Template{ID: rec.ID, Name: rec.Name, HTMLContent: rec.HTMLContent}, nil
}

// ListTemplates returns all templates.
func (s *TemplateServiceImpl) ListTemplates(ctx context.Context) ([]*primary.Template, error) {
	recs, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	templates := make([]*primary.Template, 0, len(recs))
	for _, rec := range recs {
		templates = append(templates, &primary.Template{ID: rec.ID, Name: rec.Name, HTMLContent: rec.HTMLContent})
	}
	return templates, nil
}

// UpdateTemplate overwrites the template's name and content.
func (s *TemplateServiceImpl) UpdateTemplate(ctx context.Context, id int64, name, htmlContent string) error {
	if name == "" {
		return fmt.Errorf("template name is required")
	}
	return s.templateRepo.Update(ctx, id, &secondary.TemplateRecord{Name: name, HTMLContent: htmlContent})
}

// DeleteTemplate removes a template.
func (s *TemplateServiceImpl) DeleteTemplate(ctx context.Context, id int64) error {
	return s.templateRepo.Delete(ctx, id)
}

// Ensure TemplateServiceImpl implements the interface
var _ primary.TemplateService = (*TemplateServiceImpl)(nil)
