package primary

import "context"

// Template is the service-level view of a document template.
type Template struct {
	ID          int64
	Name        string
	HTMLContent string
}

// TemplateService is the primary port for document template operations.
type TemplateService interface {
	CreateTemplate(ctx context.Context, name, htmlContent string) (*Template, error)
	GetTemplate(ctx context.Context, id int64) (*Template, error)
	ListTemplates(ctx context.Context) ([]*Template, error)
	UpdateTemplate(ctx context.Context, id int64, name, htmlContent string) error
	DeleteTemplate(ctx context.Context, id int64) error
}
