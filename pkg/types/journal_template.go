package types

import "github.com/lib/pq"

type JournalTemplate struct {
	ID          string         `json:"id" db:"id"`
	UserID      string         `json:"user_id" db:"user_id"`
	Name        string         `json:"name" db:"name"`
	Description string         `json:"description" db:"description"`
	Fields      JSONRaw        `json:"fields" db:"fields"`
	IsPublic    bool           `json:"is_public" db:"is_public"`
	Category    string         `json:"category" db:"category"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	Likes       int64          `json:"likes" db:"likes"`
	IsFeatured  bool           `json:"is_featured" db:"is_featured"`
	CreatedAt   int64          `json:"created_at" db:"created_at"`
	UpdatedAt   int64          `json:"updated_at" db:"updated_at"`
}

// TemplateField is one entry of a template's ordered field list.
type TemplateField struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Label       string          `json:"label"`
	Placeholder string          `json:"placeholder,omitempty"`
	Required    bool            `json:"required"`
	Table       *TemplateTable  `json:"table,omitempty"`
}

// TemplateTable describes an embedded table schema for table-type fields.
type TemplateTable struct {
	Columns []TemplateTableColumn `json:"columns"`
	MinRows int                   `json:"min_rows,omitempty"`
}

type TemplateTableColumn struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

const (
	TEMPLATE_FIELD_TYPE_TEXT     = "text"
	TEMPLATE_FIELD_TYPE_TEXTAREA = "textarea"
	TEMPLATE_FIELD_TYPE_NUMBER   = "number"
	TEMPLATE_FIELD_TYPE_DATE     = "date"
	TEMPLATE_FIELD_TYPE_SELECT   = "select"
	TEMPLATE_FIELD_TYPE_TABLE    = "table"
)

type TemplateLike struct {
	ID         int64  `json:"id" db:"id"`
	TemplateID string `json:"template_id" db:"template_id"`
	UserID     string `json:"user_id" db:"user_id"`
	CreatedAt  int64  `json:"created_at" db:"created_at"`
}

type ListTemplateOptions struct {
	UserID     string
	PublicOnly bool
	Category   string
}
