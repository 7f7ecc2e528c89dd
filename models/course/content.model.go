package course

import "gorm.io/gorm"

// Content types
const (
	ContentTypeText     = "text"
	ContentTypeVideo    = "video"
	ContentTypeDocument = "document"
	ContentTypeQuiz     = "quiz"
)

// Content is a single learning unit inside a module. Rows form a forest
// per module: ParentID is nil for root nodes and points at another
// Content of the same module otherwise. Order is the zero-based position
// among siblings sharing the same parent.
type Content struct {
	gorm.Model
	ModuleID uint   `json:"module_id" gorm:"index;not null"`
	ParentID *uint  `json:"parent_id" gorm:"index"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Type     string `json:"type" gorm:"default:'text'"` // text, video, document, quiz
	Order    int    `json:"order" gorm:"column:order;default:0"`
	FilePath string `json:"file_path"` // stored file path, "" when absent

	FileURL string `json:"file_url" gorm:"-"`

	Children []Content `json:"children" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}
