package course

import "gorm.io/gorm"

// Module represents a section/module within a course. Order is the
// zero-based position among the course's modules, regenerated from the
// submission array on every write.
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order" gorm:"column:order;default:0"`

	Contents []Content `json:"contents" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}
