package course

import "gorm.io/gorm"

// Course is the top-level published unit. It owns its modules; a course
// write always replaces the whole module/content tree.
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Thumbnail    string `json:"thumbnail"`     // stored file path, "" when absent
	FeatureVideo string `json:"feature_video"` // stored file path, "" when absent

	ThumbnailURL    string `json:"thumbnail_url" gorm:"-"`
	FeatureVideoURL string `json:"feature_video_url" gorm:"-"`

	Modules []Module `json:"modules" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
