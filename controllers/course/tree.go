package controllers

import (
	courseModels "lms/models/course"
	"lms/utils"

	"gorm.io/gorm"
)

// LoadCourseTree loads a course's modules and contents and nests them in
// memory: every module's contents are fetched in one flat query ordered by
// `order`, then folded into a forest by parent reference.
func LoadCourseTree(db *gorm.DB, course *courseModels.Course) error {
	course.ThumbnailURL = utils.GetFileURL(course.Thumbnail)
	course.FeatureVideoURL = utils.GetFileURL(course.FeatureVideo)

	var modules []courseModels.Module
	if err := db.Where("course_id = ?", course.ID).Order(`"order" asc`).Find(&modules).Error; err != nil {
		return err
	}

	for i := range modules {
		var contents []courseModels.Content
		if err := db.Where("module_id = ?", modules[i].ID).Order(`"order" asc`).Find(&contents).Error; err != nil {
			return err
		}
		modules[i].Contents = NestContents(contents)
	}

	course.Modules = modules
	return nil
}

// NestContents folds flat content rows into a forest keyed by parent
// reference. Rows must already be ordered by `order`; that ordering is
// preserved within every sibling group.
func NestContents(rows []courseModels.Content) []courseModels.Content {
	byParent := make(map[uint][]courseModels.Content)
	for _, row := range rows {
		parentKey := uint(0) // roots have no parent
		if row.ParentID != nil {
			parentKey = *row.ParentID
		}
		byParent[parentKey] = append(byParent[parentKey], row)
	}

	return attachChildren(byParent, 0)
}

func attachChildren(byParent map[uint][]courseModels.Content, parentKey uint) []courseModels.Content {
	nodes := byParent[parentKey]
	forest := make([]courseModels.Content, 0, len(nodes))

	for _, node := range nodes {
		node.FileURL = utils.GetFileURL(node.FilePath)
		node.Children = attachChildren(byParent, node.ID)
		forest = append(forest, node)
	}

	return forest
}

// LoadCourseTreeFromRoots loads the same forest as LoadCourseTree but
// root-first: only root contents (parent IS NULL) are fetched per module,
// then each subtree is descended level by level.
func LoadCourseTreeFromRoots(db *gorm.DB, course *courseModels.Course) error {
	course.ThumbnailURL = utils.GetFileURL(course.Thumbnail)
	course.FeatureVideoURL = utils.GetFileURL(course.FeatureVideo)

	var modules []courseModels.Module
	if err := db.Where("course_id = ?", course.ID).Order(`"order" asc`).Find(&modules).Error; err != nil {
		return err
	}

	for i := range modules {
		roots := make([]courseModels.Content, 0)
		if err := db.Where("module_id = ? AND parent_id IS NULL", modules[i].ID).Order(`"order" asc`).Find(&roots).Error; err != nil {
			return err
		}

		for j := range roots {
			if err := loadContentSubtree(db, &roots[j]); err != nil {
				return err
			}
		}
		modules[i].Contents = roots
	}

	course.Modules = modules
	return nil
}

func loadContentSubtree(db *gorm.DB, content *courseModels.Content) error {
	content.FileURL = utils.GetFileURL(content.FilePath)

	// Keep leaves as empty slices so both retrieval modes serialize alike
	children := make([]courseModels.Content, 0)
	if err := db.Where("parent_id = ?", content.ID).Order(`"order" asc`).Find(&children).Error; err != nil {
		return err
	}

	for i := range children {
		if err := loadContentSubtree(db, &children[i]); err != nil {
			return err
		}
	}

	content.Children = children
	return nil
}
