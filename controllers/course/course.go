package controllers

import (
	"log"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse creates a course with its whole module/content tree in one
// transaction. On any error the transaction rolls back and no rows remain;
// files already written to the upload dir are not removed.
func CreateCourse(c *fiber.Ctx) error {
	payload, ok := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Course-level files (multipart submissions only)
	thumbnailPath, err := saveCourseFile(c, "thumbnail", "courses/thumbnails")
	if err != nil {
		log.Printf("Error storing thumbnail: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	featureVideoPath, err := saveCourseFile(c, "feature_video", "courses/videos")
	if err != nil {
		log.Printf("Error storing feature video: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	var course courseModels.Course

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		course = courseModels.Course{
			Title:        payload.Title,
			Description:  payload.Description,
			Category:     payload.Category,
			Thumbnail:    thumbnailPath,
			FeatureVideo: featureVideoPath,
		}

		if err := tx.Create(&course).Error; err != nil {
			return err
		}

		return createModules(c, tx, course.ID, payload.Modules)
	})

	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	if err := LoadCourseTree(database.Database.Db, &course); err != nil {
		log.Printf("Error loading course tree: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse replaces a course wholesale: scalar fields are updated, all
// existing modules and contents are deleted, and the tree is rebuilt from
// the submitted payload inside one transaction.
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	payload, ok := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		course.Title = payload.Title
		course.Description = payload.Description
		course.Category = payload.Category

		// Replace course-level files, removing the old ones first
		if hasFormFile(c, "thumbnail") {
			if err := utils.DeleteUploadedFile(course.Thumbnail); err != nil {
				return err
			}
			path, err := saveCourseFile(c, "thumbnail", "courses/thumbnails")
			if err != nil {
				return err
			}
			course.Thumbnail = path
		}

		if hasFormFile(c, "feature_video") {
			if err := utils.DeleteUploadedFile(course.FeatureVideo); err != nil {
				return err
			}
			path, err := saveCourseFile(c, "feature_video", "courses/videos")
			if err != nil {
				return err
			}
			course.FeatureVideo = path
		}

		if err := tx.Save(&course).Error; err != nil {
			return err
		}

		if err := deleteCourseTree(tx, course.ID); err != nil {
			return err
		}

		return createModules(c, tx, course.ID, payload.Modules)
	})

	if err != nil {
		log.Printf("Error updating course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if err := LoadCourseTree(database.Database.Db, &course); err != nil {
		log.Printf("Error loading course tree: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course, its modules and all content at every
// depth. Stored files are deleted first; they are not restored if the row
// delete fails afterwards.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := utils.DeleteUploadedFile(course.Thumbnail); err != nil {
		log.Printf("Error deleting thumbnail for course %d: %v", courseID, err)
	}
	if err := utils.DeleteUploadedFile(course.FeatureVideo); err != nil {
		log.Printf("Error deleting feature video for course %d: %v", courseID, err)
	}

	var contents []courseModels.Content
	database.Database.Db.
		Where("module_id IN (?)", database.Database.Db.Model(&courseModels.Module{}).Select("id").Where("course_id = ?", course.ID)).
		Find(&contents)

	for _, content := range contents {
		if err := utils.DeleteUploadedFile(content.FilePath); err != nil {
			log.Printf("Error deleting file for content %d: %v", content.ID, err)
		}
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := deleteCourseTree(tx, course.ID); err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})

	if err != nil {
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetCourses lists all courses with their full nested trees
func GetCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.Order("created_at asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	for i := range courses {
		if err := LoadCourseTree(database.Database.Db, &courses[i]); err != nil {
			log.Printf("Error loading course tree for course %d: %v", courses[i].ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourse returns one course with its full nested tree
func GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Root-first loading; descends one level at a time
	if err := LoadCourseTreeFromRoots(database.Database.Db, &course); err != nil {
		log.Printf("Error loading course tree for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// createModules creates one Module per payload entry, order taken from the
// array position, then materializes each module's content forest.
func createModules(c *fiber.Ctx, tx *gorm.DB, courseID uint, modules []courseValidator.ModulePayload) error {
	for moduleIndex, moduleData := range modules {
		module := courseModels.Module{
			CourseID:    courseID,
			Title:       moduleData.Title,
			Description: moduleData.Description,
			Order:       moduleIndex,
		}

		if err := tx.Create(&module).Error; err != nil {
			return err
		}

		for contentIndex := range moduleData.Contents {
			if _, err := createContentRecursive(c, tx, module.ID, &moduleData.Contents[contentIndex], contentIndex, nil); err != nil {
				return err
			}
		}
	}

	return nil
}

// createContentRecursive persists one content node and, pre-order, its
// children. moduleID is threaded through unchanged so every descendant
// lands in the same module as its ancestor; order is the node's position
// in the submitted sibling array.
func createContentRecursive(c *fiber.Ctx, tx *gorm.DB, moduleID uint, node *courseValidator.ContentPayload, order int, parentID *uint) (uint, error) {
	filePath := ""
	if node.FileKey != "" {
		if file, err := c.FormFile(node.FileKey); err == nil && file != nil {
			path, err := utils.SaveUploadedFile(file, utils.ContentFolder(node.Type))
			if err != nil {
				return 0, err
			}
			filePath = path
		}
	}

	content := courseModels.Content{
		ModuleID: moduleID,
		ParentID: parentID,
		Title:    node.Title,
		Body:     node.Body,
		Type:     node.Type,
		Order:    order,
		FilePath: filePath,
	}

	if err := tx.Create(&content).Error; err != nil {
		return 0, err
	}

	for childIndex := range node.Children {
		if _, err := createContentRecursive(c, tx, moduleID, &node.Children[childIndex], childIndex, &content.ID); err != nil {
			return 0, err
		}
	}

	return content.ID, nil
}

// deleteCourseTree removes all modules and contents of a course, children
// before parents so the datastore never needs cascade support.
func deleteCourseTree(tx *gorm.DB, courseID uint) error {
	var moduleIDs []uint
	if err := tx.Model(&courseModels.Module{}).Where("course_id = ?", courseID).Pluck("id", &moduleIDs).Error; err != nil {
		return err
	}

	if len(moduleIDs) == 0 {
		return nil
	}

	if err := tx.Where("module_id IN ?", moduleIDs).Delete(&courseModels.Content{}).Error; err != nil {
		return err
	}

	return tx.Where("id IN ?", moduleIDs).Delete(&courseModels.Module{}).Error
}

func hasFormFile(c *fiber.Ctx, key string) bool {
	file, err := c.FormFile(key)
	return err == nil && file != nil
}

func saveCourseFile(c *fiber.Ctx, key, folder string) (string, error) {
	file, err := c.FormFile(key)
	if err != nil || file == nil {
		return "", nil
	}
	return utils.SaveUploadedFile(file, folder)
}
