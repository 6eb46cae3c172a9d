// Seeds the file-backed mock store with demo data so the console has
// something to show on first run. Safe to re-run: it appends, never wipes.
package main

import (
	"context"
	"fmt"
	"time"

	"lmsadmin/internal/config"
	"lmsadmin/internal/logger"
	"lmsadmin/internal/model"
	"lmsadmin/internal/repository"
	"lmsadmin/internal/service"
	"lmsadmin/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on system environment variables.")
	}

	logger := logger.New()
	logger.Info().Msg("Seeding mock store with demo data.")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Msgf("Failed to load config: %v", err)
	}

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Fatal().Msgf("Failed to open file store: %v", err)
	}

	courseRepo := repository.NewCourseRepo(store, cfg.StoragePrefix, logger)
	sectionRepo := repository.NewSectionRepo(store, cfg.StoragePrefix, logger)
	lessonRepo := repository.NewLessonRepo(store, cfg.StoragePrefix, logger)

	// No latency and no event publishing while seeding.
	courseSvc := service.NewCourseService(courseRepo, sectionRepo, lessonRepo, nil, "", 0, logger)
	curriculumSvc := service.NewCurriculumService(sectionRepo, lessonRepo, nil, "", 0, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	courses := []model.Course{
		{
			Title:  "Introduction to Algebra",
			Status: model.CourseStatusPublished,
			Metadata: model.Metadata{
				"price":     49.0,
				"thumbnail": "https://placehold.co/640x360",
				"seo_title": "Learn Algebra from Scratch",
			},
		},
		{
			Title:  "Modern World History",
			Status: model.CourseStatusDraft,
			Metadata: model.Metadata{
				"price": 29.0,
			},
		},
	}

	for i := range courses {
		created, err := courseSvc.CreateCourse(ctx, &courses[i])
		if err != nil {
			logger.Fatal().Msgf("Failed to seed course: %v", err)
		}
		logger.Info().Str("course_id", created.ID).Str("title", created.Title).Msg("Seeded course")

		for s := 1; s <= 2; s++ {
			section, err := curriculumSvc.CreateSection(ctx, created.ID, fmt.Sprintf("Unit %d", s))
			if err != nil {
				logger.Fatal().Msgf("Failed to seed section: %v", err)
			}
			for l := 1; l <= 3; l++ {
				lessonType := model.LessonTypeVideo
				if l == 3 {
					lessonType = model.LessonTypeQuiz
				}
				if _, err := curriculumSvc.CreateLesson(ctx, created.ID, section.ID, service.LessonInput{
					Title: fmt.Sprintf("Lesson %d.%d", s, l),
					Type:  lessonType,
				}); err != nil {
					logger.Fatal().Msgf("Failed to seed lesson: %v", err)
				}
			}
		}
	}

	logger.Info().Str("data_dir", cfg.DataDir).Msg("Seeding complete.")
}
