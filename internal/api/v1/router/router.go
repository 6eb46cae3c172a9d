package router

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"lmsadmin/internal/api/v1/handler"
	"lmsadmin/internal/config"
	"lmsadmin/internal/middleware"
	"lmsadmin/internal/pubsub"
	"lmsadmin/internal/repository"
	"lmsadmin/internal/service"
	"lmsadmin/internal/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
)

// New wires the store, services and handlers into the HTTP handler. The
// returned cleanup function releases the storage backend.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, func(), error) {
	logger.Info().Str("environment", cfg.Environment).Str("storage_backend", cfg.StorageBackend).Msg("Router initialized")

	// 1. Select the persistent store backend
	store, cleanup, err := newStore(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	// 2. Initialize S3 client when object storage is configured
	var materialSvc service.MaterialService
	if cfg.S3URL != "" && cfg.S3AccessKey != "" {
		s3Config, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
			awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
		)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to load S3 config: %w", err)
		}
		s3Client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3URL)
			o.UsePathStyle = true
		})
		materialSvc = service.NewMaterialService(s3Client, cfg.S3Bucket, cfg.S3URL, logger)
	} else {
		logger.Warn().Msg("Object storage not configured, material upload endpoints disabled")
	}

	// 3. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 4. Initialize Pub/Sub publisher when a project is configured
	var publisher pubsub.Publisher
	if cfg.GCPProjectID != "" {
		p, err := pubsub.NewPublisher(context.Background(), cfg.GCPProjectID, cfg.PubSubEmulatorHost)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create Pub/Sub publisher: %w", err)
		}
		publisher = p
	}

	// 5. Initialize repositories & services & handlers
	courseRepo := repository.NewCourseRepo(store, cfg.StoragePrefix, logger)
	sectionRepo := repository.NewSectionRepo(store, cfg.StoragePrefix, logger)
	lessonRepo := repository.NewLessonRepo(store, cfg.StoragePrefix, logger)

	latency := cfg.MockLatency()
	courseSvc := service.NewCourseService(courseRepo, sectionRepo, lessonRepo, publisher, cfg.PubSubEventsTopic, latency, logger)
	curriculumSvc := service.NewCurriculumService(sectionRepo, lessonRepo, publisher, cfg.PubSubEventsTopic, latency, logger)

	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	curriculumHandler := handler.NewCurriculumHandler(curriculumSvc, materialSvc, validate, logger)

	// 6. Create ServeMux router
	mux := http.NewServeMux()

	apiV1Mux := http.NewServeMux()
	courseHandler.RegisterRoutes(apiV1Mux)
	curriculumHandler.RegisterRoutes(apiV1Mux)

	// Mount the API v1 routes under /v1
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	// Add Swagger documentation
	mux.HandleFunc("/swagger/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "Swagger documentation unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})

	// Redirect root-level requests to /v1/{path} so the console can use
	// either form during local development.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v1/") || strings.HasPrefix(r.URL.Path, "/swagger/") {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/v1"+r.URL.Path, http.StatusMovedPermanently)
	})

	// 7. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // the console dev server runs on an arbitrary port
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), cleanup, nil
}

// newStore builds the configured storage backend.
func newStore(cfg *config.Config, logger zerolog.Logger) (storage.Store, func(), error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	case "file":
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("data_dir", cfg.DataDir).Msg("File store initialized")
		return fs, func() {}, nil
	case "postgres":
		ctx := context.Background()
		if err := cfg.ResolveDBConnectionString(ctx); err != nil {
			return nil, nil, err
		}
		if cfg.DBConnectionString == "" {
			return nil, nil, fmt.Errorf("DB_CONNECTION_STRING is required for the postgres backend")
		}
		ps, err := storage.NewPostgresStore(ctx, cfg.DBConnectionString, cfg.DBKVTable)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Msg("Postgres store initialized")
		return ps, ps.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// removeDisableGzip is a workaround for S3 signature errors with some
// S3-compatible services.
// See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
