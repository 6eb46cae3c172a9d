package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"lmsadmin/internal/api/v1/dto"
	"lmsadmin/internal/model"
	"lmsadmin/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validate:      validate,
		logger:        logger,
	}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /courses", h.createCourse)
	mux.HandleFunc("GET /courses", h.listCourses)
	mux.HandleFunc("GET /courses/{courseId}", h.getCourse)
	mux.HandleFunc("PATCH /courses/{courseId}", h.updateCourse)
	mux.HandleFunc("DELETE /courses/{courseId}", h.deleteCourse)
}

// createCourse godoc
// @Summary Create a new course
// @Description Creates a new course. Status defaults to draft; metadata is stored verbatim.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 {object} dto.DataEnvelope
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	course := &model.Course{
		Title:    req.Title,
		Metadata: req.Metadata,
	}
	if req.Status != nil {
		course.Status = *req.Status
	}
	created, err := h.courseService.CreateCourse(r.Context(), course)
	if err != nil {
		http.Error(w, "Failed to create course: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusCreated, dto.NewCourseResponse(created))
}

// listCourses godoc
// @Summary List courses
// @Description Returns one page of courses, optionally filtered by status ("All" or empty disables the filter).
// @Tags courses
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Status filter (case-insensitive)"
// @Success 200 {object} dto.DataEnvelope
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	list, err := h.courseService.ListCourses(r.Context(), page, limit, q.Get("status"))
	if err != nil {
		http.Error(w, "Failed to list courses: "+err.Error(), http.StatusInternalServerError)
		return
	}
	resp := dto.CourseListResponseDTO{
		Items: []dto.CourseResponseDTO{},
		Total: list.Total,
		Page:  list.Page,
		Limit: list.Limit,
	}
	for i := range list.Items {
		resp.Items = append(resp.Items, dto.NewCourseResponse(&list.Items[i]))
	}
	writeData(w, http.StatusOK, resp)
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a course by ID. A missing ID yields data: null, not an error.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.DataEnvelope
// @Router /courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.courseService.GetCourseByID(r.Context(), r.PathValue("courseId"))
	if err != nil {
		http.Error(w, "Failed to get course: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if course == nil {
		writeData(w, http.StatusOK, nil)
		return
	}
	writeData(w, http.StatusOK, dto.NewCourseResponse(course))
}

// updateCourse godoc
// @Summary Update a course
// @Description Shallow-merges the supplied fields over an existing course.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param course body dto.CourseUpdateDTO true "Course update request"
// @Success 200 {object} dto.DataEnvelope
// @Failure 404 {string} string "Course not found"
// @Router /courses/{courseId} [patch]
func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	upd := model.CourseUpdate{
		Title:    req.Title,
		Status:   req.Status,
		Metadata: req.Metadata,
	}
	updated, err := h.courseService.UpdateCourse(r.Context(), r.PathValue("courseId"), upd)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update course: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusOK, dto.NewCourseResponse(updated))
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Removes a course and cascades over its sections and lessons. Deleting a missing ID succeeds.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.SuccessEnvelope
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.courseService.DeleteCourse(r.Context(), r.PathValue("courseId")); err != nil {
		http.Error(w, "Failed to delete course: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeSuccess(w)
}
