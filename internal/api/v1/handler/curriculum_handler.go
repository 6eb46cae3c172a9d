package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lmsadmin/internal/api/v1/dto"
	"lmsadmin/internal/model"
	"lmsadmin/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CurriculumHandler handles section, lesson and material endpoints
type CurriculumHandler struct {
	curriculumService service.CurriculumService
	materialService   service.MaterialService
	validate          *validator.Validate
	logger            zerolog.Logger
}

// NewCurriculumHandler creates a new CurriculumHandler. materialService may
// be nil when no object storage is configured; the upload endpoints then
// report 503.
func NewCurriculumHandler(
	curriculumService service.CurriculumService,
	materialService service.MaterialService,
	validate *validator.Validate,
	logger zerolog.Logger,
) *CurriculumHandler {
	return &CurriculumHandler{
		curriculumService: curriculumService,
		materialService:   materialService,
		validate:          validate,
		logger:            logger,
	}
}

// RegisterRoutes mounts curriculum routes
func (h *CurriculumHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /courses/{courseId}/curriculum", h.fetchCurriculum)
	mux.HandleFunc("POST /courses/{courseId}/sections", h.createSection)
	mux.HandleFunc("PATCH /sections/{sectionId}", h.updateSection)
	mux.HandleFunc("DELETE /sections/{sectionId}", h.deleteSection)
	mux.HandleFunc("POST /sections/{sectionId}/lessons", h.createLesson)
	mux.HandleFunc("PATCH /lessons/{lessonId}", h.updateLesson)
	mux.HandleFunc("DELETE /lessons/{lessonId}", h.deleteLesson)
	mux.HandleFunc("PUT /lessons/{lessonId}/material", h.updateLessonMaterial)
	mux.HandleFunc("POST /lessons/{lessonId}/material/upload", h.initiateMaterialUpload)
	mux.HandleFunc("GET /materials/view", h.viewMaterial)
}

// fetchCurriculum godoc
// @Summary Get a course's curriculum tree
// @Description Returns the course's sections ordered ascending with their lessons nested.
// @Tags curriculum
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.DataEnvelope
// @Router /courses/{courseId}/curriculum [get]
func (h *CurriculumHandler) fetchCurriculum(w http.ResponseWriter, r *http.Request) {
	tree, err := h.curriculumService.FetchCurriculum(r.Context(), r.PathValue("courseId"))
	if err != nil {
		http.Error(w, "Failed to fetch curriculum: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusOK, dto.NewCurriculumResponse(tree))
}

// createSection godoc
// @Summary Create a section
// @Description Appends a section to a course; order is the sibling count plus one.
// @Tags curriculum
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param section body dto.SectionCreateDTO true "Section creation request"
// @Success 201 {object} dto.DataEnvelope
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Router /courses/{courseId}/sections [post]
func (h *CurriculumHandler) createSection(w http.ResponseWriter, r *http.Request) {
	var req dto.SectionCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	section, err := h.curriculumService.CreateSection(r.Context(), r.PathValue("courseId"), req.Title)
	if err != nil {
		http.Error(w, "Failed to create section: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusCreated, dto.NewSectionResponse(section))
}

// updateSection godoc
// @Summary Update a section
// @Tags curriculum
// @Accept json
// @Produce json
// @Param sectionId path string true "Section ID"
// @Param section body dto.SectionUpdateDTO true "Section update request"
// @Success 200 {object} dto.DataEnvelope
// @Failure 404 {string} string "Section not found"
// @Router /sections/{sectionId} [patch]
func (h *CurriculumHandler) updateSection(w http.ResponseWriter, r *http.Request) {
	var req dto.SectionUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	upd := model.SectionUpdate{Title: req.Title, Order: req.Order}
	section, err := h.curriculumService.UpdateSection(r.Context(), r.PathValue("sectionId"), upd)
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update section: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusOK, dto.NewSectionResponse(section))
}

// deleteSection godoc
// @Summary Delete a section
// @Description Removes a section and its lessons. Sibling order values are untouched.
// @Tags curriculum
// @Produce json
// @Param sectionId path string true "Section ID"
// @Success 200 {object} dto.SuccessEnvelope
// @Router /sections/{sectionId} [delete]
func (h *CurriculumHandler) deleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.curriculumService.DeleteSection(r.Context(), r.PathValue("sectionId")); err != nil {
		http.Error(w, "Failed to delete section: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeSuccess(w)
}

// createLesson godoc
// @Summary Create a lesson
// @Description Appends a lesson to a section; type defaults to video.
// @Tags curriculum
// @Accept json
// @Produce json
// @Param sectionId path string true "Section ID"
// @Param courseId query string true "Course ID the section belongs to"
// @Param lesson body dto.LessonCreateDTO true "Lesson creation request"
// @Success 201 {object} dto.DataEnvelope
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Router /sections/{sectionId}/lessons [post]
func (h *CurriculumHandler) createLesson(w http.ResponseWriter, r *http.Request) {
	var req dto.LessonCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	in := service.LessonInput{Title: req.Title}
	if req.Type != nil {
		in.Type = *req.Type
	}
	lesson, err := h.curriculumService.CreateLesson(r.Context(), r.URL.Query().Get("courseId"), r.PathValue("sectionId"), in)
	if err != nil {
		http.Error(w, "Failed to create lesson: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusCreated, dto.NewLessonResponse(lesson))
}

// updateLesson godoc
// @Summary Update a lesson
// @Tags curriculum
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Param lesson body dto.LessonUpdateDTO true "Lesson update request"
// @Success 200 {object} dto.DataEnvelope
// @Failure 404 {string} string "Lesson not found"
// @Router /lessons/{lessonId} [patch]
func (h *CurriculumHandler) updateLesson(w http.ResponseWriter, r *http.Request) {
	var req dto.LessonUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	upd := model.LessonUpdate{
		SectionID:       req.SectionID,
		Title:           req.Title,
		Type:            req.Type,
		ResourceURL:     req.ResourceURL,
		IsPreview:       req.IsPreview,
		DurationMinutes: req.DurationMinutes,
		Order:           req.Order,
	}
	lesson, err := h.curriculumService.UpdateLesson(r.Context(), r.PathValue("lessonId"), upd)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update lesson: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusOK, dto.NewLessonResponse(lesson))
}

// deleteLesson godoc
// @Summary Delete a lesson
// @Tags curriculum
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} dto.SuccessEnvelope
// @Router /lessons/{lessonId} [delete]
func (h *CurriculumHandler) deleteLesson(w http.ResponseWriter, r *http.Request) {
	if err := h.curriculumService.DeleteLesson(r.Context(), r.PathValue("lessonId")); err != nil {
		http.Error(w, "Failed to delete lesson: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeSuccess(w)
}

// updateLessonMaterial godoc
// @Summary Attach a resource URL to a lesson
// @Tags curriculum
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Param material body dto.LessonMaterialDTO true "Material attach request"
// @Success 200 {object} dto.DataEnvelope
// @Failure 404 {string} string "Lesson not found"
// @Router /lessons/{lessonId}/material [put]
func (h *CurriculumHandler) updateLessonMaterial(w http.ResponseWriter, r *http.Request) {
	var req dto.LessonMaterialDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	lesson, err := h.curriculumService.UpdateLessonMaterial(r.Context(), r.PathValue("lessonId"), req.ResourceURL)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update lesson material: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusOK, dto.NewLessonResponse(lesson))
}

// initiateMaterialUpload godoc
// @Summary Request a presigned upload URL for a lesson resource
// @Tags materials
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Param upload body dto.MaterialUploadRequestDTO true "Upload request"
// @Success 200 {object} dto.DataEnvelope
// @Failure 503 {string} string "Object storage not configured"
// @Router /lessons/{lessonId}/material/upload [post]
func (h *CurriculumHandler) initiateMaterialUpload(w http.ResponseWriter, r *http.Request) {
	if h.materialService == nil {
		http.Error(w, "Object storage not configured", http.StatusServiceUnavailable)
		return
	}
	var req dto.MaterialUploadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	upload, err := h.materialService.InitiateUpload(r.Context(), r.PathValue("lessonId"), req.Filename)
	if err != nil {
		http.Error(w, "Failed to initiate upload: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusOK, dto.MaterialUploadResponseDTO{
		UploadURL:   upload.UploadURL,
		ResourceURL: upload.ResourceURL,
		ObjectKey:   upload.ObjectKey,
	})
}

// viewMaterial godoc
// @Summary Get a presigned view URL for a material object
// @Tags materials
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} dto.DataEnvelope
// @Failure 503 {string} string "Object storage not configured"
// @Router /materials/view [get]
func (h *CurriculumHandler) viewMaterial(w http.ResponseWriter, r *http.Request) {
	if h.materialService == nil {
		http.Error(w, "Object storage not configured", http.StatusServiceUnavailable)
		return
	}
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key query parameter is required", http.StatusBadRequest)
		return
	}
	url, err := h.materialService.GetViewURL(r.Context(), key)
	if err != nil {
		http.Error(w, "Failed to generate view URL: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"url": url})
}
