package handlers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/internal/application"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
	"github.com/linskybing/bootcamp-go/pkg/response"
	"github.com/linskybing/bootcamp-go/pkg/utils"
)

type TestimonialHandler struct {
	svc *application.TestimonialService
}

func NewTestimonialHandler(svc *application.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

// ListPublic godoc
// @Summary List approved testimonials
// @Tags testimonials
// @Produce json
// @Param limit query int false "Maximum number of testimonials"
// @Success 200 {array} testimonial.Testimonial
// @Router /testimonials [get]
func (h *TestimonialHandler) ListPublic(c *gin.Context) {
	limit, err := utils.ParseIntQuery(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "limit must be a non-negative integer"})
		return
	}
	items, err := h.svc.ListPublic(limit)
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []testimonial.Testimonial{}
	}
	c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Submit a testimonial
// @Description Accepts JSON, or multipart/form-data with optional image or video "files".
// @Tags testimonials
// @Accept json,mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param role formData string true "Role"
// @Param content formData string true "Testimonial"
// @Param rating formData int true "Rating from 1 to 5"
// @Param files formData file false "Media files"
// @Success 201 {object} testimonial.Testimonial
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 503 {object} response.ErrorResponse "Uploads not configured"
// @Router /testimonials [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var input testimonial.CreateTestimonialInput
	var files []testimonial.MediaFile

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
			return
		}
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid multipart form"})
			return
		}
		opened, closeAll, err := openFiles(form.File["files"])
		defer closeAll()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid file upload"})
			return
		}
		files = opened
	} else if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), input, files)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func openFiles(headers []*multipart.FileHeader) ([]testimonial.MediaFile, func(), error) {
	var closers []multipart.File
	closeAll := func() {
		for _, f := range closers {
			f.Close()
		}
	}
	files := make([]testimonial.MediaFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		closers = append(closers, f)
		files = append(files, testimonial.MediaFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return files, closeAll, nil
}

// List godoc
// @Summary List testimonials for moderation
// @Tags testimonials
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} testimonial.Testimonial
// @Router /testimonials/admin [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	items, err := h.svc.List(q)
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []testimonial.Testimonial{}
	}
	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a testimonial
// @Tags testimonials
// @Security BearerAuth
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} testimonial.Testimonial
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /testimonials/{id} [get]
func (h *TestimonialHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	found, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateStatus godoc
// @Summary Approve or reject a testimonial
// @Tags testimonials
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param input body testimonial.UpdateTestimonialStatusInput true "Target status"
// @Success 200 {object} testimonial.Testimonial
// @Failure 400 {object} response.ValidationErrorResponse "Invalid status"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /testimonials/{id} [patch]
func (h *TestimonialHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input testimonial.UpdateTestimonialStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err, map[string]string{"Status": "status"})
		return
	}
	updated, err := h.svc.UpdateStatus(id, input.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a testimonial
// @Tags testimonials
// @Security BearerAuth
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Testimonial deleted"})
}
