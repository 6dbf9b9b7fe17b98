package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"luxemart/internal/models"
	"luxemart/internal/services"
	httputil "luxemart/internal/utility/http"

	"github.com/go-chi/chi"
)

type ProductGroupHandler struct {
	service *services.GroupService
}

func NewProductGroupHandler(service *services.GroupService) *ProductGroupHandler {
	return &ProductGroupHandler{service: service}
}

// groupInput is the JSON payload carried in the "data" form value of the
// multipart create request; the photo arrives as a separate file part.
type groupInput struct {
	Name       string   `json:"name"`
	Tags       []string `json:"tags"`
	ProductIDs []string `json:"productIds"`
}

func (h *ProductGroupHandler) GetProductGroups(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, err, "Product groups not found")
		return
	}
	httputil.RespondSuccess(w, views)
}

func (h *ProductGroupHandler) GetProductGroup(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, "Product group not found")
		return
	}
	httputil.RespondSuccess(w, view)
}

func (h *ProductGroupHandler) GetProductGroupsByTag(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ByTag(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err, "Product groups not found")
		return
	}
	if len(views) == 0 {
		httputil.RespondEmptyResult(w, "No product groups found for this tag")
		return
	}
	httputil.RespondCount(w, len(views), views)
}

func (h *ProductGroupHandler) GetAllTags(w http.ResponseWriter, r *http.Request) {
	httputil.RespondSuccess(w, h.service.Tags())
}

func (h *ProductGroupHandler) GetAllProductGroupImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.Images(r.Context())
	if err != nil {
		respondServiceError(w, err, "Product group images not found")
		return
	}
	httputil.RespondSuccess(w, images)
}

func (h *ProductGroupHandler) CreateProductGroup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to parse form", err)
		return
	}

	var input groupInput
	if err := json.Unmarshal([]byte(r.FormValue("data")), &input); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Failed to parse JSON data", err)
		return
	}

	photo, err := openSingleFile(r, "photo")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}

	group, err := h.service.Create(r.Context(), callerUID(r), input.Name, input.Tags, input.ProductIDs, photo)
	if err != nil {
		respondServiceError(w, err, "Product group not found")
		return
	}
	httputil.RespondCreated(w, group)
}

func (h *ProductGroupHandler) EditProductGroup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to parse form", err)
		return
	}

	var upd models.GroupUpdate
	if data := r.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &upd); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Failed to parse JSON data", err)
			return
		}
	}

	photo, err := openSingleFile(r, "photo")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}

	group, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), upd, photo)
	if err != nil {
		respondServiceError(w, err, "Product group not found")
		return
	}
	httputil.RespondSuccess(w, group)
}

func (h *ProductGroupHandler) DeleteProductGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err, "Product group not found")
		return
	}
	httputil.RespondSuccess(w, map[string]string{"message": "Product group deleted"})
}

// openSingleFile returns the first uploaded file under the field, or nil when
// the request carries none.
func openSingleFile(r *http.Request, field string) (io.Reader, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	return headers[0].Open()
}
