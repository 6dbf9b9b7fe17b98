package handlers

import (
	"net/http"
	"strconv"

	"luxemart/internal/services"
	httputil "luxemart/internal/utility/http"

	"github.com/go-chi/chi"
)

type BannerHandler struct {
	service *services.BannerService
}

func NewBannerHandler(service *services.BannerService) *BannerHandler {
	return &BannerHandler{service: service}
}

func (h *BannerHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, err, "Banners not found")
		return
	}
	httputil.RespondSuccess(w, banners)
}

func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to parse form", err)
		return
	}

	image, err := openSingleFile(r, "image")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}

	banner, err := h.service.Create(r.Context(), image)
	if err != nil {
		respondServiceError(w, err, "Banner not found")
		return
	}
	httputil.RespondCreated(w, banner)
}

func (h *BannerHandler) EditBanner(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to parse form", err)
		return
	}

	var isActive *bool
	if v := r.FormValue("isActive"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "isActive must be a boolean", err)
			return
		}
		isActive = &parsed
	}

	image, err := openSingleFile(r, "image")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}

	banner, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), isActive, image)
	if err != nil {
		respondServiceError(w, err, "Banner not found")
		return
	}
	httputil.RespondSuccess(w, banner)
}

func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err, "Banner not found")
		return
	}
	httputil.RespondSuccess(w, map[string]string{"message": "Banner deleted successfully"})
}
