package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"luxemart/internal/models"
	"luxemart/internal/services"
	httputil "luxemart/internal/utility/http"

	"github.com/go-chi/chi"
)

const maxUploadBytes = 10 << 20

type ProductHandler struct {
	service *services.ProductService
}

func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	size := r.URL.Query().Get("size")
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	products, err := h.service.List(r.Context(), size, limit)
	if err != nil {
		respondServiceError(w, err, "Products not found")
		return
	}
	httputil.RespondSuccess(w, products)
}

func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}
	httputil.RespondSuccess(w, product)
}

func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err, "Products not found")
		return
	}
	if len(products) == 0 {
		httputil.RespondEmptyResult(w, "No matching products found")
		return
	}
	httputil.RespondCount(w, len(products), products)
}

func (h *ProductHandler) GetProductsByTag(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ByTag(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err, "Products not found")
		return
	}
	if len(products) == 0 {
		httputil.RespondEmptyResult(w, "No products found for this tag")
		return
	}
	httputil.RespondCount(w, len(products), products)
}

func (h *ProductHandler) GetProductsByGroup(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ByGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, "Product group not found")
		return
	}
	httputil.RespondSuccess(w, view)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to parse form", err)
		return
	}

	var input models.ProductInput
	if err := json.Unmarshal([]byte(r.FormValue("data")), &input); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Failed to parse JSON data", err)
		return
	}

	images, err := openFormFiles(r, "images")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to read uploaded files", err)
		return
	}

	product, err := h.service.Create(r.Context(), callerUID(r), input, images)
	if err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}
	httputil.RespondCreated(w, product)
}

func (h *ProductHandler) EditProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to parse form", err)
		return
	}

	var upd models.ProductUpdate
	if data := r.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &upd); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Failed to parse JSON data", err)
			return
		}
	}

	images, err := openFormFiles(r, "images")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to read uploaded files", err)
		return
	}

	product, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), upd, images)
	if err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}
	httputil.RespondSuccess(w, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}
	httputil.RespondSuccess(w, map[string]string{"message": "Product deleted successfully"})
}

// openFormFiles opens every uploaded file under the given field, order
// preserved. The files are closed when the request body is, via the
// multipart form's cleanup.
func openFormFiles(r *http.Request, field string) ([]io.Reader, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	readers := make([]io.Reader, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		readers = append(readers, f)
	}
	return readers, nil
}
