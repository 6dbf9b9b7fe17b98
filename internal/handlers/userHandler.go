package handlers

import (
	"encoding/json"
	"net/http"

	"luxemart/internal/models"
	"luxemart/internal/services"
	"luxemart/internal/utility"
	httputil "luxemart/internal/utility/http"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Role is never caller-settable over the wire.
	user.Role = models.RoleUser

	data, err := h.service.SignUp(r.Context(), user)
	if err != nil {
		respondServiceError(w, err, "User not found")
		return
	}
	httputil.RespondCreated(w, data)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Do not reveal whether the account exists.
		httputil.RespondError(w, http.StatusUnauthorized, "Email or password is incorrect", err)
		return
	}
	httputil.RespondSuccess(w, data)
}

func (h *UserHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, err := h.service.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, "Email or password is incorrect", err)
		return
	}
	httputil.RespondSuccess(w, map[string]string{"token": token})
}

// VerifyAdminToken lets admin frontends check a stored token without making
// a mutating call.
func (h *UserHandler) VerifyAdminToken(w http.ResponseWriter, r *http.Request) {
	tokenString := bearerToken(r)
	if tokenString == "" {
		httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	claims, errMsg := utility.ValidateAdminToken(tokenString)
	if errMsg != "" {
		httputil.RespondError(w, http.StatusUnauthorized, errMsg, nil)
		return
	}
	httputil.RespondSuccess(w, map[string]string{"email": claims.Email})
}
