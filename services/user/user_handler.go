package userservice

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"sundayschool/utils"
)

type UserHandler struct {
	Service  UserService
	validate *validator.Validate
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{
		Service:  service,
		validate: utils.NewValidator(),
	}
}

func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user input")
		return
	}

	userID, err := h.Service.RegisterUser(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			utils.RespondError(w, http.StatusConflict, err, "email already registered")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to register user")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user_id": userID,
	})
}

func (h *UserHandler) GetUsersWithFilters(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	filter := UserFilter{
		SearchText:   search,
		IsSearchText: search != "",
	}
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)

	users, err := h.Service.GetUsersWithFilters(r.Context(), filter)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch users")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}

	err = h.Service.DeleteUser(r.Context(), userID)
	switch {
	case errors.Is(err, ErrUserNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "user not found")
	case errors.Is(err, ErrUserHoldsAsset):
		utils.RespondError(w, http.StatusConflict, err, err.Error())
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to delete user")
	default:
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "user deleted successfully"})
	}
}
