package utils

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 25
	maxPageLimit     = 100
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(response)
}

type errorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

// RespondError writes one user-facing message; the underlying cause is only logged.
func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		zap.L().Warn(message, zap.Int("status", statusCode), zap.Error(err))
	}
	RespondJSON(w, statusCode, errorResponse{Error: message, StatusCode: statusCode})
}

// GetPageLimitAndOffset reads ?page= (1-based) and ?limit= with sane bounds.
func GetPageLimitAndOffset(r *http.Request) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
