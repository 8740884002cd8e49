package assethandler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"sundayschool/models"
	assetrepo "sundayschool/repository/asset"
	assetservice "sundayschool/services/asset"
	reportservice "sundayschool/services/report"
	"sundayschool/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AssetHandler struct {
	Service   assetservice.AssetService
	ReportDir string
	validate  *validator.Validate
	now       func() time.Time
}

func NewAssetHandler(service assetservice.AssetService, reportDir string) *AssetHandler {
	return &AssetHandler{
		Service:   service,
		ReportDir: reportDir,
		validate:  utils.NewValidator(),
		now:       time.Now,
	}
}

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset input")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	if err := utils.AssetValidityCheck(req, h.now()); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return
	}

	asset, err := h.Service.CreateAsset(r.Context(), req)
	if err != nil {
		respondAssetError(w, err, "failed to add asset")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "asset created successfully",
		"asset":   asset,
	})
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID, ok := assetIDParam(w, r)
	if !ok {
		return
	}

	asset, err := h.Service.GetAsset(r.Context(), assetID)
	if err != nil {
		respondAssetError(w, err, "failed to fetch asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"asset": asset})
}

func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	filter := parseAssetFilter(r)
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)

	assets, err := h.Service.ListAssets(r.Context(), filter)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch records")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID, ok := assetIDParam(w, r)
	if !ok {
		return
	}

	var req models.UpdateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	// warranty and purchase dates are checked against each other, so load whichever the
	// request does not carry
	var current models.Asset
	if req.PurchaseDate != nil || req.WarrantyExpiry != nil {
		stored, err := h.Service.GetAsset(r.Context(), assetID)
		if err != nil {
			respondAssetError(w, err, "failed to update asset")
			return
		}
		current = stored
	}
	if err := utils.AssetUpdateValidityCheck(req, current, h.now()); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return
	}

	asset, err := h.Service.UpdateAsset(r.Context(), assetID, req)
	if err != nil {
		respondAssetError(w, err, "failed to update asset")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "asset updated successfully",
		"asset":   asset,
	})
}

func (h *AssetHandler) AssignAsset(w http.ResponseWriter, r *http.Request) {
	assetID, ok := assetIDParam(w, r)
	if !ok {
		return
	}

	var req models.AssetAssignReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "user id is required")
		return
	}

	if err := h.Service.AssignAsset(r.Context(), assetID, req.UserID); err != nil {
		respondAssetError(w, err, "failed to assign asset")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "asset assigned successfully",
		"asset_id": assetID,
		"user_id":  req.UserID,
	})
}

func (h *AssetHandler) UnassignAsset(w http.ResponseWriter, r *http.Request) {
	assetID, ok := assetIDParam(w, r)
	if !ok {
		return
	}

	if err := h.Service.UnassignAsset(r.Context(), assetID); err != nil {
		respondAssetError(w, err, "failed to unassign asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "asset unassigned successfully"})
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID, ok := assetIDParam(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteAsset(r.Context(), assetID); err != nil {
		respondAssetError(w, err, "failed to delete asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "asset deleted successfully"})
}

// ExportAssets reports exactly one outcome: the success body or the single failure message.
func (h *AssetHandler) ExportAssets(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.ExportAssets(r.Context(), parseAssetFilter(r))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, reportservice.ExportFailedMessage)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   result.Message(),
		"file_name": result.FileName,
		"count":     result.Count,
	})
}

func (h *AssetHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	fileName := chi.URLParam(r, "fileName")
	if !isReportFileName(fileName) {
		utils.RespondError(w, http.StatusBadRequest, nil, "invalid report name")
		return
	}

	file, err := os.Open(filepath.Join(h.ReportDir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			utils.RespondError(w, http.StatusNotFound, nil, "report not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to open report")
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to open report")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	http.ServeContent(w, r, fileName, info.ModTime(), file)
}

func isReportFileName(name string) bool {
	return name != "" &&
		name == filepath.Base(name) &&
		!strings.HasPrefix(name, ".") &&
		!strings.ContainsAny(name, `/\"`) &&
		strings.EqualFold(filepath.Ext(name), ".xlsx")
}

func parseAssetFilter(r *http.Request) models.AssetFilter {
	query := r.URL.Query()

	var filter models.AssetFilter
	filter.SearchText = strings.TrimSpace(query.Get("search"))
	filter.IsSearchText = filter.SearchText != ""
	filter.Status = splitList(query.Get("status"))
	filter.Condition = splitList(query.Get("condition"))
	filter.Category = splitList(query.Get("category"))
	return filter
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func assetIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return uuid.Nil, false
	}
	return assetID, true
}

func respondAssetError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, assetrepo.ErrAssetNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "asset not found")
	case errors.Is(err, assetrepo.ErrUserNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "user not found")
	case errors.Is(err, assetrepo.ErrAssetAlreadyAssigned):
		utils.RespondError(w, http.StatusConflict, err, "asset already assigned")
	case errors.Is(err, assetrepo.ErrAssetNotAssigned):
		utils.RespondError(w, http.StatusConflict, err, "asset is not assigned")
	case errors.Is(err, assetrepo.ErrAssetInUse):
		utils.RespondError(w, http.StatusConflict, err, "asset currently assigned to a user")
	case errors.Is(err, assetrepo.ErrAssetRetired):
		utils.RespondError(w, http.StatusConflict, err, "asset is retired")
	case errors.Is(err, assetrepo.ErrDuplicateAssetCode):
		utils.RespondError(w, http.StatusConflict, err, "asset code already in use")
	default:
		utils.RespondError(w, http.StatusInternalServerError, err, fallback)
	}
}
