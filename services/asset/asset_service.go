package assetservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sundayschool/models"
	"sundayschool/providers"
	assetrepo "sundayschool/repository/asset"
	reportservice "sundayschool/services/report"
)

type ReportExporter interface {
	Export(ctx context.Context, assets []models.Asset) (reportservice.ExportResult, error)
}

type AssetService interface {
	CreateAsset(ctx context.Context, req models.CreateAssetReq) (models.Asset, error)
	GetAsset(ctx context.Context, assetID uuid.UUID) (models.Asset, error)
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, assetID uuid.UUID, req models.UpdateAssetReq) (models.Asset, error)
	AssignAsset(ctx context.Context, assetID, userID uuid.UUID) error
	UnassignAsset(ctx context.Context, assetID uuid.UUID) error
	DeleteAsset(ctx context.Context, assetID uuid.UUID) error
	ExportAssets(ctx context.Context, filter models.AssetFilter) (reportservice.ExportResult, error)
}

type assetService struct {
	repo     assetrepo.AssetRepository
	exporter ReportExporter
	logger   providers.ZapLoggerProvider
}

func NewAssetService(repo assetrepo.AssetRepository, exporter ReportExporter, logger providers.ZapLoggerProvider) AssetService {
	return &assetService{repo: repo, exporter: exporter, logger: logger}
}

func (s *assetService) CreateAsset(ctx context.Context, req models.CreateAssetReq) (models.Asset, error) {
	assetID, err := s.repo.CreateAsset(ctx, req)
	if err != nil {
		return models.Asset{}, fmt.Errorf("failed to add asset: %w", err)
	}
	s.logger.GetLogger().Info("asset created", zap.String("asset_id", assetID.String()), zap.String("code", req.Code))
	return s.repo.GetAssetByID(ctx, assetID)
}

func (s *assetService) GetAsset(ctx context.Context, assetID uuid.UUID) (models.Asset, error) {
	return s.repo.GetAssetByID(ctx, assetID)
}

func (s *assetService) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	return s.repo.ListAssets(ctx, filter)
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID uuid.UUID, req models.UpdateAssetReq) (models.Asset, error) {
	if err := s.repo.UpdateAsset(ctx, assetID, req); err != nil {
		return models.Asset{}, fmt.Errorf("failed to update asset: %w", err)
	}
	return s.repo.GetAssetByID(ctx, assetID)
}

func (s *assetService) AssignAsset(ctx context.Context, assetID, userID uuid.UUID) error {
	if err := s.repo.AssignAsset(ctx, assetID, userID); err != nil {
		return fmt.Errorf("failed to assign asset: %w", err)
	}
	s.logger.GetLogger().Info("asset assigned", zap.String("asset_id", assetID.String()), zap.String("user_id", userID.String()))
	return nil
}

func (s *assetService) UnassignAsset(ctx context.Context, assetID uuid.UUID) error {
	if err := s.repo.UnassignAsset(ctx, assetID); err != nil {
		return fmt.Errorf("failed to unassign asset: %w", err)
	}
	return nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID uuid.UUID) error {
	if err := s.repo.DeleteAsset(ctx, assetID); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

// ExportAssets exports every asset matching the filter; paging is ignored so the
// workbook always covers the whole filtered list.
func (s *assetService) ExportAssets(ctx context.Context, filter models.AssetFilter) (reportservice.ExportResult, error) {
	filter.Limit, filter.Offset = 0, 0

	assets, err := s.repo.ListAssets(ctx, filter)
	if err != nil {
		s.logger.GetLogger().Error("failed to load assets for export", zap.Error(err))
		return reportservice.ExportResult{}, fmt.Errorf("failed to load assets: %w", err)
	}

	result, err := s.exporter.Export(ctx, assets)
	if err != nil {
		s.logger.GetLogger().Error("asset export failed", zap.Int("assets", len(assets)), zap.Error(err))
		return reportservice.ExportResult{}, fmt.Errorf("failed to export assets: %w", err)
	}
	return result, nil
}
