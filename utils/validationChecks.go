package utils

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"sundayschool/models"
)

// NewValidator returns a validator that understands decimal amounts, so tags such as
// gte=0 work on prices.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// AssetValidityCheck covers the date rules struct tags cannot express.
func AssetValidityCheck(req models.CreateAssetReq, now time.Time) error {
	if strings.TrimSpace(req.Code) == "" {
		return errors.New("asset code is required")
	}

	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}

	if req.PurchaseDate != nil && req.PurchaseDate.After(now) {
		return errors.New("purchase date cannot be in the future")
	}

	if req.PurchaseDate != nil && req.WarrantyExpiry != nil && req.WarrantyExpiry.Before(*req.PurchaseDate) {
		return errors.New("warranty expiry cannot be before the purchase date")
	}

	if req.LastMaintenanceDate != nil && req.LastMaintenanceDate.After(now) {
		return errors.New("last maintenance date cannot be in the future")
	}
	return nil
}

// AssetUpdateValidityCheck applies the create rules to a partial update. Dates the request
// leaves out are read from current, so a new warranty expiry is still checked against the
// stored purchase date.
func AssetUpdateValidityCheck(req models.UpdateAssetReq, current models.Asset, now time.Time) error {
	if req.Code != nil && strings.TrimSpace(*req.Code) == "" {
		return errors.New("asset code is required")
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return errors.New("name is required")
	}

	if req.PurchaseDate != nil && req.PurchaseDate.After(now) {
		return errors.New("purchase date cannot be in the future")
	}

	purchase, warranty := current.PurchaseDate, current.WarrantyExpiry
	if req.PurchaseDate != nil {
		purchase = req.PurchaseDate
	}
	if req.WarrantyExpiry != nil {
		warranty = req.WarrantyExpiry
	}
	if (req.PurchaseDate != nil || req.WarrantyExpiry != nil) &&
		purchase != nil && warranty != nil && warranty.Before(*purchase) {
		return errors.New("warranty expiry cannot be before the purchase date")
	}

	if req.LastMaintenanceDate != nil && req.LastMaintenanceDate.After(now) {
		return errors.New("last maintenance date cannot be in the future")
	}
	return nil
}
