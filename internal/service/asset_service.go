package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/assettrack/asset-track-api/internal/domain"
	"github.com/assettrack/asset-track-api/internal/repository/ports"
)

// CodeGenerator produces the QR and barcode image payloads attached to
// every asset record. Both return encoded data URIs.
type CodeGenerator interface {
	QRCode(text string) (string, error)
	Barcode(text string) (string, error)
}

type AssetService struct {
	assets ports.AssetRepository
	codes  CodeGenerator
}

func NewAssetService(assets ports.AssetRepository, codes CodeGenerator) *AssetService {
	return &AssetService{assets: assets, codes: codes}
}

// Create validates the category and name before anything touches storage,
// generates both code images, and persists the record. The submitter is
// always the authenticated principal's username, never request input.
func (s *AssetService) Create(ctx context.Context, category string, input domain.NewAssetInput, submittedBy string) (*domain.AssetRecord, error) {
	if !domain.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	qr, err := s.codes.QRCode(qrComposite(category, input))
	if err != nil {
		log.Printf("qr generation for category %q failed: %v", category, err)
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	barcodeText := input.Name
	if input.SerialNumber != nil && *input.SerialNumber != "" {
		barcodeText = *input.SerialNumber
	}
	barcode, err := s.codes.Barcode(barcodeText)
	if err != nil {
		log.Printf("barcode generation for category %q failed: %v", category, err)
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return s.assets.Insert(ctx, category, input, qr, barcode, submittedBy)
}

func (s *AssetService) List(ctx context.Context, category string) ([]domain.AssetRecord, error) {
	if !domain.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return s.assets.ListByCategory(ctx, category)
}

// qrComposite mirrors the payload the deployed scanners already expect:
// name-category-serial-employee, with empty optionals left blank.
func qrComposite(category string, input domain.NewAssetInput) string {
	serial := ""
	if input.SerialNumber != nil {
		serial = *input.SerialNumber
	}
	employee := ""
	if input.EmployeeName != nil {
		employee = *input.EmployeeName
	}
	return fmt.Sprintf("%s-%s-%s-%s", input.Name, category, serial, employee)
}
