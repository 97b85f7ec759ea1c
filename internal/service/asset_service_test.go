package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/assettrack/asset-track-api/internal/domain"
)

type fakeAssetRepo struct {
	inserted []struct {
		category    string
		input       domain.NewAssetInput
		qrCode      string
		barcode     string
		submittedBy string
	}
	insertErr error

	listCalls  []string
	listResult []domain.AssetRecord
	listErr    error

	historyByCategory map[string][]domain.HistoryEntry
	historyCalls      []string
	historyErr        error
}

func (f *fakeAssetRepo) Insert(ctx context.Context, category string, input domain.NewAssetInput, qrCode, barcode, submittedBy string) (*domain.AssetRecord, error) {
	f.inserted = append(f.inserted, struct {
		category    string
		input       domain.NewAssetInput
		qrCode      string
		barcode     string
		submittedBy string
	}{category: category, input: input, qrCode: qrCode, barcode: barcode, submittedBy: submittedBy})
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return &domain.AssetRecord{
		ID: int64(len(f.inserted)), Name: input.Name,
		SerialNumber: input.SerialNumber, EmployeeName: input.EmployeeName,
		QRCode: qrCode, Barcode: barcode, SubmittedBy: submittedBy,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}, nil
}

func (f *fakeAssetRepo) ListByCategory(ctx context.Context, category string) ([]domain.AssetRecord, error) {
	f.listCalls = append(f.listCalls, category)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.AssetRecord(nil), f.listResult...), nil
}

func (f *fakeAssetRepo) HistoryByCategory(ctx context.Context, category string) ([]domain.HistoryEntry, error) {
	f.historyCalls = append(f.historyCalls, category)
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return append([]domain.HistoryEntry(nil), f.historyByCategory[category]...), nil
}

type fakeCodeGenerator struct {
	qrInputs      []string
	barcodeInputs []string
	qrErr         error
	barcodeErr    error
}

func (f *fakeCodeGenerator) QRCode(text string) (string, error) {
	f.qrInputs = append(f.qrInputs, text)
	if f.qrErr != nil {
		return "", f.qrErr
	}
	return "qr:" + text, nil
}

func (f *fakeCodeGenerator) Barcode(text string) (string, error) {
	f.barcodeInputs = append(f.barcodeInputs, text)
	if f.barcodeErr != nil {
		return "", f.barcodeErr
	}
	return "bar:" + text, nil
}

func TestCreateAssetInvalidCategoryShortCircuits(t *testing.T) {
	repo := &fakeAssetRepo{}
	codes := &fakeCodeGenerator{}
	svc := NewAssetService(repo, codes)

	_, err := svc.Create(context.Background(), "bogus_table", domain.NewAssetInput{Name: "Laptop"}, "admin")
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if len(repo.inserted) != 0 || len(codes.qrInputs) != 0 {
		t.Fatal("invalid category must not reach generation or storage")
	}
}

func TestCreateAssetRequiresName(t *testing.T) {
	repo := &fakeAssetRepo{}
	svc := NewAssetService(repo, &fakeCodeGenerator{})

	_, err := svc.Create(context.Background(), "it_hardware", domain.NewAssetInput{Name: "   "}, "admin")
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("missing name must not reach storage")
	}
}

func TestCreateAssetGeneratesCodes(t *testing.T) {
	repo := &fakeAssetRepo{}
	codes := &fakeCodeGenerator{}
	svc := NewAssetService(repo, codes)

	serial := "SN-42"
	employee := "Alice"
	record, err := svc.Create(context.Background(), "it_hardware", domain.NewAssetInput{
		Name: "Laptop", SerialNumber: &serial, EmployeeName: &employee,
	}, "admin")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if codes.qrInputs[0] != "Laptop-it_hardware-SN-42-Alice" {
		t.Fatalf("unexpected qr composite %q", codes.qrInputs[0])
	}
	if codes.barcodeInputs[0] != "SN-42" {
		t.Fatalf("expected barcode to encode the serial, got %q", codes.barcodeInputs[0])
	}
	if record.SubmittedBy != "admin" {
		t.Fatalf("expected submitted_by from principal, got %q", record.SubmittedBy)
	}
	if repo.inserted[0].qrCode != "qr:Laptop-it_hardware-SN-42-Alice" {
		t.Fatalf("unexpected stored qr payload %q", repo.inserted[0].qrCode)
	}
}

func TestCreateAssetBarcodeFallsBackToName(t *testing.T) {
	codes := &fakeCodeGenerator{}
	svc := NewAssetService(&fakeAssetRepo{}, codes)

	if _, err := svc.Create(context.Background(), "tools", domain.NewAssetInput{Name: "Drill"}, "user1"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if codes.barcodeInputs[0] != "Drill" {
		t.Fatalf("expected barcode fallback to name, got %q", codes.barcodeInputs[0])
	}
}

func TestCreateAssetGenerationFailure(t *testing.T) {
	repo := &fakeAssetRepo{}
	codes := &fakeCodeGenerator{qrErr: errors.New("qr renderer down")}
	svc := NewAssetService(repo, codes)

	_, err := svc.Create(context.Background(), "vehicles", domain.NewAssetInput{Name: "Truck"}, "admin")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("generation failure must not persist a record")
	}
}

func TestListInvalidCategory(t *testing.T) {
	repo := &fakeAssetRepo{}
	svc := NewAssetService(repo, &fakeCodeGenerator{})

	_, err := svc.List(context.Background(), "users")
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if len(repo.listCalls) != 0 {
		t.Fatal("invalid category must not reach storage")
	}
}
