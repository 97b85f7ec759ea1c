package domain

import "time"

// AssetRecord is a row in one of the category tables. All category tables
// share this shape. QRCode and Barcode hold generated PNG data URIs.
type AssetRecord struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	SerialNumber *string   `db:"serial_number" json:"serial_number,omitempty"`
	EmployeeName *string   `db:"employee_name" json:"employee_name,omitempty"`
	QRCode       string    `db:"qr_code" json:"qr_code"`
	Barcode      string    `db:"barcode" json:"barcode"`
	SubmittedBy  string    `db:"submitted_by" json:"submitted_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// NewAssetInput carries the client-supplied fields of a create request.
// SubmittedBy is never part of it; the caller's principal supplies that.
type NewAssetInput struct {
	Name         string  `json:"name"`
	SerialNumber *string `json:"serial_number,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

// HistoryEntry is an asset row tagged with the category it came from,
// restricted to the columns the merged history exposes.
type HistoryEntry struct {
	ID           int64     `db:"id" json:"id"`
	Category     string    `db:"-" json:"category"`
	Name         string    `db:"name" json:"name"`
	SerialNumber *string   `db:"serial_number" json:"serial_number,omitempty"`
	EmployeeName *string   `db:"employee_name" json:"employee_name,omitempty"`
	SubmittedBy  string    `db:"submitted_by" json:"submitted_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
