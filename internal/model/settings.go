package model

import "github.com/shopspring/decimal"

// CompanyInfo is the issuing business identity printed on every invoice.
type CompanyInfo struct {
	Name          string `json:"name"`
	EIK           string `json:"eik,omitempty"`
	VATNumber     string `json:"vatNumber,omitempty"`
	Manager       string `json:"manager,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	IBAN          string `json:"iban,omitempty"`
	BIC           string `json:"bic,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	VATRegistered bool   `json:"vatRegistered"`
}

// InvoiceSettings controls numbering and invoice defaults.
// NextNumber is monotonically non-decreasing and is bumped exactly once
// per successfully created invoice.
type InvoiceSettings struct {
	Prefix         string          `json:"prefix"`
	NextNumber     int             `json:"nextNumber"`
	DefaultVATRate decimal.Decimal `json:"defaultVatRate"`
	Currency       string          `json:"currency"`
	Language       string          `json:"language"`
	ShowQRCode     bool            `json:"showQrCode"`
	ShowLegalText  bool            `json:"showLegalText"`
}

// Theme holds presentation color tokens. The engine only stores them.
type Theme struct {
	Primary    string `json:"primary,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Text       string `json:"text,omitempty"`
	Background string `json:"background,omitempty"`
}

// Settings is the persisted application configuration.
type Settings struct {
	Company CompanyInfo     `json:"company"`
	Invoice InvoiceSettings `json:"invoice"`
	Theme   Theme           `json:"theme"`
}

// DefaultSettings returns the factory configuration used for a fresh
// store and after a full data reset.
func DefaultSettings() Settings {
	return Settings{
		Company: CompanyInfo{
			Country:       "България",
			VATRegistered: true,
		},
		Invoice: InvoiceSettings{
			Prefix:         "INV",
			NextNumber:     1,
			DefaultVATRate: decimal.NewFromInt(20),
			Currency:       "EUR",
			Language:       "bg",
			ShowQRCode:     true,
			ShowLegalText:  true,
		},
		Theme: Theme{
			Primary:    "#1a365d",
			Accent:     "#2b6cb0",
			Text:       "#1a202c",
			Background: "#ffffff",
		},
	}
}
