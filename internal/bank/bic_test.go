package bank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/invoice-ledger/internal/bank"
)

func TestBICFromIBAN(t *testing.T) {
	tests := []struct {
		name     string
		iban     string
		expected string
	}{
		{"unicredit bulbank", "BG80UNCR70001522734456", "UNCRBGSF"},
		{"dsk bank", "BG26STSA93000021741155", "STSABGSF"},
		{"ubb", "BG18UBBS80021027593150", "UBBSBGSF"},
		{"lowercase input", "bg80uncr70001522734456", "UNCRBGSF"},
		{"spaces stripped", "BG80 UNCR 7000 1522 7344 56", "UNCRBGSF"},
		{"unknown bank synthesized", "BG00ABCD12345678901234", "ABCDBGSF"},
		{"unknown country synthesized", "FR7630006000011234567890189", "3000FRSF"},
		{"too short", "BG80UNC", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bank.BICFromIBAN(tt.iban))
		})
	}
}
