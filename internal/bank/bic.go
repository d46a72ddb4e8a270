// Package bank derives bank identifiers from IBANs.
package bank

import "strings"

// bicTable maps country code -> bank code -> BIC for banks commonly
// seen on Bulgarian invoices.
var bicTable = map[string]map[string]string{
	"BG": {
		"UNCR": "UNCRBGSF", // УниКредит Булбанк
		"STSA": "STSABGSF", // Банка ДСК
		"UBBS": "UBBSBGSF", // ОББ
		"RZBB": "RZBBBGSF", // Райфайзенбанк
		"BPBI": "BPBIBGSF", // Пощенска банка
		"FINV": "FINVBGSF", // ПИБ
		"CECB": "CECBBGSF", // ЦКБ
		"IORT": "IORTBGSF", // Инвестбанк
		"BUIN": "BUINBGSF", // Алианц Банк
		"PRCB": "PRCBBGSF", // ПроКредит Банк
		"DEMI": "DEMIBGSF", // Търговска банка Д
		"IABG": "IABGBGSF", // Интернешънъл Асет Банк
		"TEXI": "TEXIBGSF", // Тексим Банк
		"BGUS": "BGUSBGSF", // Общинска банка
		"TTBB": "TTBBBG22", // Банка ДСК (бивша SG Експресбанк)
	},
	"DE": {
		"DEUT": "DEUTDEFF",
		"COBA": "COBADEFF",
	},
	"RO": {
		"BTRL": "BTRLRO22",
		"RNCB": "RNCBROBU",
	},
}

// BICFromIBAN derives a BIC from an IBAN. The country code is the first
// two characters, the bank code is characters 4-7. Unknown bank codes
// synthesize "<bankCode><countryCode>SF". IBANs shorter than 8
// characters yield "".
func BICFromIBAN(iban string) string {
	iban = strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	if len(iban) < 8 {
		return ""
	}

	country := iban[0:2]
	bankCode := iban[4:8]

	if banks, ok := bicTable[country]; ok {
		if bic, ok := banks[bankCode]; ok {
			return bic
		}
	}

	return bankCode + country + "SF"
}
