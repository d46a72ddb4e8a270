// Package i18n translates the fixed vocabulary of invoice labels
// between Bulgarian and English. Unknown terms pass through unchanged.
package i18n

// Locale identifies one of the two supported label languages
type Locale string

const (
	LocaleBG Locale = "bg"
	LocaleEN Locale = "en"
)

var bgToEN = map[string]string{
	"Фактура":             "Invoice",
	"Проформа фактура":    "Proforma Invoice",
	"Номер":               "Number",
	"Дата на издаване":    "Issue Date",
	"Падеж":               "Due Date",
	"Получател":           "Bill To",
	"Доставчик":           "Supplier",
	"Описание":            "Description",
	"Количество":          "Quantity",
	"Ед. цена":            "Unit Price",
	"Мярка":               "Unit",
	"Сума":                "Amount",
	"Междинна сума":       "Subtotal",
	"Отстъпка":            "Discount",
	"Данъчна основа":      "Taxable Amount",
	"ДДС":                 "VAT",
	"Обща сума":           "Total",
	"Словом":              "In Words",
	"Начин на плащане":    "Payment Method",
	"Банков превод":       "Bank Transfer",
	"В брой":              "Cash",
	"Основание на сделка": "Transaction Basis",
	"Място на сделка":     "Place of Transaction",
	"Съставил":            "Issued By",
	"ЕИК":                 "Company ID",
	"ДДС номер":           "VAT Number",
	"Банка":               "Bank",
	"Бележки":             "Notes",
	"Условия":             "Terms",
}

var enToBG = invert(bgToEN)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Translate maps a label into the target locale. Terms without a
// mapping, and unknown locales, fall through to the original string.
func Translate(term string, to Locale) string {
	var table map[string]string
	switch to {
	case LocaleEN:
		table = bgToEN
	case LocaleBG:
		table = enToBG
	default:
		return term
	}

	if mapped, ok := table[term]; ok {
		return mapped
	}
	return term
}
