// Package codec serializes the full application state to versioned
// export files and to the encrypted at-rest blob, and validates
// imported payloads before they reach the store.
package codec

import (
	"encoding/json"
	"time"

	"github.com/rezonia/invoice-ledger/internal/model"
)

// Version tags every export envelope
const Version = "1.0.0"

// Bundle is the full exported/imported payload.
type Bundle struct {
	Invoices []model.Invoice `json:"invoices"`
	Clients  []model.Client  `json:"clients"`
	Settings model.Settings  `json:"settings"`
}

// envelope is the outer file shape. For plaintext exports Data holds
// the bundle object; for encrypted exports it holds a JSON string with
// the ciphertext.
type envelope struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exportedAt"`
	Encrypted  bool            `json:"encrypted,omitempty"`
	Data       json.RawMessage `json:"data"`
}

// Export serializes the bundle as a plaintext envelope.
func Export(b Bundle) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(envelope{
		Version:    Version,
		ExportedAt: time.Now().UTC(),
		Data:       data,
	}, "", "  ")
}

// ExportEncrypted serializes the bundle, seals the whole inner envelope
// and wraps the ciphertext in an outer envelope marked encrypted. The
// inner envelope carries the redundant encrypted tag so a decrypted
// payload is self-describing.
func ExportEncrypted(b Bundle, s *Sealer) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inner, err := json.Marshal(envelope{
		Version:    Version,
		ExportedAt: now,
		Encrypted:  true,
		Data:       data,
	})
	if err != nil {
		return nil, err
	}

	sealed, err := s.Seal(inner)
	if err != nil {
		return nil, err
	}

	ciphertext, err := json.Marshal(sealed)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(envelope{
		Version:    Version,
		ExportedAt: now,
		Encrypted:  true,
		Data:       ciphertext,
	}, "", "  ")
}

// Import parses either envelope shape, decrypting when marked
// encrypted, and validates the payload. The returned bundle is only
// usable when err is nil; validation problems come back as a
// *model.ValidationErrors listing every issue.
func Import(blob []byte, s *Sealer) (Bundle, error) {
	var outer envelope
	if err := json.Unmarshal(blob, &outer); err != nil {
		return Bundle{}, model.NewParseError("Invalid file format.", err)
	}
	if outer.Version == "" || len(outer.Data) == 0 {
		return Bundle{}, model.NewParseError("Invalid file format.", nil)
	}

	data := outer.Data
	if outer.Encrypted {
		var ciphertext string
		if err := json.Unmarshal(outer.Data, &ciphertext); err != nil {
			return Bundle{}, model.NewParseError("Invalid file format.", err)
		}

		inner, err := s.Open(ciphertext)
		if err != nil {
			return Bundle{}, err
		}

		var innerEnv envelope
		if err := json.Unmarshal(inner, &innerEnv); err != nil {
			return Bundle{}, model.NewParseError("Invalid file format.", err)
		}
		if len(innerEnv.Data) == 0 {
			return Bundle{}, model.NewParseError("Invalid file format.", nil)
		}
		data = innerEnv.Data
	}

	payload, err := decodePayload(data)
	if err != nil {
		return Bundle{}, err
	}

	if verrs := ValidatePayload(payload); verrs.HasProblems() {
		return Bundle{}, verrs
	}

	return payload.toBundle(), nil
}
