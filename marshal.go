package huffpack

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON serializes the table as a flat object of single-character keys
// mapped to bitstrings, the codes.json shape of the legacy tool.
func (t CodeTable) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(t))
	for r, hc := range t {
		m[string(r)] = hc.String()
	}
	return json.Marshal(m)
}

// UnmarshalJSON parses the flat mapping form.  Multi-character keys, empty or
// non-binary bitstrings, and duplicate codes are a *CorruptTableError.
func (t *CodeTable) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	table := make(CodeTable, len(m))
	seen := make(map[Code]rune, len(m))
	for key, bits := range m {
		runes := []rune(key)
		if len(runes) != 1 {
			return &CorruptTableError{Reason: fmt.Sprintf("key %q is not a single symbol", key)}
		}
		hc, err := ParseCode(bits)
		if err != nil {
			return &CorruptTableError{Symbol: runes[0], Reason: err.Error()}
		}
		if prev, dup := seen[hc]; dup {
			return &CorruptTableError{Symbol: runes[0], Code: hc, Reason: fmt.Sprintf("duplicate of the code of %q", prev)}
		}
		seen[hc] = runes[0]
		table[runes[0]] = hc
	}
	*t = table
	return nil
}

// packageDocument is the serialized form of a Package, minus the packed
// bytes, which travel separately as an opaque blob.
type packageDocument struct {
	BitLength uint64    `json:"bit_length"`
	Codes     CodeTable `json:"codes"`
}

// MarshalJSON serializes the code table together with the explicit original
// bit length that the legacy format lacked.
func (p *Package) MarshalJSON() ([]byte, error) {
	return json.Marshal(packageDocument{BitLength: p.BitLength, Codes: p.Table})
}

// UnmarshalJSON accepts both the current document, {"bit_length": N,
// "codes": {...}}, and the legacy bare mapping.  A legacy document leaves
// BitLength at 0, which selects the compat decode mode.
func (p *Package) UnmarshalJSON(data []byte) error {
	var doc packageDocument
	if err := json.Unmarshal(data, &doc); err == nil && doc.Codes != nil {
		p.Table = doc.Codes
		p.BitLength = doc.BitLength
		return nil
	}

	var table CodeTable
	if err := json.Unmarshal(data, &table); err != nil {
		return err
	}
	p.Table = table
	p.BitLength = 0
	return nil
}
