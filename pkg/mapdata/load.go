package mapdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvID tolerates both string and numeric envId encodings, which both occur
// in exported color tables.
type EnvID int

// UnmarshalJSON implements json.Unmarshaler.
func (e *EnvID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("mapdata: bad envId %q: %w", s, err)
	}
	*e = EnvID(n)
	return nil
}

// LoadDataset reads the area records and environment color table from the
// given JSON files and builds the canonical index. Called once at startup;
// the result is read-only thereafter.
func LoadDataset(areasPath, colorsPath string) (*AreaIndex, error) {
	areasRaw, err := os.ReadFile(areasPath)
	if err != nil {
		return nil, fmt.Errorf("mapdata: reading areas: %w", err)
	}
	var records []AreaRecord
	if err := json.Unmarshal(areasRaw, &records); err != nil {
		return nil, fmt.Errorf("mapdata: parsing areas: %w", err)
	}

	colorsRaw, err := os.ReadFile(colorsPath)
	if err != nil {
		return nil, fmt.Errorf("mapdata: reading colors: %w", err)
	}
	var colors []EnvColor
	if err := json.Unmarshal(colorsRaw, &colors); err != nil {
		return nil, fmt.Errorf("mapdata: parsing colors: %w", err)
	}

	return NewAreaIndex(records, colors), nil
}
