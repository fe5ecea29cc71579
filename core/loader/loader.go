// Package loader reads tariff rule databases from disk. It is the
// only place rules are validated: a malformed record is dropped with
// a warning and the remaining rules still load, so one bad extraction
// never takes down the whole tariff. Loaded databases are immutable.
//
// Two formats are supported, chosen by file extension: the extractor's
// JSON output and hand-authored HCL rule files.
package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"port-tariff/core/condition"
	"port-tariff/core/types"
	"port-tariff/internal/errors"
	"port-tariff/internal/logging"
)

const (
	defaultVersion  = "2025"
	defaultPortName = "Port of Gothenburg"
)

// Load reads a rule database from path, dispatching on extension
func Load(path string) (*types.TariffDatabase, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".hcl":
		return LoadHCL(path)
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported rule file format: %s", path)
	}
}

// rawDatabase defers rule decoding so one malformed record does not
// abort the whole file
type rawDatabase struct {
	Version  string            `json:"version"`
	PortName string            `json:"port_name"`
	Rules    []json.RawMessage `json:"rules"`
}

// LoadJSON reads the extractor's JSON rule database
func LoadJSON(path string) (*types.TariffDatabase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("tariff rule file", path)
		}
		return nil, errors.Wrap(errors.TypeConfig, "reading tariff rule file", err)
	}

	var raw rawDatabase
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Parsing("decoding tariff rule file", err)
	}

	db := &types.TariffDatabase{
		Version:  raw.Version,
		PortName: raw.PortName,
	}
	if db.Version == "" {
		db.Version = defaultVersion
	}
	if db.PortName == "" {
		db.PortName = defaultPortName
	}

	for i, msg := range raw.Rules {
		var rule types.TariffRule
		if err := json.Unmarshal(msg, &rule); err != nil {
			logging.Warn("dropping malformed tariff rule",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		if err := ValidateRule(&rule); err != nil {
			logging.Warn("dropping invalid tariff rule",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		db.Rules = append(db.Rules, rule)
	}

	normalize(db)

	logging.Info("loaded tariff rules",
		zap.String("path", path),
		zap.String("port", db.PortName),
		zap.String("version", db.Version),
		zap.Int("rules", len(db.Rules)))
	return db, nil
}

// normalize stamps canonical operator and field tags on every
// condition so evaluation never re-matches synonym strings
func normalize(db *types.TariffDatabase) {
	for i := range db.Rules {
		condition.Normalize(&db.Rules[i])
	}
}
