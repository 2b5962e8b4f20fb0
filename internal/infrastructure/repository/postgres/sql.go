package postgres

import (
	"database/sql"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
)

func isNotFound(err error) bool {
	return crerr.Is(err, sql.ErrNoRows)
}

// isBindParameterMismatch detects poolers that drop or rewrite bind parameters
// of unnamed statements between parse and execute.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bind message supplies") && strings.Contains(msg, "requires")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unnamed prepared statement does not exist") {
		return true
	}
	return strings.Contains(msg, "prepared statement") && strings.Contains(msg, "26000")
}

func shouldRetryWithArrayParam(err error) bool {
	return isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err)
}

func nullFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}

func floatPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}

func encodeFeatureSet(value playerstats.FeatureSet) (string, error) {
	if len(value) == 0 {
		return "{}", nil
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "", crerr.Wrap(err, "encode feature set")
	}
	return string(encoded), nil
}

func decodeFeatureSet(raw string) (playerstats.FeatureSet, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return playerstats.FeatureSet{}, nil
	}
	out := make(playerstats.FeatureSet)
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		return nil, crerr.Wrap(err, "decode feature set")
	}
	return out, nil
}

func encodeComponents(value map[string]float64) (string, error) {
	if len(value) == 0 {
		return "{}", nil
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "", crerr.Wrap(err, "encode score components")
	}
	return string(encoded), nil
}

func decodeComponents(raw string) (map[string]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return map[string]float64{}, nil
	}
	out := make(map[string]float64)
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		return nil, crerr.Wrap(err, "decode score components")
	}
	return out, nil
}
