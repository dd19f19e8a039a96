package sqlite

import (
	"database/sql/driver"
	"strings"

	moderncsqlite "modernc.org/sqlite"
)

func init() {
	moderncsqlite.MustRegisterDeterministicScalarFunction("casefold", 1, casefold)
}

// casefold lowers text with Unicode rules. SQLite's LIKE and lower() only fold
// ASCII, so search compares casefold(column) against an already lowered
// pattern to match the postgres driver's ILIKE.
func casefold(_ *moderncsqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}
