package database

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"modernc.org/sqlite"
)

// SQLite's built-in LOWER only folds ASCII.  Name search lowers both the
// column and the pattern, so every SQLite connection gets a LOWER that
// folds the way MySQL's utf8mb4 LOWER does.
func init() {
	if err := sqlite.RegisterDeterministicScalarFunction("lower", 1, unicodeLower); err != nil {
		panic(fmt.Sprintf("database: registering lower: %v", err))
	}
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		// numbers are lowered as their text form, like the built-in
		return strings.ToLower(fmt.Sprint(v)), nil
	}
}
