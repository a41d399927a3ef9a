package fixture

import "errors"

// Sentinel errors for fixture records
var (
	ErrColumnCount = errors.New("wrong number of columns")
)
