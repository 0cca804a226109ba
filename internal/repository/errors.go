// Package repository holds the raw SQL access layer. Sentinel errors
// defined here let the service layer distinguish failure scenarios
// without inspecting SQL details.
package repository

import "errors"

// ErrNoVehicleAvailable is returned when no vehicle of the requested
// category is free at the branch for the requested date range.
var ErrNoVehicleAvailable = errors.New("no vehicle available")
