// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private validators and the render options snapshot.
//
// The file is in package matrix and ends in _test.go, so matrix_test can reach
// these names while production builds never see them.

// RenderOptionsSnapshot is a read-only view of the resolved render options.
type RenderOptionsSnapshot struct {
	Open, Close     string
	CellSep, RowSep string
	Verb            string
}

// GatherRenderOptionsSnapshot_TestOnly resolves opts the same way Format does.
func GatherRenderOptionsSnapshot_TestOnly(opts ...RenderOption) RenderOptionsSnapshot {
	o := gatherRenderOptions(opts...)

	return RenderOptionsSnapshot{
		Open:    o.open,
		Close:   o.close,
		CellSep: o.cellSep,
		RowSep:  o.rowSep,
		Verb:    o.verb,
	}
}

// ValidateRectInt_TestOnly forwards to validateRect for [][]int.
func ValidateRectInt_TestOnly(src [][]int) (int, int, error) {
	return validateRect(src)
}

// InRange_TestOnly forwards to inRange.
var InRange_TestOnly = inRange

// Panic message exports to avoid "magic strings" in tests.
const PanicVerbInvalid_TestOnly = panicVerbInvalid
