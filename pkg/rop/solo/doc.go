// Package solo contains single-value railway helpers built on rop.Result.
// They never touch the env or writer of their input except to carry them
// forward, so they compose freely with rop.Bind and rop.Map.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validations producing failures
// - Switch/Try: move from Result[In] to Result[Out]
// - DoubleMap: transform successful values and observe errors
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
