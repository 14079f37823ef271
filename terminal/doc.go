// Package terminal owns the raw-mode terminal surface for the clock.
//
// Features:
//   - Raw input mode with hidden cursor via tcell
//   - Size queries reflecting live terminal resizes
//   - Single-flush frame painting to avoid partial-frame flicker
//   - Clean terminal restoration on exit/panic
package terminal
