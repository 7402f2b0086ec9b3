// Package fincalc provides the deterministic financial calculators used
// by the assistant's tools: Brazilian income tax, compound and simple
// interest, and percentage operations.
//
// All functions are pure and side-effect free. They share no mutable
// state and are safe to call concurrently without coordination. Values
// are constructed per call and never persisted.
package fincalc

import "errors"

// ErrInvalidInput is returned when a numeric input is missing, negative
// where disallowed, or not a finite number.
//
// Check with errors.Is:
//
//	if errors.Is(err, fincalc.ErrInvalidInput) { ... }
var ErrInvalidInput = errors.New("invalid input")

// ErrDivisionByZero is returned when a percentage operation would divide
// by a zero operand.
var ErrDivisionByZero = errors.New("division by zero")
