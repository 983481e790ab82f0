// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"fmt"
)

// Error is the error type returned by Evaluate and by multiset accessors
// when an evaluation error occurs.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	// InternalErr represents an unknown evaluation error.
	InternalErr string = "eval_internal_error"

	// CancelErr indicates the evaluation was cancelled.
	CancelErr string = "eval_cancel_error"

	// UnboundVariableErr indicates a solution row was indexed for a variable
	// that is not bound in that row. Callers treat this as "value unknown";
	// it never crosses an operator boundary as a query-fatal error.
	UnboundVariableErr string = "eval_unbound_variable_error"

	// ExpressionErr indicates an expression could not be evaluated for a
	// row: a type mismatch, an unbound operand, a divide by zero. Operators
	// absorb these per the assignment and filter policies; they are never
	// propagated to the caller of the operator.
	ExpressionErr string = "eval_expression_error"
)

// IsError returns true if the err is an Error.
func IsError(err error) bool {
	_, ok := err.(*Error)
	return ok
}

// IsCancel returns true if the error was caused by cancellation.
func IsCancel(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code == CancelErr
}

// IsUnboundVariable returns true if the error reports an unbound variable
// lookup.
func IsUnboundVariable(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code == UnboundVariableErr
}

// IsExpressionError returns true if the error was raised by expression
// evaluation.
func IsExpressionError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code == ExpressionErr
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Code, e.Message)
}

func cancelErr() error {
	return &Error{
		Code:    CancelErr,
		Message: "caller cancelled query execution",
	}
}

func unboundVariableErr(name string) error {
	return &Error{
		Code:    UnboundVariableErr,
		Message: fmt.Sprintf("variable %v is not bound in this solution", name),
	}
}

// ExpressionError returns an expression evaluation error. Expression
// evaluator implementations use this to report per-row failures; the
// assignment and filter operators treat every such failure uniformly.
func ExpressionError(f string, a ...any) error {
	return &Error{
		Code:    ExpressionErr,
		Message: fmt.Sprintf(f, a...),
	}
}

func internalErr(f string, a ...any) error {
	return &Error{
		Code:    InternalErr,
		Message: fmt.Sprintf(f, a...),
	}
}
