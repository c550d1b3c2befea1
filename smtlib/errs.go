package smtlib

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedOperator = errors.New("unsupported operator")
	ErrUnknownVariable     = errors.New("unknown variable")
	ErrTranslation         = errors.New("translation error")
	ErrUnbalanced          = errors.New("unbalanced expression")
	ErrDuplicateVariable   = errors.New("duplicate variable")
	ErrBadSort             = errors.New("bad sort")
	ErrEmptyName           = errors.New("empty variable name")
)

type UnsupportedOperatorError struct {
	Token string
}

func (e *UnsupportedOperatorError) Unwrap() error {
	return ErrUnsupportedOperator
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("%s: %q could not be processed in the tabular expression", ErrUnsupportedOperator, e.Token)
}

type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Unwrap() error {
	return ErrUnknownVariable
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("%s: %q was not declared", ErrUnknownVariable, e.Name)
}

// TranslationError reports a construct that could not be written, such as a
// quantifier binding an undeclared variable. It matches both ErrTranslation
// and its cause under errors.Is.
type TranslationError struct {
	Token string
	Var   string
	Err   error
}

func (e *TranslationError) Unwrap() []error {
	return []error{ErrTranslation, e.Err}
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s: cannot bind %q under %q: %v", ErrTranslation, e.Var, e.Token, e.Err)
}

// UnbalancedError is only produced by descriptions built with Balanced(true).
type UnbalancedError struct {
	// Depth is the number of open sub-expressions; negative for an
	// End without a matching start.
	Depth int
}

func (e *UnbalancedError) Unwrap() error {
	return ErrUnbalanced
}

func (e *UnbalancedError) Error() string {
	if e.Depth < 0 {
		return ErrUnbalanced.Error() + ": end without matching start"
	}
	return fmt.Sprintf("%s: %d unclosed sub-expression(s)", ErrUnbalanced, e.Depth)
}
