package smtlib

type Option func(*Description)

// CheckSat requests a (check-sat) command in the footer.
func CheckSat(v bool) Option {
	return func(d *Description) { d.checkSat = v }
}

// GetModel requests a (get-model) command in the footer.
func GetModel(v bool) Option {
	return func(d *Description) { d.getModel = v }
}

// Balanced makes End and Check report unmatched sub-expressions.
func Balanced(v bool) Option {
	return func(d *Description) { d.balanced = v }
}

// Source records the tabular expression the description is built from.
func Source(s string) Option {
	return func(d *Description) { d.source = s }
}
