package validation

// Field names match the form inputs they report on.
const (
	FieldAmount      = "amount"
	FieldType        = "type"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldCategory    = "categoryId"
	FieldWallet      = "walletId"
	FieldSource      = "sourceWalletId"
	FieldDestination = "destinationWalletId"
)

// FieldErrors maps a field name to its current error. A field either has
// an entry or is known-clean; errors are never silently dropped.
type FieldErrors map[string]error

// Add records err under field. A nil err is ignored; the first error per
// field wins so the earliest rule in document order is what the user sees.
func (fe FieldErrors) Add(field string, err error) {
	if err == nil {
		return
	}
	if _, ok := fe[field]; ok {
		return
	}
	fe[field] = err
}

func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Result is the outcome of validating a draft. RequiresConfirmation is set
// for future-dated drafts that pass all field rules: submission must wait
// for an explicit user confirmation, which is a workflow step rather than
// a validation failure.
type Result struct {
	Errors               FieldErrors
	RequiresConfirmation bool
}

func (r Result) Valid() bool {
	return r.Errors.Valid()
}
