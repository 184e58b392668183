// Package errors provides the structured error type used across rpg-deck.
//
// An Error carries a Code, a message and optional meta about the slot, card
// or sheet involved. It wraps its cause, so the standard errors.Is and
// errors.As chain keeps working, and errors.Is matches on code alone.
//
// # Deck Errors
//
//	errors.SlotOutOfRange(20, 20)        // OUT_OF_RANGE, meta slot/size
//	errors.SlotLocked(1, "subclass")     // FAILED_PRECONDITION, meta slot/label
//	errors.CardNotFound("class-warrior") // NOT_FOUND, meta card_id
//	errors.SheetNotFound("sheet_1")      // NOT_FOUND, meta sheet_id
//
// Wrap keeps the code and meta of a wrapped *Error and turns anything else
// into Internal:
//
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to load sheet %s", scope)
//	}
//
// # Config Validation
//
//	vb := errors.NewValidationBuilder()
//	if c.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	return vb.Build()
//
// # Exit Codes
//
// The deck CLI exits with Code.ExitCode of the returned error.
//
// Focus persistence on the interaction path is best effort: orchestrators log
// storage failures with slog and keep going instead of returning them.
package errors
