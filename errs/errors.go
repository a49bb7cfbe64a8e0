// Package errs declares the sentinel errors returned by helpfmt. Every error is an *i18n.TrError:
// compare with errors.Is and attach details with WithArgs.
package errs

import (
	"github.com/napalu/helpfmt/i18n"
	"github.com/napalu/helpfmt/types"
)

var (
	ErrUnknownLabelKey  = i18n.NewError(types.ErrUnknownLabelKeyKey)
	ErrCycleDetected    = i18n.NewError(types.ErrCycleDetectedKey)
	ErrNilCommand       = i18n.NewError(types.ErrNilCommandKey)
	ErrNilOption        = i18n.NewError(types.ErrNilOptionKey)
	ErrOptionNotFound   = i18n.NewError(types.ErrOptionNotFoundKey)
	ErrOptionOwned      = i18n.NewError(types.ErrOptionOwnedKey)
	ErrCommandOwned     = i18n.NewError(types.ErrCommandOwnedKey)
	ErrInvalidTreeFile  = i18n.NewError(types.ErrInvalidTreeFileKey)
	ErrInvalidLabelSpec = i18n.NewError(types.ErrInvalidLabelSpecKey)
	ErrUnknownMode      = i18n.NewError(types.ErrUnknownModeKey)
	ErrWriteFailed      = i18n.NewError(types.ErrWriteFailedKey)
)
