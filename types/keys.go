// Package types provides common type definitions for the helpfmt library.
// This file contains constants for all translation keys used throughout the library.
package types

// Prefix for all helpfmt translation keys
const (
	PrefixKey = "helpfmt"
)

// Error prefixes
const (
	ErrorPrefixKey = PrefixKey + ".error"
)

// Error keys
const (
	ErrUnknownLabelKeyKey  = ErrorPrefixKey + ".unknown_label_key"
	ErrCycleDetectedKey    = ErrorPrefixKey + ".cycle_detected"
	ErrNilCommandKey       = ErrorPrefixKey + ".nil_command"
	ErrNilOptionKey        = ErrorPrefixKey + ".nil_option"
	ErrOptionNotFoundKey   = ErrorPrefixKey + ".option_not_found"
	ErrOptionOwnedKey      = ErrorPrefixKey + ".option_already_owned"
	ErrCommandOwnedKey     = ErrorPrefixKey + ".command_already_owned"
	ErrInvalidTreeFileKey  = ErrorPrefixKey + ".invalid_tree_file"
	ErrInvalidLabelSpecKey = ErrorPrefixKey + ".invalid_label_spec"
	ErrUnknownModeKey      = ErrorPrefixKey + ".unknown_mode"
	ErrWriteFailedKey      = ErrorPrefixKey + ".write_failed"
)
