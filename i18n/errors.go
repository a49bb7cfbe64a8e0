package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. It implements both the TranslatableError interface
// and the standard error interface.
//
// Example usage:
//
//	err := NewError("helpfmt.error.unknown_label_key")
//	err = err.WithArgs("USAGE")
type TrError struct {
	// sentinel is shared by every copy derived from the same NewError call
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
}

// BundleMessageProvider implements MessageProvider on top of a Bundle
type BundleMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewBundleMessageProvider returns a provider looking up raw messages for lang in bundle
func NewBundleMessageProvider(bundle *Bundle, lang language.Tag) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle, lang: lang}
}

func (p *BundleMessageProvider) GetMessage(key string) string {
	return p.bundle.Message(p.lang, key)
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the message of the current default provider, formatted with args if provided
func (e *TrError) Error() string {
	msg := getDefaultProvider().GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel || target == e
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// Package-level provider management
var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider allows users to set their own provider. Passing nil restores the
// English provider backed by Default().
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default(), language.English)
	}
	return defaultProvider
}
