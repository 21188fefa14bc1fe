package errors

import "fmt"

// ConfigError reports missing or invalid configuration. It is fatal and
// raised before any network call.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// ProviderError reports a transport or authentication failure against an AI
// backend. The summarizer recovers from it with a count-only fallback.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error [%s]: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new provider error.
func NewProviderError(provider, op string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Op:       op,
		Err:      err,
	}
}

// PublishError reports that the chat platform rejected the final post. The
// run fails loudly after the output artifact has been written.
type PublishError struct {
	Channel string
	Err     error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish error [channel %s]: %v", e.Channel, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// NewPublishError creates a new publish error.
func NewPublishError(channel string, err error) *PublishError {
	return &PublishError{
		Channel: channel,
		Err:     err,
	}
}
