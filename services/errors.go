// services/errors.go
package services

import "fmt"

// ConfigError reports required configuration that was absent at the point
// of use, such as a missing bot credential or recipient chat id.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration missing: %s", e.Setting)
}

// DeliveryError reports a non-success response from the messaging API. The
// remote status and body are preserved for diagnosis.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("telegram error %d: %s", e.StatusCode, e.Body)
}

// TransportError reports a network-level delivery failure (connect,
// timeout) before any remote response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("telegram request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
