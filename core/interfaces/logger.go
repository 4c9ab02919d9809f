// Package interfaces defines the contracts the core packages consume.
// Implementations live under infrastructure/ and are injected through
// Dependencies, which keeps the core testable in isolation.
package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction allows for different logging implementations (logrus, zap, etc.)
// while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Info("Fetching users...", nil)
//
//	logger.Error("Invalid email for user ID 2: invalid-email", map[string]interface{}{
//		"user_id": 2,
//		"email":   "invalid-email",
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
