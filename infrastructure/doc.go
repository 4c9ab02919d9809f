// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - http/standard: Standard library HTTP client, one request per call, no retries
// - logger/structured: logrus logger writing to the console and a lumberjack-rotated file
//
// HTTP Client Example:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://jsonplaceholder.typicode.com/users")
//
// Logger Example:
//
//	logger, err := structured.NewStructuredLogger(structured.Options{
//		Level:    "info",
//		FilePath: "index.log",
//		RunID:    uuid.New().String(),
//	})
//	defer logger.Close()
package infrastructure
