package middleware

// Middleware fonksiyonları burada olacak

// Middleware defined in this package:
// - RequestID: Assigns or propagates the X-Request-ID header
// - CORS: Allows cross-origin requests from any origin
// - Metrics: Records Prometheus counters and latency histograms per route
// - HandleBindingError / HandleAPIError: Translate errors into JSON responses
