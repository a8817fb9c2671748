// Package requestid attaches a correlation identifier to every HTTP request.
//
// A request ID is an opaque string that ties together the log records of a
// single user interaction. The Middleware reuses a client-supplied
// "X-Request-ID" header when it passes validation and generates a UUIDv4
// otherwise; the chosen ID is stored in the request context and echoed back
// in the response header.
//
// Combined with the tenant attributes from tenantctx.LoggerExtractor, the
// request ID lets a single log line answer both "which request" and "which
// org" when tracing a cross-tenant report.
//
// # Usage
//
//	mux := http.NewServeMux()
//	mux.Handle("/hello", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		w.Write([]byte("request id: " + id))
//	}))
//
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
// Wire the ID into structured logs via LoggerExtractor and the logger
// package's WithContextExtractors option.
//
// The package returns no errors; an invalid or missing client ID is silently
// replaced with a fresh UUID.
package requestid
