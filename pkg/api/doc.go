// Package api serves the model pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz            liveness probe
//	POST /v1/models          config in, simulation XML out
//	POST /v1/models/stats    config in, JSON counts out
//	POST /v1/models/graph    config in, JSON nodes and edges out
//	POST /v1/models/preview  config in, SVG preview out
//
// The request body is a frame definition in TOML or YAML. The format comes
// from the format query parameter, then the Content-Type header, and
// defaults to TOML. The models route accepts seed and indent query
// parameters with the same meaning as the CLI flags.
//
// Every response carries an X-Run-ID header. Errors are JSON objects with an
// error message and a machine-readable code:
//
//	{"error": "anchors: row 2 (anchor 2), column \"depth\": ...", "code": "INVALID_ANCHOR"}
//
// Malformed input maps to 400, inconsistent references to 422, anything
// else to 500.
package api
