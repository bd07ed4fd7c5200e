// Package diag defines the core diagnostic model shared by the front end.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the scanner and the reporting layer.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering responsibilities live in internal/diagfmt and internal/report.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Recoverable lexical anomalies (unknown character, malformed number) are
// warnings; conditions that abort a scan (unterminated string) are errors.
//
// # Emitting diagnostics
//
// Producers use a diag.Reporter to decouple emission from storage;
// diag.BagReporter aggregates diagnostics into a Bag, which supports sorting
// and deduplication for deterministic output.
package diag
