// Package prompt renders tool result envelopes as text blocks for the host's
// prompt-assembly step.
//
// FormatResult is a pure function over well-formed envelopes and never fails.
// Document order in the output mirrors the envelope's order, which in turn
// mirrors relevance ranking.
package prompt
