// Package lines turns raw input text into per-line digests.
//
// In multiline mode the input is split on "\r\n" or "\n", each
// line is optionally trimmed, empty lines are dropped unless
// KeepEmptyLines is set, and the surviving lines are digested
// concurrently. Results are always reassembled in source line
// order, one lowercase hex digest per line, joined by "\n".
//
// In single-line mode the whole input is one unit. When that
// unit is empty (after trimming) and KeepEmptyLines is unset the
// output is the empty string and nothing is hashed.
//
// Processor holds no state between calls. Latest wraps one for
// callers that recompute on every edit and only want the result
// of the newest submission.
package lines
