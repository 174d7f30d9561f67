// Package report renders line digests for display. Plain output
// is the bare digest list; JSON output adds the configuration and
// per-line detail; template output expands a {tag} template for
// every digested line. Check compares a stored output with a
// fresh one.
package report
