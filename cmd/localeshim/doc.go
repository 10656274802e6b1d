// Command localeshim coerces a degenerate C/POSIX locale to a UTF-8
// alternative before reporting the encoding configuration or handing off to
// a wrapped command.
//
// Usage:
//
//	localeshim [flags]                 print the encoding report
//	localeshim [flags] -- cmd [args]   exec cmd with the coerced environment
//
// Flags:
//
//	--format          report format: text, json or yaml (default text)
//	--warn-c-locale   emit the degenerate-locale advisory (defaults to the
//	                  build-time gate)
//	--probe-timeout   bound for each OS locale consultation (default 3s)
//	--version         print version and exit
//
// Behavior:
//
// Snapshots LC_ALL/LC_CTYPE/LANG and PYTHONCOERCECLOCALE, negotiates the
// coercion once, prints at most one advisory line to stderr, then either
// prints the report to stdout (text format: fsencoding plus one
// "encoding:errors" line per standard stream) or execs the wrapped command.
// The process always ends up with a fully-specified encoding configuration;
// coercion failure degrades to ascii, it never aborts.
package main
