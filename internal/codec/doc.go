// Package codec reads and writes the contacts flat-file format.
//
// Each contact is one line of five tab-separated fields:
//
//	id	name	phone	email	address
//
// There is no header. String fields are backslash-escaped so that a field can
// never contain a raw tab, newline or carriage return:
//
//	\  -> \\
//	TAB -> \t
//	LF  -> \n
//	CR  -> \r
//
// Unescape is a single left-to-right scan, so Unescape(Escape(s)) == s for
// every string, including ones holding a literal backslash followed by 't'.
//
// Decoding is lossy but never fatal: blank lines are ignored and malformed
// lines (wrong field count, non-integer id, repeated id) are skipped and
// counted in Stats.
package codec
