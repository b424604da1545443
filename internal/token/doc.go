// Package token defines the token kinds of the diagram language and the
// single canonical keyword table shared by the lexer, the completion and
// hover providers, and the formatter.
package token
