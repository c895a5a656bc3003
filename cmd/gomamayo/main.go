// Package main provides the entry point for the gomamayo CLI.
//
// gomamayo detects ゴママヨ wordplay in Japanese compounds: adjacent words
// whose pronunciations overlap at the boundary, as in ゴマ + マヨネーズ →
// ゴママヨ.
//
// Usage:
//
//	gomamayo <word> [<word>...]
//	gomamayo list --db <file>
//
// See --help for all available options.
package main

func main() {
	Execute()
}
