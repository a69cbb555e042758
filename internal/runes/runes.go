// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runes adapts the two host-level representations of text this module accepts --
// Go strings (UTF-8 byte sequences) and []rune (already-decoded code points) -- to the single
// representation every kernel in this module operates on: a []rune, indexed by code point rather
// than by byte.
//
// This is the only place in the module that deals with string decoding. Every kernel downstream
// treats its input as an opaque slice of code points and is independent of how the caller obtained
// them.
package runes

// FromString decodes s into its code points. Invalid UTF-8 sequences decode to
// utf8.RuneError (U+FFFD), matching the behavior of Go's range-over-string and []rune(s)
// conversion.
func FromString(s string) []rune {
	return []rune(s)
}

// Of returns a as a code-point slice, for callers that already have decoded text and want to
// avoid FromString's allocation and re-decoding.
func Of(a []rune) []rune {
	return a
}
