// Package sanitize turns untrusted filename suggestions into strings that are
// safe to use as a single filesystem path component. The model output it
// consumes can contain anything: path traversal prefixes, shell
// metacharacters, control bytes, reserved device names, or nothing at all.
package sanitize

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Fallback is returned whenever sanitization reduces the input to nothing.
const Fallback = "unnamed_file"

// MaxNameLength caps the sanitized name in runes, leaving room for the
// extension appended afterwards.
const MaxNameLength = 150

// DefaultExtension is used when the original filename carries no extension.
const DefaultExtension = ".txt"

// boundaryCutset holds the characters a name may not begin or end with.
const boundaryCutset = "._- "

var (
	// Allowed runes: Unicode letters and digits, underscore, plain space,
	// dot, hyphen, parentheses and brackets. Everything else becomes an
	// underscore, which removes shell metacharacters, HTML delimiters and
	// control bytes in one pass. Only the ASCII space counts as whitespace
	// here, so newlines and tabs cannot survive into a filename.
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_ .\-()\[\]]`)
	spaceRuns       = regexp.MustCompile(` {2,}`)
	underscoreRuns  = regexp.MustCompile(`_{2,}`)
)

// reservedNames are device names some filesystems refuse regardless of case
// or extension.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// Name sanitizes an untrusted filename suggestion. It never fails: any input,
// including empty strings, pure dots and multi-kilobyte garbage, maps to a
// non-empty name with no path separators, no control characters, no leading
// dot, clean boundaries, no reserved device name and at most MaxNameLength
// runes.
func Name(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return Fallback
	}

	// Keep only the final path segment so absolute paths and ../ prefixes
	// cannot point outside the target directory.
	s = lastSegment(s)

	// Any separator that survives the segment cut becomes an underscore.
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")

	s = disallowedChars.ReplaceAllString(s, "_")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = underscoreRuns.ReplaceAllString(s, "_")

	// No hidden files; pure-dot inputs collapse to nothing here.
	s = strings.TrimLeft(s, ".")
	if s == "" {
		return Fallback
	}

	if isReserved(s) {
		s = "file_" + s
	}
	s = truncate(s, MaxNameLength)
	s = strings.Trim(s, boundaryCutset)
	if s == "" {
		return Fallback
	}

	// Trimming the boundary can expose a reserved name the earlier check
	// could not see ("_con.txt" becomes "con.txt"), and prefixing a long
	// name so late can overrun the length cap. The re-trim cannot expose
	// another reserved name: the result now starts with "file_".
	if isReserved(s) {
		s = "file_" + s
		if utf8.RuneCountInString(s) > MaxNameLength {
			s = strings.Trim(truncate(s, MaxNameLength), boundaryCutset)
		}
	}
	return s
}

// ExtensionOrDefault returns the original filename's extension, or
// DefaultExtension when it has none. Dotfiles like ".bashrc" count as having
// no extension. The result is trusted as-is: it derives from the locally
// known original name, never from model output.
func ExtensionOrDefault(original string) string {
	base := filepath.Base(strings.TrimSpace(original))
	ext := filepath.Ext(base)
	if ext == "" || ext == "." || ext == base {
		return DefaultExtension
	}
	return ext
}

// Compose builds the final filename from a raw suggestion and the trusted
// extension. Models are asked for a name with extension and usually echo the
// original one; a candidate already ending in ext loses that duplicate before
// sanitization so "Report.pdf" plus ".pdf" does not become "Report.pdf.pdf".
func Compose(candidate, ext string) string {
	trimmed := strings.TrimSpace(candidate)
	if ce := filepath.Ext(trimmed); ce != "" && strings.EqualFold(ce, ext) {
		trimmed = strings.TrimSuffix(trimmed, ce)
	}
	return Name(trimmed) + ext
}

// lastSegment is a cross-platform basename: trailing separators of either
// flavor are trimmed, then only what follows the last separator is kept.
// filepath.Base only understands the host separator, and suggestions may
// carry Windows-style paths on any platform.
func lastSegment(s string) string {
	s = strings.TrimRight(s, `/\`)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// isReserved matches the segment before the first dot against the reserved
// device names, so "con.txt" is caught along with "CON".
func isReserved(name string) bool {
	stem := name
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	_, ok := reservedNames[strings.ToUpper(stem)]
	return ok
}

// truncate cuts at a rune boundary; slicing bytes could split a multi-byte
// character.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
