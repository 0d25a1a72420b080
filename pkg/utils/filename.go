package utils

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

var windowsDeviceNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"LPT1": true, "LPT2": true, "LPT3": true,
}

// SecureFilename returns an ASCII-only name safe to join onto an upload
// directory. Accents are folded, path separators become spaces, runs of
// whitespace become a single underscore and anything outside [A-Za-z0-9_.-]
// is dropped. The result may be empty.
func SecureFilename(name string) string {
	ascii, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))),
		name,
	)
	if err != nil {
		ascii = ""
	}
	ascii = strings.NewReplacer("/", " ", "\\", " ").Replace(ascii)
	ascii = strings.Join(strings.Fields(ascii), "_")
	ascii = unsafeFilenameChars.ReplaceAllString(ascii, "")
	ascii = strings.Trim(ascii, "._")

	if base := strings.SplitN(ascii, ".", 2)[0]; windowsDeviceNames[strings.ToUpper(base)] {
		ascii = "_" + ascii
	}
	return ascii
}

// AllowedFile reports whether filename has an extension in allowed.
// The comparison is case-insensitive and allowed holds bare extensions ("png").
func AllowedFile(filename string, allowed []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return false
	}
	ext = strings.ToLower(ext)
	for _, a := range allowed {
		if strings.ToLower(strings.TrimPrefix(a, ".")) == ext {
			return true
		}
	}
	return false
}
