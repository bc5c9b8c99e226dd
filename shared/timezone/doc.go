// Package timezone resolves casual timezone names to canonical IANA identifiers.
//
// Usage Examples:
//
//  1. Normalizing user input:
//     id, ok := timezone.Normalize("pst")          // "America/Los_Angeles", true
//     id, ok = timezone.Normalize("Asia/Tokyo")    // "Asia/Tokyo", true
//     id, ok = timezone.Normalize("mars")          // "", false
//
//  2. Loading a location for conversion:
//     loc, ok := timezone.Resolve(" Moscow ")      // Europe/Moscow
//
// Supported inputs:
// - Aliases from a static table, matched case-insensitively with surrounding and
//   repeated inner whitespace ignored: abbreviations ("pst", "msk") and friendly
//   names ("pacific", "new york").
// - Canonical IANA names as understood by time.LoadLocation, matched exactly.
//
// The timezone database is embedded through time/tzdata, so resolution does not
// depend on the host having /usr/share/zoneinfo installed.
package timezone
