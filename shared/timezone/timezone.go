package timezone

import (
	"maps"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

const localZoneName = "Local"

var locations sync.Map

// Normalize maps a raw timezone token to a canonical identifier.
// Unknown tokens are reported with ok == false; callers fall back to UTC.
func Normalize(raw string) (canonical string, ok bool) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", false
	}

	key := strings.ToLower(strings.Join(strings.Fields(token), " "))
	if canonical, ok := aliases[key]; ok {
		return canonical, true
	}

	if _, ok := load(token); ok {
		return token, true
	}

	return "", false
}

// Resolve normalizes raw and returns the matching location.
func Resolve(raw string) (*time.Location, bool) {
	canonical, ok := Normalize(raw)
	if !ok {
		return nil, false
	}

	return load(canonical)
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	return maps.Clone(aliases)
}

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

func load(name string) (*time.Location, bool) {
	if name == "" || name == localZoneName {
		return nil, false
	}

	if cached, ok := locations.Load(name); ok {
		return cached.(*time.Location), true //nolint:forcetypeassert
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}

	locations.Store(name, loc)

	return loc, true
}
