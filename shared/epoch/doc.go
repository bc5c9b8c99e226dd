// Package epoch converts between Unix epoch seconds and human-readable datetimes.
//
// HumanToEpoch accepts exactly these layouts, tried in order:
//
//	YYYY-MM-DD-HHMMSS   2025-09-10-131100
//	YYYYMMDDHHMMSS      20250910131100
//	YYYYMMDDHHMM        202509101311
//	MM/DD/YYYY HH:MM    09/10/2025 13:11
//
// EpochToHuman renders "Mon 2006-01-02 15:04:05 MST", using the literal UTC
// when no timezone resolves.
//
// Wall-clock times that fall into a DST transition are resolved as follows:
// an ambiguous time (clocks set back) maps to the earlier of its two instants,
// and a nonexistent time (clocks set forward) is read with the offset in effect
// after the transition.
//
// Both directions share one range, the years 0001 through 9999 in UTC. A wall
// time near either end that falls outside it once its zone offset is applied
// is rejected, so every epoch HumanToEpoch returns is accepted by ParseEpoch.
package epoch
