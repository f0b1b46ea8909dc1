package ephemeris

import "time"

// J2000 is the Julian Day of the standard epoch 2000-01-01 12:00 TT.
const J2000 = 2451545.0

const secondsPerDay = 86400.0

// unixEpochJD is the Julian Day of 1970-01-01 00:00 UTC.
const unixEpochJD = 2440587.5

// JulianDay converts a wall-clock time to a Julian Day number.
func JulianDay(t time.Time) float64 {
	unix := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return unixEpochJD + unix/secondsPerDay
}

// TimeOf converts a Julian Day back to wall-clock time in UTC.
func TimeOf(jd float64) time.Time {
	seconds := (jd - unixEpochJD) * secondsPerDay
	sec := int64(seconds)
	nsec := int64((seconds - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}

// DaysSinceJ2000 returns the day offset of a Julian Day from the J2000
// epoch.
func DaysSinceJ2000(jd float64) float64 {
	return jd - J2000
}
