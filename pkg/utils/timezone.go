package utils

import "time"

// IndiaLocation is the IST timezone, the usual zone for recorded birth
// times in Vedic practice.
var IndiaLocation *time.Location

func init() {
	var err error
	IndiaLocation, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback to UTC+5:30
		IndiaLocation = time.FixedZone("IST", 5*60*60+30*60)
	}
}

// ResolveLocation loads a timezone by IANA name. "IST" resolves to
// IndiaLocation even on systems without a tzdata database; an empty
// name means UTC.
func ResolveLocation(name string) (*time.Location, error) {
	switch name {
	case "", "UTC", "utc":
		return time.UTC, nil
	case "IST", "ist":
		return IndiaLocation, nil
	}
	return time.LoadLocation(name)
}

// ParseBirthTime parses a date and clock string in the given location.
// The result keeps that location: temporal rules key on the birth
// place's wall clock, while Julian Day conversion reads the absolute
// instant and is location-independent.
func ParseBirthTime(dateLayout, dateStr, timeLayout, timeStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+timeLayout, dateStr+" "+timeStr, loc)
}
