package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"kundali-engine/internal/models"
)

// FormatDegree formats a longitude as degrees-minutes-seconds.
func FormatDegree(deg float64) string {
	deg = models.NormalizeDegrees(deg)
	d := int(deg)
	minFloat := (deg - float64(d)) * 60
	m := int(minFloat)
	s := (minFloat - float64(m)) * 60
	return fmt.Sprintf("%d°%02d'%05.2f\"", d, m, s)
}

// FormatSignDegree formats a position as degree within its sign,
// e.g. "15°20' Taurus".
func FormatSignDegree(longitude float64) string {
	lon := models.NormalizeDegrees(longitude)
	inSign := math.Mod(lon, 30)
	d := int(inSign)
	m := int((inSign - float64(d)) * 60)
	return fmt.Sprintf("%d°%02d' %s", d, m, models.SignOf(lon))
}

// FormatYears formats a duration in decimal years, switching to months
// for short spans.
func FormatYears(years float64) string {
	if years < 0 {
		years = -years
	}
	if years < 1 {
		months := years * 12
		return fmt.Sprintf("%.1f months", months)
	}
	return fmt.Sprintf("%.2f years", years)
}

// FormatDays formats a day count in human-readable form.
func FormatDays(days float64) string {
	if days >= 365 {
		return fmt.Sprintf("%.1f years", days/365.25)
	}
	if days >= 60 {
		return fmt.Sprintf("%.1f months", days/30.44)
	}
	return fmt.Sprintf("%.0f days", days)
}

// FormatPercent formats a percentage value.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatDate formats a date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format("02-Jan-2006")
}

// FormatDateTime formats a datetime in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("02-Jan-2006 15:04")
}

// FormatCoordinates formats a latitude/longitude pair.
func FormatCoordinates(latitude, longitude float64) string {
	latDir := "N"
	if latitude < 0 {
		latDir = "S"
		latitude = -latitude
	}
	lonDir := "E"
	if longitude < 0 {
		lonDir = "W"
		longitude = -longitude
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", latitude, latDir, longitude, lonDir)
}

// FormatPlanets joins planet names with commas.
func FormatPlanets(planets []models.Planet) string {
	if len(planets) == 0 {
		return "-"
	}
	names := make([]string, len(planets))
	for i, p := range planets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// TruncateString truncates a string to max length with ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PadRight pads a string to the right.
func PadRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// PadLeft pads a string to the left.
func PadLeft(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(" ", length-len(s)) + s
}
