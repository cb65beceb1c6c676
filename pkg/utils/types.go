package utils

const (
	DATE_LAYOUT      = "2006-01-02"
	MONTH_LAYOUT     = "2006-01"
	TIME_LAYOUT      = "15:04"
	TIME_LAYOUT_HHMM = "1504"
	TIME_LAYOUT_SECS = "15:04:05"

	EARTH_RADIUS_MILES = 3959.0
)
