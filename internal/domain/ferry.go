package domain

// FerryRoute is static timetable data for one ferry crossing.
// ScheduledTimes are local departure times in "HH:MM" form, sorted
// ascending, repeating every calendar day.
type FerryRoute struct {
	Name            string
	FromPort        string
	ToPort          string
	FromCoordinate  Coordinate
	ToCoordinate    Coordinate
	ScheduledTimes  []string
	DurationMinutes int
}
