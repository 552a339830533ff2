package domain

// ProjectHours is one line of the per-project aggregation: total hours
// logged against a project within the report window.
type ProjectHours struct {
	Project string
	Hours   float64
}

// DayMinutes is one line of the per-day aggregation. The total is kept in
// raw minutes: the rendering layer deliberately labels this figure "hours"
// without dividing, matching the original tool's output.
type DayMinutes struct {
	Day     string
	Minutes float64
}
