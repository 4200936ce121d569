package dashboard

import "time"

// TimeOfDay returns the greeting and period name for the local hour of now.
func TimeOfDay(now time.Time) (greeting, period string) {
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		return "Good Morning", "morning"
	case h >= 12 && h < 17:
		return "Good Afternoon", "afternoon"
	case h >= 17 && h < 21:
		return "Good Evening", "evening"
	default:
		return "Good Night", "night"
	}
}

// Greeting addresses name with the greeting for now.
func Greeting(now time.Time, name string) string {
	g, _ := TimeOfDay(now)
	if name == "" {
		return g
	}
	return g + ", " + name + "!"
}
