package calendar

import (
	"time"

	"mannwallet/internal/models"
)

// indianFestivals returns the built-in festival table. Dates are in IST and
// cover 2025 through 2027; lunar-calendar festivals use the published
// panchang dates for each year.
func indianFestivals() []models.CalendarEvent {
	return []models.CalendarEvent{
		// 2025
		festival("Makar Sankranti", 2025, time.January, 14),
		festival("Holi", 2025, time.March, 14),
		festival("Raksha Bandhan", 2025, time.August, 9),
		festival("Ganesh Chaturthi", 2025, time.August, 27),
		festival("Navratri", 2025, time.September, 22),
		festival("Dussehra", 2025, time.October, 2),
		festival("Karva Chauth", 2025, time.October, 10),
		festival("Diwali", 2025, time.October, 20),
		festival("Bhai Dooj", 2025, time.October, 23),
		festival("Chhath Puja", 2025, time.October, 28),

		// 2026
		festival("Makar Sankranti", 2026, time.January, 14),
		festival("Holi", 2026, time.March, 4),
		festival("Raksha Bandhan", 2026, time.August, 28),
		festival("Ganesh Chaturthi", 2026, time.September, 14),
		festival("Navratri", 2026, time.October, 11),
		festival("Dussehra", 2026, time.October, 20),
		festival("Karva Chauth", 2026, time.October, 29),
		festival("Diwali", 2026, time.November, 8),
		festival("Bhai Dooj", 2026, time.November, 11),
		festival("Chhath Puja", 2026, time.November, 15),

		// 2027
		festival("Makar Sankranti", 2027, time.January, 15),
		festival("Holi", 2027, time.March, 22),
		festival("Raksha Bandhan", 2027, time.August, 17),
		festival("Ganesh Chaturthi", 2027, time.September, 3),
		festival("Navratri", 2027, time.September, 30),
		festival("Dussehra", 2027, time.October, 9),
		festival("Karva Chauth", 2027, time.October, 18),
		festival("Diwali", 2027, time.October, 29),
		festival("Bhai Dooj", 2027, time.November, 1),
		festival("Chhath Puja", 2027, time.November, 4),
	}
}

var ist = time.FixedZone("IST", 5*3600+1800)

func festival(name string, year int, month time.Month, day int) models.CalendarEvent {
	return models.CalendarEvent{
		Name: name,
		Date: time.Date(year, month, day, 0, 0, 0, 0, ist),
	}
}
