package planner

import "tableflip.dev/voyage/pkg/trip"

func mustDate(v string) trip.Date {
	d, err := trip.ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}

// SampleTrips returns the built-in demo itineraries. They seed the very
// first load when no data exists yet and the remote cannot be reached.
func SampleTrips() []*trip.Trip {
	return []*trip.Trip{
		{
			ID:          "trip-1",
			Name:        "Paris Adventure",
			Destination: "Paris, France",
			StartDate:   mustDate("2025-06-10"),
			EndDate:     mustDate("2025-06-13"),
			Color:       trip.Blue,
			Active:      true,
			Days: []*trip.Day{
				{
					ID:   "day-1",
					Name: "Day 1",
					Date: mustDate("2025-06-10"),
					Activities: []*trip.Activity{
						{ID: "activity-1", Title: "Flight to Paris", Time: "08:30 AM", Description: "Air France, Terminal 2"},
						{ID: "activity-2", Title: "Check-in at Hotel", Time: "12:00 PM", Description: "Le Grand Paris, Room 505"},
						{ID: "activity-3", Title: "Lunch at Café de Flore", Time: "01:30 PM", Description: "Famous historic café"},
					},
				},
				{
					ID:   "day-2",
					Name: "Day 2",
					Date: mustDate("2025-06-11"),
					Activities: []*trip.Activity{
						{ID: "activity-4", Title: "Visit Eiffel Tower", Time: "10:00 AM", Description: "Skip the line tickets"},
						{ID: "activity-5", Title: "Seine River Cruise", Time: "03:00 PM", Description: "1-hour scenic cruise"},
					},
				},
				{
					ID:   "day-3",
					Name: "Day 3",
					Date: mustDate("2025-06-12"),
					Activities: []*trip.Activity{
						{ID: "activity-6", Title: "Louvre Museum", Time: "09:00 AM", Description: "Guided tour"},
						{ID: "activity-7", Title: "Shopping at Champs-Élysées", Time: "02:00 PM", Description: "Luxury shopping avenue"},
						{ID: "activity-8", Title: "Dinner at Le Jules Verne", Time: "08:00 PM", Description: "Michelin star restaurant"},
					},
				},
			},
		},
		{
			ID:          "trip-2",
			Name:        "Tokyo Exploration",
			Destination: "Tokyo, Japan",
			StartDate:   mustDate("2025-07-15"),
			EndDate:     mustDate("2025-07-20"),
			Color:       trip.Pink,
			Active:      false,
			Days: []*trip.Day{
				{
					ID:   "day-1",
					Name: "Day 1",
					Date: mustDate("2025-07-15"),
					Activities: []*trip.Activity{
						{ID: "activity-1", Title: "Arrival at Narita Airport", Time: "10:30 AM", Description: "Japan Airlines"},
						{ID: "activity-2", Title: "Train to Shinjuku", Time: "01:00 PM", Description: "Narita Express"},
					},
				},
				{
					ID:   "day-2",
					Name: "Day 2",
					Date: mustDate("2025-07-16"),
					Activities: []*trip.Activity{
						{ID: "activity-3", Title: "Tokyo Skytree", Time: "09:00 AM", Description: "Panoramic views"},
						{ID: "activity-4", Title: "Asakusa Temple", Time: "02:00 PM", Description: "Historic temple district"},
					},
				},
			},
		},
	}
}
