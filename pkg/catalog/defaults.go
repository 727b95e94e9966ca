package catalog

// DefaultEvents is the sample catalog inserted on first startup.
func DefaultEvents() []Event {
	return []Event{
		{
			EventID:     "e1",
			Name:        "Tech Workshop",
			Club:        "Coding Club",
			Description: "A hands-on workshop on React.js and modern web development.",
			Date:        "2025-11-15",
			Time:        "14:00",
			Venue:       "Lab 101",
			Image:       "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg",
			Ended:       false,
		},
		{
			EventID:     "e2",
			Name:        "Art Exhibition",
			Club:        "Art Club",
			Description: "Showcase of student artwork and installations.",
			Date:        "2025-11-10",
			Time:        "10:00",
			Venue:       "Art Gallery",
			Image:       "https://plus.unsplash.com/premium_photo-1706388658576-77fbaff13ffe",
			Ended:       true,
		},
		{
			EventID:     "e3",
			Name:        "Music Concert",
			Club:        "Music Club",
			Description: "Live performances by college bands and solo artists.",
			Date:        "2025-11-20",
			Time:        "18:00",
			Venue:       "Auditorium",
			Image:       "https://images.pexels.com/photos/167636/pexels-photo-167636.jpeg",
			Ended:       false,
		},
		{
			EventID:     "e4",
			Name:        "Coding Competition",
			Club:        "Coding Club",
			Description: "Solve algorithmic challenges and win prizes.",
			Date:        "2025-11-18",
			Time:        "09:00",
			Venue:       "Computer Lab",
			Image:       "https://images.pexels.com/photos/1181676/pexels-photo-1181676.jpeg",
			Ended:       false,
		},
		{
			EventID:     "e5",
			Name:        "Drama Night",
			Club:        "Drama Club",
			Description: "An evening of short plays and improvisations.",
			Date:        "2025-11-12",
			Time:        "19:00",
			Venue:       "Auditorium",
			Image:       "https://media.gettyimages.com/id/157308942/photo/theater-neon-sign.jpg",
			Ended:       true,
		},
	}
}
