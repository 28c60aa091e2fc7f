package domain

// Service is one bookable cultural experience. Read-only reference data,
// consumed for rendering and name lookup only.
type Service struct {
	ID           string   `json:"id"`
	Icon         string   `json:"icon"`
	Name         string   `json:"name"`
	NameJa       string   `json:"nameJa"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	Details      []string `json:"details"`
	Tags         []string `json:"tags"`
	DurationMin  int      `json:"durationMin"`
	DisplayOrder int      `json:"displayOrder"`
}

// FallbackServices is the built-in catalog used when the spreadsheet backend
// is unreachable or returns nothing, so the wizard always stays usable.
// Kept to the minimum fields the wizard needs for selection and name lookup.
func FallbackServices() []Service {
	return []Service{
		{ID: "tate", Icon: "⚔️", Name: "Sword Fighting (Tate)", NameJa: "殺陣", Image: "/images/tate.jpg",
			Tags: []string{"Most Popular", "Beginner OK", "~20 min"}, DurationMin: 20, DisplayOrder: 1},
		{ID: "costume", Icon: "🥋", Name: "Samurai Costume Dressing", NameJa: "侍着付け", Image: "/images/costume.jpg",
			Tags: []string{"Photo-Worthy", "Beginner OK", "~20 min"}, DurationMin: 20, DisplayOrder: 2},
		{ID: "photo", Icon: "📸", Name: "Photo Session", NameJa: "記念撮影", Image: "/images/photo.jpg",
			Tags: []string{"SNS-Ready", "Everyone Joins", "~20 min"}, DurationMin: 20, DisplayOrder: 3},
		{ID: "tea", Icon: "🍵", Name: "Tea Ceremony", NameJa: "茶道", Image: "/images/tea.jpg",
			Tags: []string{"Zen Moment", "Beginner OK", "~20 min"}, DurationMin: 20, DisplayOrder: 4},
		{ID: "calligraphy", Icon: "✍️", Name: "Calligraphy", NameJa: "書道", Image: "/images/calligraphy.jpg",
			Tags: []string{"Souvenir Included", "Beginner OK", "~20 min"}, DurationMin: 20, DisplayOrder: 5},
		{ID: "dance", Icon: "🪭", Name: "Japanese Traditional Dance", NameJa: "日本舞踊", Image: "/images/dance.jpg",
			Tags: []string{"Elegant", "Popular with Women", "~20 min"}, DurationMin: 20, DisplayOrder: 6},
		{ID: "shuriken", Icon: "🎯", Name: "Shuriken Throwing", NameJa: "手裏剣投げ", Image: "/images/shuriken.jpg",
			Tags: []string{"Exciting!", "Kids OK", "~20 min"}, DurationMin: 20, DisplayOrder: 7},
		{ID: "meditation", Icon: "🧘", Name: "Samurai Meditation", NameJa: "瞑想", Image: "/images/meditation.jpg",
			Tags: []string{"Relaxing", "Inner Peace", "~20 min"}, DurationMin: 20, DisplayOrder: 8},
		{ID: "origami", Icon: "📜", Name: "Origami", NameJa: "折り紙", Image: "/images/origami.jpg",
			Tags: []string{"Souvenir Included", "Kids OK", "~20 min"}, DurationMin: 20, DisplayOrder: 9},
	}
}
