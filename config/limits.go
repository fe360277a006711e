package config

// Limits holds every numeric threshold the draft engine applies. Components
// receive a Limits value at construction so tests can inject alternates.
type Limits struct {
	// Rate limiting (sliding windows: 1 hour and 24 hours)
	MaxPostsPerHour  int
	MaxPostsPerDay   int
	MaxDraftsPerHour int
	MaxDraftsPerDay  int

	// Content limits (LinkedIn specifications)
	MaxContentLength    int
	MaxHashtags         int
	RecommendedHashtags int
	MaxURLs             int

	// Engagement sweet spot
	MinEngagementLength int
	LongPostLength      int
}

// DefaultLimits returns the reference limits used in production.
func DefaultLimits() Limits {
	return Limits{
		MaxPostsPerHour:     1,
		MaxPostsPerDay:      3,
		MaxDraftsPerHour:    1,
		MaxDraftsPerDay:     20,
		MaxContentLength:    3000,
		MaxHashtags:         30,
		RecommendedHashtags: 5,
		MaxURLs:             3,
		MinEngagementLength: 150,
		LongPostLength:      1500,
	}
}

// HashtagCategory maps trigger keywords to representative hashtags for one
// topic. Categories are evaluated in slice order.
type HashtagCategory struct {
	Name     string
	Tags     []string
	Keywords []string
}

// DefaultHashtagCategories returns the built-in professional hashtag table.
func DefaultHashtagCategories() []HashtagCategory {
	return []HashtagCategory{
		{
			Name:     "business",
			Tags:     []string{"#Business", "#Entrepreneurship", "#Leadership", "#Strategy", "#Innovation"},
			Keywords: []string{"business", "company", "startup", "entrepreneur", "ceo"},
		},
		{
			Name:     "technology",
			Tags:     []string{"#Technology", "#TechNews", "#AI", "#MachineLearning", "#SoftwareDevelopment"},
			Keywords: []string{"tech", "software", "ai", "data", "code", "development"},
		},
		{
			Name:     "marketing",
			Tags:     []string{"#Marketing", "#DigitalMarketing", "#ContentMarketing", "#SocialMedia", "#Branding"},
			Keywords: []string{"marketing", "brand", "content", "social media", "campaign"},
		},
		{
			Name:     "career",
			Tags:     []string{"#Career", "#JobSearch", "#Hiring", "#CareerAdvice", "#ProfessionalDevelopment"},
			Keywords: []string{"career", "job", "hiring", "interview", "resume"},
		},
		{
			Name:     "productivity",
			Tags:     []string{"#Productivity", "#TimeManagement", "#WorkLifeBalance", "#RemoteWork", "#Efficiency"},
			Keywords: []string{"productivity", "time", "work", "efficiency", "remote"},
		},
		{
			Name:     "finance",
			Tags:     []string{"#Finance", "#Investing", "#FinTech", "#Economics", "#Business"},
			Keywords: []string{"finance", "money", "investment", "revenue", "profit"},
		},
		{
			Name:     "sales",
			Tags:     []string{"#Sales", "#B2B", "#SaaS", "#CustomerSuccess", "#SalesStrategy"},
			Keywords: []string{"sales", "customer", "client", "deal", "revenue"},
		},
	}
}

// PostingSchedule holds the advisory posting-hour tables and tips.
type PostingSchedule struct {
	WeekdayHours []int
	WeekendHours []int
	WeekdayTip   string
	WeekendTip   string
}

// DefaultPostingSchedule returns the built-in posting-time tables (UTC hours).
func DefaultPostingSchedule() PostingSchedule {
	return PostingSchedule{
		WeekdayHours: []int{8, 9, 12, 17, 18},
		WeekendHours: []int{10, 11, 15},
		WeekdayTip:   "Best engagement on weekdays during business hours (8-9 AM, 12 PM, 5-6 PM).",
		WeekendTip:   "Weekend posts get less engagement. Consider scheduling for Monday morning.",
	}
}
