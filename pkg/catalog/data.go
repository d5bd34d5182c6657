package catalog

import "influencerfinder/pkg/influencer"

// profiles is the demo data set. It is never handed out directly; see All.
var profiles = []influencer.Profile{
	{
		ID:            "1",
		Username:      "fitness_emma_fit",
		FullName:      "Emma Rodriguez",
		ProfilePicURL: "https://i.pravatar.cc/150?img=1",
		Biography:     "Fitness coach & nutrition expert 💪 Helping you achieve your goals #FitnessMotivation",
		Followers:     4500,
		Following:     850,
		PostsCount:    342,
		IsVerified:    false,
		Country:       "United States",
		Category:      "fitness",
		Gender:        "female",
		RecentPosts:   posts(520, 45, 485, 38, 610, 52, 545, 41, 590, 48, 510, 39, 625, 54, 580, 47, 555, 43, 600, 50, 575, 46, 595, 49),
	},
	{
		ID:            "2",
		Username:      "sarah_beauty_glow",
		FullName:      "Sarah Johnson",
		ProfilePicURL: "https://i.pravatar.cc/150?img=5",
		Biography:     "Beauty & skincare enthusiast ✨ Natural makeup lover | LA based",
		Followers:     3200,
		Following:     720,
		PostsCount:    256,
		IsVerified:    false,
		Country:       "United States",
		Category:      "beauty",
		Gender:        "female",
		RecentPosts:   posts(380, 32, 420, 38, 395, 35, 410, 36, 405, 37, 390, 33, 425, 39, 415, 38, 400, 34, 430, 40, 385, 31, 395, 35),
	},
	{
		ID:            "3",
		Username:      "mike_gym_warrior",
		FullName:      "Michael Chen",
		ProfilePicURL: "https://i.pravatar.cc/150?img=12",
		Biography:     "Personal trainer | Bodybuilding enthusiast 🏋️ #GymLife #FitnessJourney",
		Followers:     2800,
		Following:     650,
		PostsCount:    198,
		IsVerified:    false,
		Country:       "Canada",
		Category:      "fitness",
		Gender:        "male",
		RecentPosts:   posts(310, 28, 295, 25, 325, 30, 300, 27, 315, 29, 305, 26, 320, 31, 310, 28, 290, 24, 330, 32, 300, 27, 315, 29),
	},
	{
		ID:            "4",
		Username:      "jessica_fashion_style",
		FullName:      "Jessica Martinez",
		ProfilePicURL: "https://i.pravatar.cc/150?img=9",
		Biography:     "Fashion blogger | Style inspiration 👗 NYC | Sustainable fashion advocate",
		Followers:     4200,
		Following:     890,
		PostsCount:    425,
		IsVerified:    false,
		Country:       "United States",
		Category:      "fashion",
		Gender:        "female",
		RecentPosts:   posts(580, 48, 620, 52, 595, 50, 610, 51, 605, 49, 590, 47, 625, 53, 600, 50, 615, 52, 630, 54, 585, 46, 595, 50),
	},
	{
		ID:            "5",
		Username:      "alex_foodie_adventures",
		FullName:      "Alex Thompson",
		ProfilePicURL: "https://i.pravatar.cc/150?img=14",
		Biography:     "Food blogger 🍕 Restaurant reviews | Cooking tutorials | Toronto",
		Followers:     3600,
		Following:     780,
		PostsCount:    312,
		IsVerified:    false,
		Country:       "Canada",
		Category:      "food",
		Gender:        "male",
		RecentPosts:   posts(450, 40, 475, 42, 460, 39, 490, 44, 465, 41, 480, 43, 470, 40, 455, 38, 485, 45, 495, 46, 460, 39, 475, 42),
	},
	{
		ID:            "6",
		Username:      "amanda_yoga_peace",
		FullName:      "Amanda Williams",
		ProfilePicURL: "https://i.pravatar.cc/150?img=24",
		Biography:     "Yoga instructor 🧘‍♀️ Mindfulness & wellness | Online classes available",
		Followers:     2500,
		Following:     550,
		PostsCount:    178,
		IsVerified:    false,
		Country:       "United States",
		Category:      "fitness",
		Gender:        "female",
		RecentPosts:   posts(280, 24, 295, 26, 270, 22, 305, 28, 285, 25, 290, 24, 300, 27, 275, 23, 310, 29, 295, 26, 280, 24, 290, 25),
	},
	{
		ID:            "7",
		Username:      "david_travel_explorer",
		FullName:      "David Brown",
		ProfilePicURL: "https://i.pravatar.cc/150?img=15",
		Biography:     "Travel photographer 📸 Adventure seeker | 50+ countries explored",
		Followers:     4800,
		Following:     920,
		PostsCount:    502,
		IsVerified:    false,
		Country:       "United Kingdom",
		Category:      "travel",
		Gender:        "male",
		RecentPosts:   posts(680, 58, 720, 62, 695, 60, 710, 61, 700, 59, 690, 58, 725, 63, 705, 60, 715, 62, 730, 64, 685, 57, 695, 60),
	},
	{
		ID:            "8",
		Username:      "lisa_home_decor",
		FullName:      "Lisa Anderson",
		ProfilePicURL: "https://i.pravatar.cc/150?img=20",
		Biography:     "Interior designer | Home decor inspiration 🏡 Making spaces beautiful",
		Followers:     3100,
		Following:     680,
		PostsCount:    245,
		IsVerified:    false,
		Country:       "United States",
		Category:      "lifestyle",
		Gender:        "female",
		RecentPosts:   posts(420, 36, 445, 39, 430, 37, 455, 40, 440, 38, 435, 37, 460, 41, 450, 39, 425, 36, 465, 42, 415, 35, 430, 37),
	},
	{
		ID:            "9",
		Username:      "chris_tech_geek",
		FullName:      "Christopher Lee",
		ProfilePicURL: "https://i.pravatar.cc/150?img=33",
		Biography:     "Tech reviewer 💻 Gadgets & software | YouTube: ChrisTechGeek",
		Followers:     4100,
		Following:     820,
		PostsCount:    367,
		IsVerified:    false,
		Country:       "United States",
		Category:      "technology",
		Gender:        "male",
		RecentPosts:   posts(570, 50, 595, 53, 580, 51, 610, 54, 585, 52, 600, 53, 590, 52, 575, 50, 605, 54, 615, 55, 580, 51, 595, 53),
	},
	{
		ID:            "10",
		Username:      "nicole_makeup_pro",
		FullName:      "Nicole Davis",
		ProfilePicURL: "https://i.pravatar.cc/150?img=27",
		Biography:     "Professional makeup artist 💄 Beauty tutorials | LA based | DM for bookings",
		Followers:     3800,
		Following:     790,
		PostsCount:    289,
		IsVerified:    false,
		Country:       "United States",
		Category:      "beauty",
		Gender:        "female",
		RecentPosts:   posts(525, 46, 550, 49, 535, 47, 565, 50, 540, 48, 555, 49, 545, 48, 530, 46, 560, 50, 570, 51, 535, 47, 550, 49),
	},
	{
		ID:            "11",
		Username:      "james_fitness_coach",
		FullName:      "James Wilson",
		ProfilePicURL: "https://i.pravatar.cc/150?img=52",
		Biography:     "Certified personal trainer | Transformation coach 💪 Building better versions",
		Followers:     3400,
		Following:     710,
		PostsCount:    267,
		IsVerified:    false,
		Country:       "United Kingdom",
		Category:      "fitness",
		Gender:        "male",
		RecentPosts:   posts(475, 42, 490, 44, 480, 43, 505, 45, 485, 43, 495, 44, 500, 45, 470, 41, 510, 46, 515, 47, 480, 43, 490, 44),
	},
	{
		ID:            "12",
		Username:      "rachel_vegan_life",
		FullName:      "Rachel Green",
		ProfilePicURL: "https://i.pravatar.cc/150?img=47",
		Biography:     "Vegan lifestyle blogger 🌱 Plant-based recipes | Ethical living",
		Followers:     2900,
		Following:     630,
		PostsCount:    213,
		IsVerified:    false,
		Country:       "Canada",
		Category:      "food",
		Gender:        "female",
		RecentPosts:   posts(350, 30, 375, 33, 360, 31, 390, 35, 365, 32, 380, 34, 370, 32, 355, 30, 385, 34, 395, 36, 360, 31, 375, 33),
	},
	{
		ID:            "13",
		Username:      "kevin_sports_fan",
		FullName:      "Kevin Miller",
		ProfilePicURL: "https://i.pravatar.cc/150?img=56",
		Biography:     "Sports journalist ⚽ Game analysis | Fantasy sports tips",
		Followers:     4300,
		Following:     860,
		PostsCount:    398,
		IsVerified:    false,
		Country:       "United States",
		Category:      "sports",
		Gender:        "male",
		RecentPosts:   posts(595, 52, 620, 55, 605, 53, 635, 56, 610, 54, 625, 55, 615, 54, 600, 52, 630, 56, 640, 57, 605, 53, 620, 55),
	},
	{
		ID:            "14",
		Username:      "sophia_fashion_trends",
		FullName:      "Sophia Taylor",
		ProfilePicURL: "https://i.pravatar.cc/150?img=45",
		Biography:     "Fashion influencer 👠 Trend spotter | Sustainable style advocate",
		Followers:     4600,
		Following:     910,
		PostsCount:    456,
		IsVerified:    false,
		Country:       "United Kingdom",
		Category:      "fashion",
		Gender:        "female",
		RecentPosts:   posts(650, 56, 680, 59, 665, 57, 695, 60, 670, 58, 685, 59, 675, 58, 660, 57, 690, 60, 700, 61, 665, 57, 680, 59),
	},
	{
		ID:            "15",
		Username:      "ryan_car_enthusiast",
		FullName:      "Ryan Moore",
		ProfilePicURL: "https://i.pravatar.cc/150?img=60",
		Biography:     "Automotive blogger 🚗 Car reviews | Track days | Gear head",
		Followers:     3700,
		Following:     770,
		PostsCount:    301,
		IsVerified:    false,
		Country:       "United States",
		Category:      "automotive",
		Gender:        "male",
		RecentPosts:   posts(515, 45, 540, 48, 525, 46, 555, 49, 530, 47, 545, 48, 535, 47, 520, 46, 550, 49, 560, 50, 525, 46, 540, 48),
	},
}

// posts builds a post list from alternating like and comment counts.
func posts(counts ...int64) []influencer.Post {
	out := make([]influencer.Post, 0, len(counts)/2)
	for i := 0; i+1 < len(counts); i += 2 {
		out = append(out, influencer.Post{Likes: counts[i], Comments: counts[i+1]})
	}
	return out
}
