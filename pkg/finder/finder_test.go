package finder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencerfinder/pkg/config"
	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/rapidapi"
)

// fakeClient is an in-memory stand-in for the RapidAPI client
type fakeClient struct {
	mu        sync.Mutex
	found     []influencer.Profile
	searchErr error
	profiles  map[string]influencer.Profile
	posts     map[string][]influencer.Post
	postsErr  map[string]error
	industry  string
	postCalls []string
}

func (f *fakeClient) Search(_ context.Context, industry string, _ int) ([]influencer.Profile, error) {
	f.industry = industry
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	out := make([]influencer.Profile, len(f.found))
	copy(out, f.found)
	return out, nil
}

func (f *fakeClient) GetUserProfile(_ context.Context, username string) (influencer.Profile, error) {
	p, ok := f.profiles[username]
	if !ok {
		return influencer.Profile{}, errs.New(errs.ErrorTypeNotFound, "User not found")
	}
	return p, nil
}

func (f *fakeClient) GetRecentPosts(_ context.Context, username string) ([]influencer.Post, error) {
	f.mu.Lock()
	f.postCalls = append(f.postCalls, username)
	f.mu.Unlock()
	if err := f.postsErr[username]; err != nil {
		return nil, err
	}
	return f.posts[username], nil
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.postCalls)
}

func usernames(profiles []influencer.EnrichedProfile) []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Username
	}
	return names
}

func TestDemoSearchFemaleOverThreeThousand(t *testing.T) {
	svc := New(NewDemoSource(), Options{Workers: 3, Logger: logger.NewNopLogger()})

	resp, err := svc.Search(context.Background(), Request{
		Criteria:  influencer.Criteria{Gender: "female", MinFollowers: "3000"},
		SortBy:    "followers",
		SortOrder: "asc",
	})
	require.NoError(t, err)
	assert.Equal(t, config.ModeDemo, resp.Mode)
	require.Len(t, resp.Profiles, 6)

	ids := make(map[string]bool)
	for i, p := range resp.Profiles {
		ids[p.ID] = true
		assert.Equal(t, "female", p.Gender)
		assert.GreaterOrEqual(t, p.Followers, int64(3000))
		assert.Positive(t, p.EngagementRate)
		if i > 0 {
			assert.LessOrEqual(t, resp.Profiles[i-1].Followers, p.Followers)
		}
	}
	for _, id := range []string{"1", "2", "4", "8", "10", "14"} {
		assert.True(t, ids[id], "missing profile %s", id)
	}
}

func TestDemoSearchIndustryMatchesBiography(t *testing.T) {
	svc := New(NewDemoSource(), Options{Logger: logger.NewNopLogger()})

	resp, err := svc.Search(context.Background(), Request{Criteria: influencer.Criteria{Industry: "vegan"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"rachel_vegan_life"}, usernames(resp.Profiles))
}

func TestDemoSearchDefaultsToEngagementDescending(t *testing.T) {
	svc := New(NewDemoSource(), Options{Logger: logger.NewNopLogger()})

	resp, err := svc.Search(context.Background(), Request{})
	require.NoError(t, err)
	require.Len(t, resp.Profiles, 15)
	for i := 1; i < len(resp.Profiles); i++ {
		assert.GreaterOrEqual(t, resp.Profiles[i-1].EngagementRate, resp.Profiles[i].EngagementRate)
	}
}

func TestSearchRejectsInvalidBounds(t *testing.T) {
	svc := New(NewDemoSource(), Options{Logger: logger.NewNopLogger()})

	_, err := svc.Search(context.Background(), Request{Criteria: influencer.Criteria{MinFollowers: "abc"}})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))
	assert.Equal(t, influencer.FieldMinFollowers, errs.FieldOf(err))
}

func TestSearchReportsProgress(t *testing.T) {
	svc := New(NewDemoSource(), Options{Workers: 2, Logger: logger.NewNopLogger()})

	var stages []string
	profiles := 0
	resp, err := svc.SearchWithProgress(context.Background(), Request{
		Criteria: influencer.Criteria{Industry: "fitness"},
	}, func(p Progress) {
		stages = append(stages, p.Stage)
		if p.Stage == StageProfile {
			profiles++
			require.NotNil(t, p.Profile)
			assert.Equal(t, profiles, p.Done)
		}
	})
	require.NoError(t, err)
	assert.Equal(t, StageSource, stages[0])
	assert.Equal(t, StageFilter, stages[1])
	assert.Equal(t, len(resp.Profiles), profiles)
}

func TestDemoEngagement(t *testing.T) {
	svc := New(NewDemoSource(), Options{Logger: logger.NewNopLogger()})

	p, err := svc.Engagement(context.Background(), "@Fitness_Emma_Fit")
	require.NoError(t, err)
	assert.Equal(t, "fitness_emma_fit", p.Username)
	assert.Equal(t, 13.6, p.EngagementRate)
	assert.Equal(t, int64(566), p.AvgLikes)
	assert.Equal(t, int64(46), p.AvgComments)

	_, err = svc.Engagement(context.Background(), "nobody_here")
	assert.True(t, errs.IsNotFound(err))

	_, err = svc.Engagement(context.Background(), "  ")
	assert.True(t, errs.IsInvalidArgument(err))
	assert.Equal(t, "username", errs.FieldOf(err))
}

func liveProfiles(n int) []influencer.Profile {
	profiles := make([]influencer.Profile, n)
	for i := range profiles {
		profiles[i] = influencer.Profile{
			ID:        fmt.Sprint(i),
			Username:  fmt.Sprintf("live_%02d", i),
			Followers: 10000,
			Gender:    "female",
			Country:   "Canada",
			Category:  "general",
		}
	}
	return profiles
}

func TestLiveSearchCapsAndEnriches(t *testing.T) {
	client := &fakeClient{
		found: liveProfiles(25),
		posts: map[string][]influencer.Post{
			"live_03": {{Likes: 900, Comments: 100}},
		},
		postsErr: map[string]error{
			"live_05": errors.New("quota exceeded"),
		},
	}
	svc := New(NewLiveSource(client, 0, 1, logger.NewNopLogger()), Options{Workers: 4, Logger: logger.NewNopLogger()})

	resp, err := svc.Search(context.Background(), Request{
		Criteria: influencer.Criteria{Industry: "fitness coaching", Country: "canada"},
	})
	require.NoError(t, err)
	assert.Equal(t, config.ModeLive, resp.Mode)
	assert.Equal(t, "fitness coaching", client.industry)
	require.Len(t, resp.Profiles, DefaultMaxProfiles)
	assert.Equal(t, DefaultMaxProfiles, client.calls())

	// Highest engagement first; the rest tie at zero and keep source order
	assert.Equal(t, "live_03", resp.Profiles[0].Username)
	assert.Equal(t, 10.0, resp.Profiles[0].EngagementRate)
	assert.Equal(t, "live_00", resp.Profiles[1].Username)
	for _, p := range resp.Profiles {
		if p.Username == "live_05" {
			assert.Zero(t, p.PostsAnalyzed)
		}
	}
}

func TestLiveSearchPreFiltersBeforeCap(t *testing.T) {
	found := liveProfiles(30)
	for i := range found {
		if i%2 == 1 {
			found[i].Gender = "male"
		}
	}
	client := &fakeClient{found: found}
	svc := New(NewLiveSource(client, 10, 1, nil), Options{Logger: logger.NewNopLogger()})

	resp, err := svc.Search(context.Background(), Request{
		Criteria: influencer.Criteria{Industry: "travel", Gender: "male"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Profiles, 10)
	for _, p := range resp.Profiles {
		assert.Equal(t, "male", p.Gender)
	}
}

func TestLiveSearchKeepsProfilesOutsideIndustryKeyword(t *testing.T) {
	found := liveProfiles(100)
	for i := range found {
		found[i].Biography = "Daily posts from my life"
		switch i % 4 {
		case 1:
			found[i].Gender = "male"
		case 2:
			found[i].Country = "France"
		case 3:
			found[i].Followers = 100
		}
	}
	client := &fakeClient{found: found}
	svc := New(NewLiveSource(client, 0, 1, nil), Options{Workers: 4, Logger: logger.NewNopLogger()})

	resp, err := svc.Search(context.Background(), Request{
		Criteria: influencer.Criteria{
			Industry:     "fitness",
			Gender:       "female",
			Country:      "canada",
			MinFollowers: "5000",
			MaxFollowers: "20000",
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Profiles, DefaultMaxProfiles)
	for _, p := range resp.Profiles {
		assert.Equal(t, "general", p.Category)
		assert.NotContains(t, p.Biography, "fitness")
		assert.Equal(t, "female", p.Gender)
		assert.Equal(t, "Canada", p.Country)
		assert.Equal(t, int64(10000), p.Followers)
	}
}

func TestDemoSourceFiltersOnIndustry(t *testing.T) {
	got, err := NewDemoSource().Candidates(context.Background(), influencer.Criteria{Industry: "vegan"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rachel_vegan_life", got[0].Username)
}

func TestLiveSearchErrorsBecomeUnavailable(t *testing.T) {
	client := &fakeClient{searchErr: errs.FromStatus(401, "bad key")}
	svc := New(NewLiveSource(client, 0, 1, nil), Options{Logger: logger.NewNopLogger()})

	_, err := svc.Search(context.Background(), Request{Criteria: influencer.Criteria{Industry: "food"}})
	require.Error(t, err)
	assert.True(t, errs.IsUnavailable(err))
	assert.ErrorContains(t, err, "bad key")
}

func TestLiveEngagement(t *testing.T) {
	client := &fakeClient{
		profiles: map[string]influencer.Profile{
			"coach_amy": {Username: "coach_amy", Followers: 2000},
			"no_posts":  {Username: "no_posts", Followers: 2000},
		},
		posts: map[string][]influencer.Post{
			"coach_amy": {{Likes: 150, Comments: 10}, {Likes: 250, Comments: 30}},
		},
		postsErr: map[string]error{"no_posts": errors.New("boom")},
	}
	svc := New(NewLiveSource(client, 0, 1, nil), Options{Logger: logger.NewNopLogger()})

	p, err := svc.Engagement(context.Background(), "coach_amy")
	require.NoError(t, err)
	assert.Equal(t, 11.0, p.EngagementRate)
	assert.Equal(t, 2, p.PostsAnalyzed)

	p, err = svc.Engagement(context.Background(), "no_posts")
	require.NoError(t, err)
	assert.Zero(t, p.EngagementRate)

	_, err = svc.Engagement(context.Background(), "ghost")
	assert.True(t, errs.IsNotFound(err))
}

func TestFromConfig(t *testing.T) {
	t.Run("demo", func(t *testing.T) {
		cfg := config.DefaultConfig()
		svc, c, err := FromConfig(context.Background(), cfg, logger.NewNopLogger())
		require.NoError(t, err)
		defer c.Close()
		assert.Equal(t, config.ModeDemo, svc.Mode())
	})

	t.Run("live without credentials", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Mode = config.ModeLive
		svc, c, err := FromConfig(context.Background(), cfg, logger.NewNopLogger())
		require.NoError(t, err)
		defer c.Close()

		assert.Equal(t, config.ModeLive, svc.Mode())
		_, err = svc.Search(context.Background(), Request{Criteria: influencer.Criteria{Industry: "food"}})
		require.Error(t, err)
		assert.True(t, errs.IsType(err, errs.ErrorTypeConfig))
		assert.Equal(t, 500, errs.HTTPStatus(err))
	})

	t.Run("live with credentials", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Mode = config.ModeLive
		cfg.RapidAPI.Key = "k"
		cfg.RapidAPI.Host = "instagram.p.rapidapi.com"
		cfg.Cache.Backend = config.CacheMemory
		svc, c, err := FromConfig(context.Background(), cfg, logger.NewNopLogger())
		require.NoError(t, err)
		defer c.Close()

		_, ok := svc.source.(*LiveSource)
		assert.True(t, ok)
	})

	t.Run("client options applied", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Mode = config.ModeLive
		cfg.RapidAPI.Key = "k"
		cfg.RapidAPI.Host = "instagram.p.rapidapi.com"

		var seenHost string
		svc, c, err := FromConfig(context.Background(), cfg, logger.NewNopLogger(),
			func(o *rapidapi.Options) { seenHost = o.Host })
		require.NoError(t, err)
		defer c.Close()

		assert.Equal(t, "instagram.p.rapidapi.com", seenHost)
		assert.Equal(t, config.ModeLive, svc.Mode())
	})
}
