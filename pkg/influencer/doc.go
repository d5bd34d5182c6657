// Package influencer holds the pure core of the finder: the profile model,
// the filter engine and the engagement calculator.
//
// Nothing in this package performs I/O. Every operation takes its inputs by
// value and returns new slices, so callers can reuse the same profile list
// across many searches.
//
// Pipeline:
//
//	matched, err := influencer.Filter(profiles, influencer.Criteria{
//	    Gender:       "female",
//	    Industry:     "fitness",
//	    MinFollowers: "3000",
//	})
//	if err != nil {
//	    // err is an invalid_argument error naming the bad field
//	}
//	results := influencer.Sort(influencer.EnrichAll(matched),
//	    influencer.SortByEngagementRate, influencer.OrderDesc)
//
// Engagement rate is ((avg likes + avg comments) / followers) * 100 rounded
// to two decimals. A profile with no followers has a rate of 0.
package influencer
