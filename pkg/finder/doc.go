// Package finder runs influencer searches end to end.
//
// A Service pulls candidate profiles from a ProfileSource, applies the
// filter criteria, attaches engagement metrics and sorts the result:
//
//	svc := finder.New(finder.NewDemoSource(), finder.Options{Workers: 4})
//	resp, err := svc.Search(ctx, finder.Request{
//		Criteria: influencer.Criteria{Gender: "female", MinFollowers: "3000"},
//	})
//
// Two sources exist. DemoSource serves the bundled catalog; LiveSource
// asks a RapidAPI provider and fetches recent posts for each candidate
// through the enricher worker pool.
package finder
