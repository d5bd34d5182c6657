// Package rapidapi provides a client for Instagram data APIs hosted on
// RapidAPI.
//
// Providers on RapidAPI disagree on paths and payload shapes, so the client
// probes a fixed list of search endpoints and normalizes whatever field
// names come back into influencer.Profile values.
//
// This package includes:
//   - A client that authenticates with X-RapidAPI-Key and X-RapidAPI-Host
//   - Outbound rate limiting, retries and optional response caching
//   - Helpers mapping an industry keyword to hashtags
//   - A normalizer that infers country and gender from free text
//
// Example usage:
//
//	client, err := rapidapi.NewClient(rapidapi.Options{
//		Key:  os.Getenv("RAPIDAPI_KEY"),
//		Host: os.Getenv("RAPIDAPI_HOST"),
//	})
//	if err != nil {
//		return err
//	}
//
//	profiles, err := client.Search(ctx, "fitness", 1)
//	if errors.IsUnavailable(err) {
//		// The provider has no search endpoint; fall back to demo mode.
//	}
package rapidapi
