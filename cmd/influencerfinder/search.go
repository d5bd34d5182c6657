package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/finder"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/results"
	"influencerfinder/pkg/shortlist"
	"influencerfinder/pkg/ui"
)

// jsonOutput switches result commands to machine readable output.
var jsonOutput bool

type searchOptions struct {
	industry     string
	gender       string
	country      string
	minFollowers string
	maxFollowers string
	sortBy       string
	order        string
	save         string
	notify       bool
}

var searchOpts searchOptions

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search influencers by niche and rank them by engagement",
	Long: `Search influencer profiles matching an industry and optional filters.

Matching profiles are enriched with their recent posts and ranked by
engagement rate, (average likes + average comments) / followers x 100.
The results are remembered so 'select', 'export' and 'browse' can use them.

Sort fields: engagement_rate, followers, avg_likes, avg_comments,
following, posts_count, posts_analyzed.`,
	Example: `  # Female fitness creators between 3k and 10k followers
  influencerfinder search --industry fitness --gender female --min-followers 3000 --max-followers 10000

  # Largest accounts first, as JSON
  influencerfinder search --industry food --sort-by followers --json

  # Save the results as a shortlist
  influencerfinder search --industry vegan --save vegan-q3`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	f := searchCmd.Flags()
	f.StringVarP(&searchOpts.industry, "industry", "i", "", "industry or niche keyword (required)")
	f.StringVarP(&searchOpts.gender, "gender", "g", "", "male, female or all")
	f.StringVar(&searchOpts.country, "country", "", "country or city to match")
	f.StringVar(&searchOpts.minFollowers, "min-followers", "", "minimum follower count")
	f.StringVar(&searchOpts.maxFollowers, "max-followers", "", "maximum follower count")
	f.StringVarP(&searchOpts.sortBy, "sort-by", "s", string(influencer.SortByEngagementRate), "field to sort by")
	f.StringVarP(&searchOpts.order, "order", "o", string(influencer.OrderDesc), "sort order: asc or desc")
	f.StringVar(&searchOpts.save, "save", "", "also save the results as a named shortlist")
	f.BoolVar(&searchOpts.notify, "notify", false, "send a desktop notification when the search finishes")
	f.BoolVar(&jsonOutput, "json", false, "print results as JSON")
	f.IntVarP(&workers, "workers", "w", 0, "concurrent profile enrichments")
	f.StringVar(&cacheBackend, "cache", "", "live response cache: none, memory, redis or memcached")
	f.StringVar(&shortlistDB, "db", "", "shortlist database path")
}

func (o searchOptions) request() finder.Request {
	return finder.Request{
		Criteria: influencer.Criteria{
			Industry:     o.industry,
			Gender:       o.gender,
			Country:      o.country,
			MinFollowers: o.minFollowers,
			MaxFollowers: o.maxFollowers,
		},
		SortBy:    o.sortBy,
		SortOrder: o.order,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(searchOpts.industry) == "" {
		return errs.InvalidArgument("industry", "Industry/niche is required")
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	service, c, err := a.service(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer c.Close()

	out := cmd.OutOrStdout()
	var notifier *ui.Notifier
	if searchOpts.notify {
		notifier = ui.NewNotifier()
	}

	var progress finder.ProgressFunc
	var display *ui.ProgressDisplay
	if !quiet && !jsonOutput {
		display = ui.NewProgressDisplay(cmd.ErrOrStderr(), verbose)
		progress = display.Update
	}

	req := searchOpts.request()
	resp, err := service.SearchWithProgress(cmd.Context(), req, progress)
	if err != nil {
		if notifier != nil {
			notifier.SendError("Search failed", errs.MessageOf(err))
		}
		return err
	}
	if display != nil {
		display.Complete(len(resp.Profiles))
	}

	view := results.NewView(resp.Profiles, influencer.ParseSortField(req.SortBy), influencer.ParseOrder(req.SortOrder))
	if err := a.sessions.Save(view.Snapshot(resp.Mode, req.Criteria)); err != nil {
		a.log.WithError(err).Warn("failed to save search results")
	}

	if jsonOutput {
		if err := writeJSON(out, resp); err != nil {
			return err
		}
	} else {
		ui.PrintResults(out, view)
	}

	if searchOpts.save != "" {
		if err := saveShortlist(cmd, a, searchOpts.save, resp.Mode, req.Criteria, view.Profiles()); err != nil {
			return err
		}
	}

	if notifier != nil {
		notifier.SendSuccess("Search complete", fmt.Sprintf("%d influencers found for %q", len(resp.Profiles), req.Industry))
	}
	return nil
}

func saveShortlist(cmd *cobra.Command, a *app, name, mode string, criteria influencer.Criteria, profiles []influencer.EnrichedProfile) error {
	if err := shortlist.ValidateName(name); err != nil {
		return err
	}
	store, err := a.openShortlists()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), shortlist.Shortlist{
		Name:     name,
		Mode:     mode,
		Criteria: criteria,
		Profiles: profiles,
	}); err != nil {
		return err
	}
	if !jsonOutput {
		ui.PrintSuccess(fmt.Sprintf("Saved %d profiles to shortlist %q", len(profiles), name))
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// engagementCmd represents the engagement command
var engagementCmd = &cobra.Command{
	Use:   "engagement <username>",
	Short: "Show the engagement rate of one profile",
	Long: `Look up a single profile and compute its engagement rate from its
recent posts. A leading @ is ignored.`,
	Example: `  influencerfinder engagement fitness_emma_fit
  influencerfinder engagement @rachel_vegan_life --json`,
	Args: cobra.ExactArgs(1),
	RunE: runEngagement,
}

func init() {
	rootCmd.AddCommand(engagementCmd)
	engagementCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the profile as JSON")
}

func runEngagement(cmd *cobra.Command, args []string) error {
	username := strings.TrimPrefix(strings.TrimSpace(args[0]), "@")
	if username == "" {
		return errs.InvalidArgument("username", "Username is required")
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	service, c, err := a.service(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer c.Close()

	profile, err := service.Engagement(cmd.Context(), username)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), profile)
	}
	ui.PrintProfile(cmd.OutOrStdout(), profile)
	return nil
}
