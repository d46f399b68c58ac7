package main

import (
	"github.com/spf13/cobra"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

func loadPrefs(path string) (models.TripPreferences, error) {
	var prefs models.TripPreferences
	err := loadFixture(path, &prefs)
	return prefs, err
}

func newTradeoffsCmd(a *app) *cobra.Command {
	var prefsFile string
	cmd := &cobra.Command{
		Use:   "tradeoffs --prefs FILE",
		Short: "Detect conflicting preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := loadPrefs(prefsFile)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), a.planner.Tradeoffs(cmd.Context(), prefs))
		},
	}
	cmd.Flags().StringVar(&prefsFile, "prefs", "", "Trip preferences file (required)")
	_ = cmd.MarkFlagRequired("prefs")
	return cmd
}

func newResolveCmd(a *app) *cobra.Command {
	var (
		prefsFile string
		req       models.ResolveRequest
	)
	cmd := &cobra.Command{
		Use:   "resolve --prefs FILE --tradeoff ID --option ID",
		Short: "Apply a resolution and print the updated preferences",
		Long: `Apply a resolution option to a detected tradeoff. Tradeoffs are detected
first, so the preferences file does not need to carry them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := loadPrefs(prefsFile)
			if err != nil {
				return err
			}
			prefs = a.planner.Tradeoffs(cmd.Context(), prefs).Preferences
			out, err := a.planner.Resolve(cmd.Context(), prefs, req.TradeoffID, req.OptionID, req.CustomText)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&prefsFile, "prefs", "", "Trip preferences file (required)")
	cmd.Flags().StringVar(&req.TradeoffID, "tradeoff", "", "Tradeoff id (required)")
	cmd.Flags().StringVar(&req.OptionID, "option", "", "Resolution option id (required)")
	cmd.Flags().StringVar(&req.CustomText, "text", "", "Free text for the custom option")
	_ = cmd.MarkFlagRequired("prefs")
	_ = cmd.MarkFlagRequired("tradeoff")
	_ = cmd.MarkFlagRequired("option")
	return cmd
}

func newAreasCmd(a *app) *cobra.Command {
	var (
		prefsFile    string
		evidenceFile string
		opts         models.DiscoverOptions
	)
	cmd := &cobra.Command{
		Use:   "areas --prefs FILE [--evidence FILE]",
		Short: "Rank candidate areas for the destination",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := loadPrefs(prefsFile)
			if err != nil {
				return err
			}
			var evidence []models.Evidence
			if evidenceFile != "" {
				if err := loadFixture(evidenceFile, &evidence); err != nil {
					return err
				}
			}
			report, err := a.planner.Discover(cmd.Context(), prefs, evidence, opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVar(&prefsFile, "prefs", "", "Trip preferences file (required)")
	cmd.Flags().StringVar(&evidenceFile, "evidence", "", "Evidence list file")
	cmd.Flags().BoolVar(&opts.ValidateGeo, "validate-geo", false, "Drop areas too far from the destination center (needs --db)")
	cmd.Flags().BoolVar(&opts.ValidateHotels, "validate-hotels", false, "Drop areas without hotel inventory (needs --db)")
	_ = cmd.MarkFlagRequired("prefs")
	return cmd
}

func newScheduleCmd(a *app) *cobra.Command {
	var prefsFile string
	cmd := &cobra.Command{
		Use:   "schedule --prefs FILE",
		Short: "Draft a day-by-day schedule from the selected activities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := loadPrefs(prefsFile)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), a.planner.Schedule(cmd.Context(), prefs))
		},
	}
	cmd.Flags().StringVar(&prefsFile, "prefs", "", "Trip preferences file (required)")
	_ = cmd.MarkFlagRequired("prefs")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var prefsFile, itineraryFile string
	cmd := &cobra.Command{
		Use:   "check --prefs FILE --itinerary FILE",
		Short: "Run the quality gate over an itinerary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := loadPrefs(prefsFile)
			if err != nil {
				return err
			}
			var it models.Itinerary
			if err := loadFixture(itineraryFile, &it); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), a.planner.Check(cmd.Context(), it, prefs))
		},
	}
	cmd.Flags().StringVar(&prefsFile, "prefs", "", "Trip preferences file (required)")
	cmd.Flags().StringVar(&itineraryFile, "itinerary", "", "Itinerary file (required)")
	_ = cmd.MarkFlagRequired("prefs")
	_ = cmd.MarkFlagRequired("itinerary")
	return cmd
}
