package commands

import (
	"github.com/beetlebot/flyguide/internal/core"
	"github.com/beetlebot/flyguide/internal/links"
	"github.com/spf13/cobra"
)

func GuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Find sights, food and places to stay at a destination",
	}
	cmd.AddCommand(guideInspireCmd())
	cmd.AddCommand(guideStaysCmd())
	cmd.AddCommand(guideExploreCmd())
	return cmd
}

type placeLinks struct {
	ID     string `json:"id"`
	MapURL string `json:"mapUrl"`
}

type guideResult struct {
	*core.TravelResponse
	MapEmbedURL string       `json:"mapEmbedUrl"`
	Links       []placeLinks `json:"links"`
}

type guideFlags struct {
	to, accomType, price, category, foodTag, near, keyword string
}

func runGuide(cmd *cobra.Command, mode core.TravelMode, f guideFlags) error {
	if f.to == "" {
		return cmd.Help()
	}
	e := setup(cmd)

	params, err := f.params(mode)
	if err != nil {
		return fail(err)
	}
	if err := params.Validate(); err != nil {
		return fail(err)
	}

	pipeline, err := e.pipeline()
	if err != nil {
		return fail(err)
	}
	resp, err := pipeline.SearchGuide(cmd.Context(), params)
	if err != nil {
		return fail(err)
	}

	result := guideResult{
		TravelResponse: resp,
		MapEmbedURL:    links.MapEmbedURL(resp.MapCenter),
		Links:          make([]placeLinks, 0, len(resp.Recommendations)),
	}
	for _, r := range resp.Recommendations {
		result.Links = append(result.Links, placeLinks{ID: r.ID, MapURL: links.MapSearchURL(r.Location)})
	}
	return emit(cmd, result)
}

func (f guideFlags) params(mode core.TravelMode) (core.TravelParams, error) {
	p := core.TravelParams{Mode: mode, Keyword: f.keyword, CenterLocation: f.near}

	var err error
	if p.Destination, err = core.ParseDestination(f.to); err != nil {
		return p, core.NewValidationError("to", err.Error())
	}
	if f.accomType != "" {
		if p.AccomType, err = core.ParseAccommodationType(f.accomType); err != nil {
			return p, core.NewValidationError("type", err.Error())
		}
	}
	if f.price != "" {
		if p.PriceLevel, err = core.ParsePriceLevel(f.price); err != nil {
			return p, core.NewValidationError("price", err.Error())
		}
	}
	if f.category != "" {
		if p.Category, err = core.ParseCategory(f.category); err != nil {
			return p, core.NewValidationError("category", err.Error())
		}
	}
	if f.foodTag != "" {
		if p.FoodTag, err = core.ParseFoodTag(f.foodTag); err != nil {
			return p, core.NewValidationError("food-tag", err.Error())
		}
	}
	return p, nil
}

func guideInspireCmd() *cobra.Command {
	var f guideFlags
	cmd := &cobra.Command{
		Use:     "inspire",
		Short:   "Classic must-see and must-eat picks for a first visit",
		Example: `  flyguide guide inspire --to fukuoka`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuide(cmd, core.ModeInspiration, f)
		},
	}
	cmd.Flags().StringVar(&f.to, "to", "", "Destination city or airport code (required)")
	return cmd
}

func guideStaysCmd() *cobra.Command {
	var f guideFlags
	cmd := &cobra.Command{
		Use:   "stays",
		Short: "Recommend places to stay",
		Example: `  flyguide guide stays --to tokyo --type near-subway --price mid
  flyguide guide stays --to sapporo --type resort --keyword "open-air bath"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuide(cmd, core.ModeAccommodation, f)
		},
	}
	cmd.Flags().StringVar(&f.to, "to", "", "Destination city or airport code (required)")
	cmd.Flags().StringVar(&f.accomType, "type", "budget", "Lodging type: budget, homestay, near-subway, near-airport, resort, capsule, luxury")
	cmd.Flags().StringVar(&f.price, "price", "any", "Nightly budget: any, low, mid, high")
	cmd.Flags().StringVar(&f.keyword, "keyword", "", "Free-text preference")
	return cmd
}

func guideExploreCmd() *cobra.Command {
	var f guideFlags
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Find food, sights or shopping around a place",
		Example: `  flyguide guide explore --to osaka --category food --food-tag ramen
  flyguide guide explore --to osaka --category shopping --near "Hotel Nikko Osaka"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuide(cmd, core.ModeExplore, f)
		},
	}
	cmd.Flags().StringVar(&f.to, "to", "", "Destination city or airport code (required)")
	cmd.Flags().StringVar(&f.category, "category", "food", "Category: food, spot, shopping")
	cmd.Flags().StringVar(&f.foodTag, "food-tag", "any", "Food type: any, yakiniku, hotpot, ramen, sushi, izakaya, cafe, street-food")
	cmd.Flags().StringVar(&f.near, "near", "", "Anchor point, e.g. your hotel (default: the city's main station)")
	cmd.Flags().StringVar(&f.keyword, "keyword", "", "Free-text preference")
	return cmd
}
