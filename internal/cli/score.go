package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
	"github.com/gdugdh24/rentscore-backend/internal/scoring"
)

type scoreOutput struct {
	scoring.PropertyScore
	TrustBadge domain.TrustBadge `json:"trust_badge"`
}

type fairnessOutput struct {
	Price         float64 `json:"price"`
	MarketAverage float64 `json:"market_average"`
	scoring.PriceFairness
}

type badgeOutput struct {
	TrustBadge  domain.TrustBadge `json:"trust_badge"`
	Rank        int               `json:"rank"`
	Credibility int               `json:"credibility"`
}

func newScoreCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "score FILE",
		Short: "Compute the composite quality score of a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := LoadInput(args[0])
			if err != nil {
				return err
			}
			if in.Property == nil {
				return errNoProperty
			}

			score := scoring.ComputePropertyScore(*in.Property, in.Owner)
			opts.log.Debug("property scored",
				zap.Int("total_score", score.TotalScore),
				zap.Bool("owner_known", in.Owner != nil),
			)

			return printJSON(cmd.OutOrStdout(), scoreOutput{
				PropertyScore: score,
				TrustBadge:    scoring.DeriveTrustBadge(in.Owner),
			})
		},
	}
}

func newFairnessCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fairness FILE",
		Short: "Compare a listing price with the city benchmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := LoadInput(args[0])
			if err != nil {
				return err
			}
			if in.Property == nil {
				return errNoProperty
			}

			p := *in.Property
			fairness := scoring.EvaluatePriceFairness(p)
			opts.log.Debug("price evaluated", zap.String("rating", string(fairness.Rating)))

			return printJSON(cmd.OutOrStdout(), fairnessOutput{
				Price:         p.Price,
				MarketAverage: scoring.MarketAverage(p.City, p.Type),
				PriceFairness: fairness,
			})
		},
	}
}

func newMatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match FILE",
		Short: "Match a listing against renter preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := LoadInput(args[0])
			if err != nil {
				return err
			}
			if in.Property == nil {
				return errNoProperty
			}
			if in.Preferences == nil {
				return errNoPreferences
			}

			match := scoring.MatchScore(*in.Property, *in.Preferences)
			opts.log.Debug("preferences matched",
				zap.Int("total_score", match.TotalScore),
				zap.Float64("purpose_multiplier", match.PurposeMultiplier),
			)

			return printJSON(cmd.OutOrStdout(), match)
		},
	}
}

func newBadgeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "badge FILE",
		Short: "Derive the trust badge of an owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := LoadInput(args[0])
			if err != nil {
				return err
			}
			if in.Owner == nil {
				return errNoOwner
			}

			badge := scoring.DeriveTrustBadge(in.Owner)
			opts.log.Debug("badge derived", zap.Stringer("badge", badge))

			return printJSON(cmd.OutOrStdout(), badgeOutput{
				TrustBadge:  badge,
				Rank:        badge.Rank(),
				Credibility: scoring.OwnerCredibility(in.Owner),
			})
		},
	}
}
