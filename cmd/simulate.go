package cmd

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mpetrov/caliber/internal/config"
	"github.com/mpetrov/caliber/internal/engine"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a synthetic attempt stream and print the trajectory",
	Long: "Simulates a learner with a fixed true ability answering adaptively\n" +
		"selected items, and prints how the estimates converge.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate(cmd)
	},
}

func init() {
	simulateCmd.Flags().Float64("ability", 1.0, "True ability of the simulated learner")
	simulateCmd.Flags().Int("attempts", 30, "Number of attempts to simulate")
	simulateCmd.Flags().Int("items", 40, "Size of the item bank")
	simulateCmd.Flags().Int64("seed", 1, "Random seed")
}

func runSimulate(cmd *cobra.Command) error {
	trueAbility, _ := cmd.Flags().GetFloat64("ability")
	attempts, _ := cmd.Flags().GetInt("attempts")
	itemCount, _ := cmd.Flags().GetInt("items")
	seed, _ := cmd.Flags().GetInt64("seed")

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	eng := engine.New(cfg.Engine, zap.NewNop())

	concepts := []string{"variables", "loops", "conditionals", "arrays", "recursion"}
	candidates := make([]string, itemCount)
	for i := 0; i < itemCount; i++ {
		id := fmt.Sprintf("item-%02d", i)
		difficulty := -3 + 6*rng.Float64()
		discrimination := 0.8 + 0.8*rng.Float64()
		eng.CalibrateItem(id, difficulty, discrimination, []string{concepts[i%len(concepts)]})
		candidates[i] = id
	}

	const user = "sim-learner"
	fmt.Printf("true ability %.2f, %d items, %d attempts\n\n", trueAbility, itemCount, attempts)
	fmt.Println("  #  item     correct  ability  stderr  rating   stop")

	for i := 1; i <= attempts; i++ {
		itemID, ok := eng.SelectNextItem(engine.SelectionRequest{
			UserID:     user,
			Candidates: candidates,
		})
		if !ok {
			return fmt.Errorf("no item selectable at attempt %d", i)
		}

		item := eng.GetOrCreateItem(itemID, nil)
		p := 1 / (1 + math.Exp(-item.Discrimination*(trueAbility-item.Difficulty)))
		correct := rng.Float64() < p

		rec := engine.Attempt{
			UserID:      user,
			ItemID:      itemID,
			TimeTakenMs: int64(15000 + rng.Intn(45000)),
		}
		if correct {
			rec.Score = 1
			rec.BinaryScore = 1
		}
		res := eng.ProcessAttempt(rec)

		fmt.Printf("%3d  %-8s %-8v %7.3f  %5.3f  %6.1f  %v\n",
			i, itemID, correct, res.Ability, res.AbilityStdErr, res.Rating, res.StopTesting)

		if i%10 == 0 {
			ev := eng.AdaptDifficulty(user)
			fmt.Printf("     difficulty %.3f -> %.3f (%s)\n",
				ev.OldDifficulty, ev.NewDifficulty, ev.Reason)
		}
	}

	a := eng.GetUserAnalytics(user)
	fmt.Printf("\nfinal ability %.3f ± %.3f (true %.2f), rating %.1f, accuracy %.0f%%\n",
		a.Ability, a.AbilityStdErr, trueAbility, a.Rating, 100*a.Accuracy)
	return nil
}
