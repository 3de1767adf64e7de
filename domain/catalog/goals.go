package catalog

import (
	"fmt"
	"math/rand"
	"sort"

	"prospector/domain/entities"
	"prospector/domain/events"
	"prospector/domain/utils"
)

// GoalUpdateFunc inspects one economy event and mutates one goal's progress.
// It returns true only when it actually changed the instance; the dispatcher
// uses that to decide which goals to persist and check for completion.
type GoalUpdateFunc func(goal *entities.GoalInstance, event events.EconomyEvent) bool

// GoalDefinition is one entry in the static daily goal pool.
type GoalDefinition struct {
	ID string
	// Target sizes the goal from the actor's economy snapshot. Evaluated
	// exactly once, at selection time.
	Target func(actor entities.EconomyActor) int64
	// Description renders a human-readable goal line for a frozen target.
	Description func(target int64) string
	Update      GoalUpdateFunc
}

// GoalRegistry is an immutable id-indexed catalog of goal definitions.
type GoalRegistry struct {
	defs map[string]GoalDefinition
	ids  []string
}

// NewGoalRegistry builds a registry from the given definitions.
func NewGoalRegistry(defs ...GoalDefinition) *GoalRegistry {
	m := make(map[string]GoalDefinition, len(defs))
	ids := make([]string, 0, len(defs))
	for _, def := range defs {
		if _, exists := m[def.ID]; !exists {
			ids = append(ids, def.ID)
		}
		m[def.ID] = def
	}
	sort.Strings(ids)

	return &GoalRegistry{defs: m, ids: ids}
}

// Get returns the definition for a goal id. A miss is not fatal: persisted
// goal rows may reference ids retired from the catalog.
func (r *GoalRegistry) Get(id string) (GoalDefinition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// Len returns the number of registered definitions.
func (r *GoalRegistry) Len() int {
	return len(r.ids)
}

// SelectDaily draws n distinct definitions uniformly at random without
// replacement. When n exceeds the pool size the whole pool is returned.
func (r *GoalRegistry) SelectDaily(n int) []GoalDefinition {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	if n > len(ids) {
		n = len(ids)
	}

	selected := make([]GoalDefinition, 0, n)
	for _, id := range ids[:n] {
		selected = append(selected, r.defs[id])
	}
	return selected
}

// GameIDHigherLower is the game id the streak goal watches for.
const GameIDHigherLower = "higherorlower"

// higherLowerStep is the coin payout per correct higher-or-lower guess; the
// streak length is recovered by dividing the payout by it.
const higherLowerStep = 1_000

// giftThreshold is the minimum transfer that counts as a gift.
const giftThreshold = 2_500

func randRange(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// DefaultGoals returns the standard nine-goal daily pool.
func DefaultGoals() []GoalDefinition {
	return []GoalDefinition{
		{
			ID: "lotto",
			Target: func(entities.EconomyActor) int64 {
				return randRange(1, 3)
			},
			Description: func(target int64) string {
				return fmt.Sprintf("Buy %d lottery ticket", target)
			},
			Update: func(goal *entities.GoalInstance, event events.EconomyEvent) bool {
				purchase, ok := event.(events.ShopPurchaseEvent)
				if !ok || purchase.ItemID != ItemLottoTicket {
					return false
				}

				goal.Complete()
				return true
			},
		},
		{
			ID: "gift",
			Target: func(entities.EconomyActor) int64 {
				return 1
			},
			Description: func(int64) string {
				return "Send a gift"
			},
			Update: func(goal *entities.GoalInstance, event events.EconomyEvent) bool {
				transfer, ok := event.(events.TransferEvent)
				if !ok || transfer.Amount < giftThreshold {
					return false
				}

				goal.Complete()
				return true
			},
		},
		{
			ID: "win10",
			Target: func(entities.EconomyActor) int64 {
				return randRange(7, 10)
			},
			Description: func(target int64) string {
				return fmt.Sprintf("Win %d times", target)
			},
			Update: func(goal *entities.GoalInstance, event events.EconomyEvent) bool {
				game, ok := event.(events.GameResultEvent)
				if !ok || game.Payout <= 0 {
					return false
				}

				goal.AdvanceProgress(1)
				return true
			},
		},
		{
			ID: "higherlower",
			Target: func(entities.EconomyActor) int64 {
				return randRange(4, 8)
			},
			Description: func(target int64) string {
				return fmt.Sprintf("Hit a streak of %dx on Higher or Lower", target)
			},
			Update: func(goal *entities.GoalInstance, event events.EconomyEvent) bool {
				game, ok := event.(events.GameResultEvent)
				if !ok || game.GameID != GameIDHigherLower {
					return false
				}

				// The payout encodes the streak length; later runs overwrite
				// rather than accumulate.
				goal.SetProgress(game.Payout / higherLowerStep)
				return true
			},
		},
		{
			ID: "winmaxbet",
			Target: func(actor entities.EconomyActor) int64 {
				target := actor.MaxBet()
				if coins := actor.Coins(); coins < target {
					target = coins
				}
				return target
			},
			Description: func(target int64) string {
				return fmt.Sprintf("Win %s coins", utils.FormatShortNotation(target))
			},
			Update: func(goal *entities.GoalInstance, event events.EconomyEvent) bool {
				game, ok := event.(events.GameResultEvent)
				if !ok || game.Payout <= 0 {
					return false
				}

				goal.AdvanceProgress(game.Payout)
				return true
			},
		},
		{
			ID: "win3row",
			Target: func(entities.EconomyActor) int64 {
				return 3
			},
			Description: func(int64) string {
				return "Win 3 times in a row"
			},
			Update: func(goal *entities.GoalInstance, event events.EconomyEvent) bool {
				game, ok := event.(events.GameResultEvent)
				if !ok {
					return false
				}

				if game.Payout <= 0 {
					goal.ResetProgress()
					return false
				}

				goal.AdvanceProgress(1)
				return true
			},
		},
		{
			ID: "allin",
			Target: func(actor entities.EconomyActor) int64 {
				target := actor.Coins()
				if target < 1_000 {
					target = 1_000
				}
				if max := actor.MaxBet(); target > max {
					target = max
				}
				return target
			},
			Description: func(target int64) string {
				return fmt.Sprintf("Go all in (%s)", utils.FormatShortNotation(target))
			},
			Update: func(goal *entities.GoalInstance, event events.EconomyEvent) bool {
				game, ok := event.(events.GameResultEvent)
				if !ok {
					return false
				}

				payout := game.Payout
				if payout < 0 {
					payout = -payout
				}

				// Only a single wager of the full target counts: progress is
				// reported changed solely when the goal completes, so partial
				// magnitudes are never persisted.
				goal.AdvanceProgress(payout)
				return goal.IsComplete()
			},
		},
		{
			ID: "sendcoins",
			Target: func(actor entities.EconomyActor) int64 {
				target := actor.Coins() / 10
				if max := actor.MaxBet() / 10; target > max {
					target = max
				}
				if target < giftThreshold {
					target = giftThreshold
				}
				return target
			},
			Description: func(target int64) string {
				return fmt.Sprintf("Send coins (%s)", utils.FormatShortNotation(target))
			},
			Update: func(goal *entities.GoalInstance, event events.EconomyEvent) bool {
				transfer, ok := event.(events.TransferEvent)
				if !ok {
					return false
				}

				goal.AdvanceProgress(transfer.Amount)
				return true
			},
		},
		{
			ID: "work",
			Target: func(entities.EconomyActor) int64 {
				return randRange(3, 7)
			},
			Description: func(target int64) string {
				return fmt.Sprintf("Work or Dig %dx times", target)
			},
			Update: func(goal *entities.GoalInstance, event events.EconomyEvent) bool {
				if _, ok := event.(events.WorkEvent); !ok {
					return false
				}

				goal.AdvanceProgress(1)
				return true
			},
		},
	}
}

// NewDefaultGoalRegistry builds a registry holding the standard pool.
func NewDefaultGoalRegistry() *GoalRegistry {
	return NewGoalRegistry(DefaultGoals()...)
}

// DescribeGoal renders the progress line for a goal instance, falling back
// to the raw id when the definition has been retired from the catalog.
func DescribeGoal(registry *GoalRegistry, goal *entities.GoalInstance) string {
	title := goal.GoalID
	if def, ok := registry.Get(goal.GoalID); ok {
		title = def.Description(goal.Target)
	}

	return fmt.Sprintf("**%s**\nProgress: `%s/%s`", title,
		utils.FormatShortNotation(goal.Progress),
		utils.FormatShortNotation(goal.Target))
}
