package engine

// Trigger is the event category a quest accumulates progress from.
type Trigger string

const (
	TriggerCatchAny  Trigger = "CATCH_ANY"
	TriggerCatchRare Trigger = "CATCH_RARE"
	TriggerEarnGold  Trigger = "EARN_GOLD"
)

// QuestTemplate is one deterministic board entry. The board always refreshes
// to this exact set, only the ids are fresh.
type QuestTemplate struct {
	Trigger     Trigger
	Description string
	Target      int64
	Reward      int64
}

var questTemplates = []QuestTemplate{
	{Trigger: TriggerCatchAny, Description: "Catch 5 Fish", Target: 5, Reward: 50},
	{Trigger: TriggerEarnGold, Description: "Earn 100 Gold", Target: 100, Reward: 100},
	{Trigger: TriggerCatchRare, Description: "Catch 1 Rare or better Fish", Target: 1, Reward: 200},
}

func QuestBoardTemplates() []QuestTemplate {
	out := make([]QuestTemplate, len(questTemplates))
	copy(out, questTemplates)
	return out
}

// Claimable is the single definition of a finished quest: target reached and
// reward not yet taken. Progress itself never clamps; hitting 7/5 is fine.
func Claimable(progress, target int64, claimed bool) bool {
	return progress >= target && !claimed
}
