package risk

// Urgency ranks a recommended action.
type Urgency string

const (
	UrgencyHigh   Urgency = "HIGH"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyLow    Urgency = "LOW"
)

// Action is one suggested operational step for a rake at a given risk tier.
type Action struct {
	Action  string
	Detail  string
	Urgency Urgency
}

// Recommend returns the suggested actions for a risk tier, in fixed order.
func Recommend(tier Tier) []Action {
	switch tier {
	case TierHigh:
		return []Action{
			{Action: "assign_trucks", Detail: "Assign 5 trucks to Block 3", Urgency: UrgencyHigh},
			{Action: "increase_manpower", Detail: "Increase manpower by 3", Urgency: UrgencyHigh},
		}
	case TierMedium:
		return []Action{
			{Action: "add_worker", Detail: "Add 1 extra worker", Urgency: UrgencyMedium},
		}
	default:
		return []Action{
			{Action: "monitor", Detail: "Continue monitoring", Urgency: UrgencyLow},
		}
	}
}
