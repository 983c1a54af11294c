package domain

// WeekDay indexes weekday advice. Values 0–6 follow time.Weekday; 7 is
// Wednesday night.
type WeekDay int

const (
	Sunday WeekDay = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	WednesdayNight
)

func (d WeekDay) String() string {
	switch d {
	case Sunday:
		return "Sunday"
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case WednesdayNight:
		return "Wednesday (Night)"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the eight advice days.
func (d WeekDay) Valid() bool {
	return d >= Sunday && d <= WednesdayNight
}

// LuckyPoint describes one of the nine numerological buckets.
type LuckyPoint struct {
	Point int    `json:"point"`
	Desc  string `json:"desc"`
}

// LuckyPointGroup is a named category of raw plate totals. Membership is by
// exact value.
type LuckyPointGroup struct {
	Group  string `json:"group"`
	Points []int  `json:"points"`
	Desc   string `json:"desc"`
}

// Contains reports whether sum is one of the group's points.
func (g LuckyPointGroup) Contains(sum int) bool {
	for _, p := range g.Points {
		if p == sum {
			return true
		}
	}
	return false
}

// LuckyNumberAdvice is the advice record for one birth weekday.
type LuckyNumberAdvice struct {
	Day           WeekDay  `json:"day"`
	LuckyNumDesc  string   `json:"lucky_num_desc"`
	LuckyNum      []int    `json:"lucky_num"`
	AvoidNumDesc  string   `json:"avoid_num_desc"`
	AvoidNum      []int    `json:"avoid_num"`
	AvoidCharDesc string   `json:"avoid_char_desc"`
	AvoidChar     []string `json:"avoid_char"`
}

// FirstPart is the character group of a plate and its value sum.
type FirstPart struct {
	Value string `json:"value"`
	Sum   int    `json:"sum"`
}

// SecondPart is the digit group of a plate. Sum holds the display sum, not
// the raw one.
type SecondPart struct {
	Value      string     `json:"value"`
	Sum        int        `json:"sum"`
	LuckyPoint LuckyPoint `json:"luckyPoint"`
}

// Total is the raw plate sum. LuckyGroup is nil when no group contains it.
type Total struct {
	Sum        int              `json:"sum"`
	LuckyGroup *LuckyPointGroup `json:"luckyGroup"`
}

// PlateCalculationResult is the full breakdown returned by AdviceByPlateData.
type PlateCalculationResult struct {
	FirstPart  FirstPart  `json:"firstPart"`
	SecondPart SecondPart `json:"secondPart"`
	Total      Total      `json:"total"`
}
