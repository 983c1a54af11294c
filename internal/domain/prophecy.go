package domain

import (
	"time"
)

// thailand is the zone used to decide what "today" is. Thailand has no
// daylight saving, so a fixed offset avoids depending on tzdata.
var thailand = time.FixedZone("ICT", 7*60*60)

// Prophet answers advice queries against one set of reference tables.
type Prophet struct {
	ref *ReferenceData
}

// NewProphet captures ref. The tables must not be modified afterwards.
func NewProphet(ref *ReferenceData) *Prophet {
	return &Prophet{ref: ref}
}

// ReferenceData exposes the tables the prophet was built with.
func (p *Prophet) ReferenceData() *ReferenceData {
	return p.ref
}

// AdviceByPlateData computes the numerological breakdown of a plate.
func (p *Prophet) AdviceByPlateData(firstPart, secondPart string) (PlateCalculationResult, error) {
	if err := ValidateFirstPart(firstPart); err != nil {
		return PlateCalculationResult{}, err
	}
	if err := ValidateSecondPart(secondPart); err != nil {
		return PlateCalculationResult{}, err
	}

	firstSum, err := p.ref.SumOf(firstPart)
	if err != nil {
		return PlateCalculationResult{}, err
	}
	secondRawSum, err := p.ref.SumOf(secondPart)
	if err != nil {
		return PlateCalculationResult{}, err
	}

	luckyPoint, err := p.ref.LookupLuckyPoint(secondRawSum)
	if err != nil {
		return PlateCalculationResult{}, err
	}

	total := firstSum + secondRawSum
	group, _ := p.ref.LookupLuckyPointGroup(total)

	return PlateCalculationResult{
		FirstPart: FirstPart{
			Value: firstPart,
			Sum:   firstSum,
		},
		SecondPart: SecondPart{
			Value:      secondPart,
			Sum:        DisplaySum(secondRawSum),
			LuckyPoint: luckyPoint,
		},
		Total: Total{
			Sum:        total,
			LuckyGroup: group,
		},
	}, nil
}

// AdviceByDMY resolves the weekday of a calendar date and returns its
// advice. Month and day may be zero padded or not; the year has four digits.
func (p *Prophet) AdviceByDMY(day, month, year string) (LuckyNumberAdvice, error) {
	t, err := parseDMY(day, month, year)
	if err != nil {
		return LuckyNumberAdvice{}, err
	}
	return p.AdviceByWeekDay(WeekDay(t.Weekday()))
}

// AdviceByWeekDay returns the advice for day, including WednesdayNight.
func (p *Prophet) AdviceByWeekDay(day WeekDay) (LuckyNumberAdvice, error) {
	return p.ref.LookupAdviceByWeekday(day)
}

// AdviceForToday returns the advice for the current weekday in Thailand.
// Wednesday night is never selected.
func (p *Prophet) AdviceForToday() (LuckyNumberAdvice, error) {
	return p.AdviceByWeekDay(Today())
}

// Today is the current weekday in Thailand according to the package clock.
func Today() WeekDay {
	return WeekDay(clock.Now().In(thailand).Weekday())
}

func parseDMY(day, month, year string) (time.Time, error) {
	t, err := time.Parse("2006-1-2", year+"-"+month+"-"+day)
	if err != nil {
		return time.Time{}, newError(KindInvalidDateFormat, "invalid date format: %s-%s-%s", year, month, day)
	}
	return t, nil
}
