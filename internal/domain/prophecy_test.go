package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sundayDesc  = "เลขมงคลสำหรับคนเกิดวันอาทิตย์"
	tuesdayDesc = "เลขมงคลสำหรับคนเกิดวันอังคาร"
)

// testReferenceData is a deliberately partial table set: three lucky points,
// two groups and advice for Sunday, Tuesday and Friday only.
func testReferenceData() *ReferenceData {
	return &ReferenceData{
		CharValues: map[rune]int{
			'ก': 1, 'ข': 2,
			'1': 1, '2': 2, '3': 3, '4': 4,
		},
		LuckyPoints: []LuckyPoint{
			{Point: 1, Desc: "Test Point 1"},
			{Point: 5, Desc: "Test Point 5"},
			{Point: 9, Desc: "Test Point 9"},
		},
		LuckyPointGroups: []LuckyPointGroup{
			{Group: "best", Points: []int{10, 19, 28}, Desc: "Test Group 1"},
			{Group: "medium", Points: []int{13, 20, 29}, Desc: "Test Group 2"},
		},
		Advice: []LuckyNumberAdvice{
			{Day: Sunday, LuckyNumDesc: sundayDesc, LuckyNum: []int{1, 2}, AvoidNum: []int{}, AvoidChar: []string{}},
			{Day: Friday, LuckyNumDesc: "xxx", LuckyNum: []int{1, 2}, AvoidNum: []int{}, AvoidChar: []string{}},
			{Day: Tuesday, LuckyNumDesc: tuesdayDesc, LuckyNum: []int{1, 2}, AvoidNum: []int{}, AvoidChar: []string{}},
		},
	}
}

// completeReferenceData extends the test tables with all nine lucky points.
func completeReferenceData() *ReferenceData {
	ref := testReferenceData()
	ref.LuckyPoints = nil
	for p := 1; p <= 9; p++ {
		ref.LuckyPoints = append(ref.LuckyPoints, LuckyPoint{Point: p})
	}
	return ref
}

func TestAdviceByPlateData(t *testing.T) {
	p := NewProphet(testReferenceData())

	t.Run("thai characters and numbers", func(t *testing.T) {
		result, err := p.AdviceByPlateData("กข", "1234")
		require.NoError(t, err)

		expected := PlateCalculationResult{
			FirstPart: FirstPart{Value: "กข", Sum: 3},
			SecondPart: SecondPart{
				Value:      "1234",
				Sum:        1,
				LuckyPoint: LuckyPoint{Point: 1, Desc: "Test Point 1"},
			},
			Total: Total{
				Sum:        13,
				LuckyGroup: &LuckyPointGroup{Group: "medium", Points: []int{13, 20, 29}, Desc: "Test Group 2"},
			},
		}
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Fatalf("plate result mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("numeric first part", func(t *testing.T) {
		result, err := p.AdviceByPlateData("1", "234")
		require.NoError(t, err)

		assert.Equal(t, 1, result.FirstPart.Sum)
		assert.Equal(t, 9, result.SecondPart.Sum)
		assert.Equal(t, LuckyPoint{Point: 9, Desc: "Test Point 9"}, result.SecondPart.LuckyPoint)
		assert.Equal(t, 10, result.Total.Sum)
		require.NotNil(t, result.Total.LuckyGroup)
		assert.Equal(t, "best", result.Total.LuckyGroup.Group)
	})

	t.Run("no group for total", func(t *testing.T) {
		result, err := p.AdviceByPlateData("ก", "5")
		require.NoError(t, err)

		assert.Equal(t, 6, result.Total.Sum)
		assert.Nil(t, result.Total.LuckyGroup)
		assert.Equal(t, 5, result.SecondPart.LuckyPoint.Point)
	})

	t.Run("total uses raw second sum", func(t *testing.T) {
		// 9+9+9+1 = 28 raw, displayed as 10, bucket 1.
		result, err := NewProphet(completeReferenceData()).AdviceByPlateData("ก", "9991")
		require.NoError(t, err)

		assert.Equal(t, 10, result.SecondPart.Sum)
		assert.Equal(t, 1, result.SecondPart.LuckyPoint.Point)
		assert.Equal(t, 29, result.Total.Sum)
		require.NotNil(t, result.Total.LuckyGroup)
		assert.Equal(t, "medium", result.Total.LuckyGroup.Group)
	})

	t.Run("missing bucket is a data integrity error", func(t *testing.T) {
		// 1+1 = 2, and bucket 2 is absent from the partial table.
		_, err := p.AdviceByPlateData("ก", "11")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDataIntegrity)
	})

	errorCases := []struct {
		name   string
		first  string
		second string
		want   error
	}{
		{"first part too long", "กขคง", "1234", ErrTooLong},
		{"invalid lead character", "A", "1234", ErrInvalidLeadCharacter},
		{"empty first part", "", "1234", ErrInvalidLeadCharacter},
		{"digit after lead", "ก1", "1234", ErrInvalidCharacter},
		{"second part non-numeric", "กข", "123A", ErrInvalidSecondPart},
		{"second part too long", "กข", "12345", ErrInvalidSecondPart},
		{"second part empty", "กข", "", ErrInvalidSecondPart},
		{"consonant missing from table", "ค", "1", ErrInvalidCharacter},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.AdviceByPlateData(tt.first, tt.second)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, PlateCalculationResult{}, result)
		})
	}
}

func TestAdviceByPlateData_Idempotent(t *testing.T) {
	p := NewProphet(testReferenceData())

	first, err := p.AdviceByPlateData("กข", "1234")
	require.NoError(t, err)
	second, err := p.AdviceByPlateData("กข", "1234")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAdviceByDMY(t *testing.T) {
	p := NewProphet(testReferenceData())

	tests := []struct {
		name             string
		day, month, year string
		wantDesc         string
		wantErr          error
	}{
		{"sunday", "01", "01", "2023", sundayDesc, nil},
		{"unpadded month and day", "1", "1", "2023", sundayDesc, nil},
		{"friday", "06", "01", "2023", "xxx", nil},
		{"tuesday", "03", "01", "2023", tuesdayDesc, nil},
		{"day out of range", "32", "01", "2023", "", ErrInvalidDateFormat},
		{"not a leap year", "29", "02", "2023", "", ErrInvalidDateFormat},
		{"month out of range", "01", "13", "2023", "", ErrInvalidDateFormat},
		{"non-numeric", "aa", "01", "2023", "", ErrInvalidDateFormat},
		{"short year", "01", "01", "23", "", ErrInvalidDateFormat},
		{"leap day without advice", "29", "02", "2024", "", ErrNoAdviceFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice, err := p.AdviceByDMY(tt.day, tt.month, tt.year)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, advice.LuckyNumDesc)
		})
	}
}

func TestAdviceByWeekDay(t *testing.T) {
	p := NewProphet(testReferenceData())

	t.Run("sunday", func(t *testing.T) {
		advice, err := p.AdviceByWeekDay(Sunday)
		require.NoError(t, err)
		assert.Equal(t, sundayDesc, advice.LuckyNumDesc)
	})

	t.Run("monday has no advice", func(t *testing.T) {
		_, err := p.AdviceByWeekDay(Monday)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoAdviceFound)
		assert.Contains(t, err.Error(), "no advice found")
	})

	t.Run("wednesday night is looked up directly", func(t *testing.T) {
		ref := testReferenceData()
		ref.Advice = append(ref.Advice, LuckyNumberAdvice{Day: WednesdayNight, LuckyNumDesc: "night"})

		advice, err := NewProphet(ref).AdviceByWeekDay(WednesdayNight)
		require.NoError(t, err)
		assert.Equal(t, "night", advice.LuckyNumDesc)
	})

	t.Run("out of range day", func(t *testing.T) {
		_, err := p.AdviceByWeekDay(WeekDay(9))
		assert.ErrorIs(t, err, ErrNoAdviceFound)
	})
}

func TestAdviceForToday(t *testing.T) {
	p := NewProphet(testReferenceData())
	t.Cleanup(func() { SetClock(nil) })

	// 10:00 UTC on Friday 2024-04-26 is 17:00 Friday in Thailand.
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, time.April, 26, 10, 0, 0, 0, time.UTC)))
	advice, err := p.AdviceForToday()
	require.NoError(t, err)
	assert.Equal(t, "xxx", advice.LuckyNumDesc)

	// 20:00 UTC the same day is already Saturday in Thailand.
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, time.April, 26, 20, 0, 0, 0, time.UTC)))
	assert.Equal(t, Saturday, Today())
	_, err = p.AdviceForToday()
	assert.ErrorIs(t, err, ErrNoAdviceFound)
}

func TestWeekDayString(t *testing.T) {
	tests := []struct {
		day  WeekDay
		want string
	}{
		{Sunday, "Sunday"},
		{Wednesday, "Wednesday"},
		{Saturday, "Saturday"},
		{WednesdayNight, "Wednesday (Night)"},
		{WeekDay(8), "Unknown"},
		{WeekDay(-1), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.day.String())
			assert.Equal(t, tt.want != "Unknown", tt.day.Valid())
		})
	}
}

func TestSetClock(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	assert.Equal(t, fixedTime, clock.Now())

	SetClock(nil)
	assert.True(t, time.Since(clock.Now()) < time.Second)
}

func TestResultsDoNotShareTables(t *testing.T) {
	p := NewProphet(testReferenceData())

	t.Run("plate group", func(t *testing.T) {
		first, err := p.AdviceByPlateData("กข", "1234")
		require.NoError(t, err)
		require.NotNil(t, first.Total.LuckyGroup)
		first.Total.LuckyGroup.Points[0] = 999

		second, err := p.AdviceByPlateData("กข", "1234")
		require.NoError(t, err)
		assert.Equal(t, []int{13, 20, 29}, second.Total.LuckyGroup.Points)
	})

	t.Run("weekday advice", func(t *testing.T) {
		first, err := p.AdviceByWeekDay(Sunday)
		require.NoError(t, err)
		first.LuckyNum[0] = 42
		first.AvoidNum = append(first.AvoidNum, 7)
		first.AvoidChar = append(first.AvoidChar, "ก")

		second, err := p.AdviceByWeekDay(Sunday)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, second.LuckyNum)
		assert.Equal(t, []int{}, second.AvoidNum)
		assert.Equal(t, []string{}, second.AvoidChar)
	})
}
