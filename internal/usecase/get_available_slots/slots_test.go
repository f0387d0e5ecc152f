package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

func testSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return domain.Schedule{
		SlotDurationMinutes: 60,
		OpenHour:            9,
		CloseHour:           18,
		Location:            loc,
	}
}

func at(t *testing.T, loc *time.Location, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04", value, loc)
	require.NoError(t, err)
	return parsed
}

func slotStarts(slots []domain.Interval) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start.Format("15:04"))
	}
	return starts
}

func TestGenerateSlots_FullDayNoBusy(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	slots := generateSlots(
		at(t, loc, "2026-09-01T00:00"),
		at(t, loc, "2026-09-02T00:00"),
		nil,
		schedule,
	)

	// Рабочий день 09:00-18:00 с часовыми слотами: 9 слотов
	require.Len(t, slots, 9)
	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00",
	}, slotStarts(slots))

	// Последний слот заканчивается ровно в закрытие
	assert.Equal(t, "18:00", slots[8].End.Format("15:04"))
}

func TestGenerateSlots_BusyIntervalExcluded(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	busy := []domain.ActiveInterval{
		{BookingID: 7, Interval: domain.Interval{
			Start: at(t, loc, "2026-09-01T13:00"),
			End:   at(t, loc, "2026-09-01T14:00"),
		}},
	}

	slots := generateSlots(
		at(t, loc, "2026-09-01T00:00"),
		at(t, loc, "2026-09-02T00:00"),
		busy,
		schedule,
	)

	// Слот 13:00 занят; 14:00 начинается ровно в конце занятого окна
	// и потому допустим
	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00",
		"14:00", "15:00", "16:00", "17:00",
	}, slotStarts(slots))
}

func TestGenerateSlots_OffGridBusyBlocksNeighbors(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	// Занятое окно 13:30-14:30 пересекает оба слота 13:00 и 14:00
	busy := []domain.ActiveInterval{
		{BookingID: 7, Interval: domain.Interval{
			Start: at(t, loc, "2026-09-01T13:30"),
			End:   at(t, loc, "2026-09-01T14:30"),
		}},
	}

	slots := generateSlots(
		at(t, loc, "2026-09-01T00:00"),
		at(t, loc, "2026-09-02T00:00"),
		busy,
		schedule,
	)

	assert.NotContains(t, slotStarts(slots), "13:00")
	assert.NotContains(t, slotStarts(slots), "14:00")
	assert.Contains(t, slotStarts(slots), "12:00")
	assert.Contains(t, slotStarts(slots), "15:00")
}

func TestGenerateSlots_RangeClampsPartialSlots(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	// Диапазон [09:30, 11:00): слот 09:00 начинается до диапазона,
	// слот 10:00 влезает целиком
	slots := generateSlots(
		at(t, loc, "2026-09-01T09:30"),
		at(t, loc, "2026-09-01T11:00"),
		nil,
		schedule,
	)

	assert.Equal(t, []string{"10:00"}, slotStarts(slots))
}

func TestGenerateSlots_MultiDayRange(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	slots := generateSlots(
		at(t, loc, "2026-09-01T00:00"),
		at(t, loc, "2026-09-03T00:00"),
		nil,
		schedule,
	)

	// Два полных рабочих дня
	require.Len(t, slots, 18)
	assert.Equal(t, 1, slots[0].Start.Day())
	assert.Equal(t, 2, slots[17].Start.Day())

	// Хронологический порядок
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].Start.After(slots[i-1].Start))
	}
}

func TestGenerateSlots_DegenerateRange(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	point := at(t, loc, "2026-09-01T12:00")

	assert.Empty(t, generateSlots(point, point, nil, schedule))
	assert.Empty(t, generateSlots(point, point.Add(-time.Hour), nil, schedule))
}

func TestGenerateSlots_ClosedDayYieldsNothing(t *testing.T) {
	schedule := testSchedule(t)
	schedule.OpenHour = 18
	schedule.CloseHour = 9
	loc := schedule.Location

	slots := generateSlots(
		at(t, loc, "2026-09-01T00:00"),
		at(t, loc, "2026-09-02T00:00"),
		nil,
		schedule,
	)

	assert.Empty(t, slots)
}

func TestGenerateSlots_TrailingPartialSlotDropped(t *testing.T) {
	schedule := testSchedule(t)
	schedule.SlotDurationMinutes = 50
	loc := schedule.Location

	slots := generateSlots(
		at(t, loc, "2026-09-01T00:00"),
		at(t, loc, "2026-09-02T00:00"),
		nil,
		schedule,
	)

	// 9 часов / 50 минут = 10 полных слотов, хвост 40 минут отбрасывается
	require.Len(t, slots, 10)
	last := slots[len(slots)-1]
	assert.False(t, last.End.After(at(t, loc, "2026-09-01T18:00")))
}
