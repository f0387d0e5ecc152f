package get_available_slots

import (
	"time"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// generateSlots перечисляет свободные окна фиксированной длительности внутри
// диапазона [rangeStart, rangeEnd)
//
// Для каждого календарного дня диапазона строится рабочее окно
// [open:00, close:00) в таймзоне бизнеса, от открытия с шагом длительности
// слота перечисляются слоты; слот, чей конец вышел бы за закрытие,
// отбрасывается (неполных хвостовых слотов нет). Слот попадает в результат,
// только если он целиком лежит в запрошенном диапазоне и не пересекается ни
// с одним занятым интервалом (полуоткрытая семантика: слот, начинающийся
// ровно в конце занятого интервала, допустим).
//
// Результат детерминирован и строго хронологичен; функция не имеет состояния
// и безопасно перевычисляется на каждый запрос.
//
// Сложность O(слоты × занятые интервалы) — достаточно для одной бригады
// с ручным расписанием
func generateSlots(rangeStart, rangeEnd time.Time, busy []domain.ActiveInterval, schedule domain.Schedule) []domain.Interval {
	slots := make([]domain.Interval, 0)

	rangeStart = rangeStart.In(schedule.Location)
	rangeEnd = rangeEnd.In(schedule.Location)

	if !rangeEnd.After(rangeStart) {
		return slots
	}

	step := schedule.SlotDuration()
	if step <= 0 {
		return slots
	}

	firstDay := startOfDay(rangeStart, schedule.Location)
	lastDay := startOfDay(rangeEnd, schedule.Location)

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		window := schedule.DayWindow(day)

		// День с close <= open не даёт слотов; слоты никогда не
		// пересекают полночь
		if !window.End.After(window.Start) {
			continue
		}

		for start := window.Start; !start.Add(step).After(window.End); start = start.Add(step) {
			slot := domain.Interval{Start: start, End: start.Add(step)}

			if slot.Start.Before(rangeStart) || slot.End.After(rangeEnd) {
				continue
			}
			if overlapsAny(slot, busy) {
				continue
			}

			slots = append(slots, slot)
		}
	}

	return slots
}

// overlapsAny проверяет пересечение слота хотя бы с одним занятым интервалом
func overlapsAny(slot domain.Interval, busy []domain.ActiveInterval) bool {
	for _, b := range busy {
		if slot.Overlaps(b.Interval) {
			return true
		}
	}
	return false
}

// startOfDay обнуляет время, оставляя дату в указанной таймзоне
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
