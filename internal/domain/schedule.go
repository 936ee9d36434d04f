package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// Weekday: день недели в формате внешнего API.
type Weekday string

const (
	Monday    Weekday = "LUNES"
	Tuesday   Weekday = "MARTES"
	Wednesday Weekday = "MIERCOLES"
	Thursday  Weekday = "JUEVES"
	Friday    Weekday = "VIERNES"
	Saturday  Weekday = "SABADO"
	Sunday    Weekday = "DOMINGO"
)

var weekdays = map[time.Weekday]Weekday{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

// WeekdayOf переводит день недели даты в метку расписания.
func WeekdayOf(t time.Time) Weekday {
	return weekdays[t.Weekday()]
}

func (w Weekday) Valid() bool {
	for _, d := range weekdays {
		if d == w {
			return true
		}
	}

	return false
}

// ScheduleEntry: часы работы на один день недели.
type ScheduleEntry struct {
	ID          string
	Day         Weekday
	OpeningTime string // HH:MM
	ClosingTime string // HH:MM
	Closed      bool
	Active      bool
}

// HoursState: результат проверки часов работы.
type HoursState int

const (
	OutsideHours HoursState = iota
	OpenNow
	ClosedAllDay
)

func (s HoursState) String() string {
	switch s {
	case OpenNow:
		return "open_now"
	case ClosedAllDay:
		return "closed_all_day"
	default:
		return "outside_hours"
	}
}

// HoursStatus: состояние на текущий момент и запись расписания на сегодня (если есть).
type HoursStatus struct {
	State HoursState
	Today *ScheduleEntry
}

// AllowsImmediateOrder: можно ли оформить заказ без даты выполнения.
func (s HoursStatus) AllowsImmediateOrder() bool {
	return s.State == OpenNow
}

// TodayEntry находит активную запись расписания для дня недели now.
func TodayEntry(schedule []ScheduleEntry, now time.Time) (*ScheduleEntry, bool) {
	day := WeekdayOf(now)
	for i := range schedule {
		if schedule[i].Day == day && schedule[i].Active {
			entry := schedule[i]
			return &entry, true
		}
	}

	return nil, false
}

// EvaluateHours определяет состояние часов работы в момент now.
// Граница закрытия включается; окна через полночь не поддерживаются:
// закрытие раньше открытия дает пустое окно.
func EvaluateHours(schedule []ScheduleEntry, now time.Time) HoursStatus {
	entry, ok := TodayEntry(schedule, now)
	if !ok {
		return HoursStatus{State: OutsideHours}
	}

	if entry.Closed {
		return HoursStatus{State: ClosedAllDay, Today: entry}
	}

	opening, err := ParseClock(entry.OpeningTime)
	if err != nil {
		return HoursStatus{State: OutsideHours, Today: entry}
	}

	closing, err := ParseClock(entry.ClosingTime)
	if err != nil {
		return HoursStatus{State: OutsideHours, Today: entry}
	}

	current := now.Hour()*60 + now.Minute()
	if current >= opening && current <= closing {
		return HoursStatus{State: OpenNow, Today: entry}
	}

	return HoursStatus{State: OutsideHours, Today: entry}
}

// ParseClock переводит "HH:MM" (секунды допускаются и отбрасываются) в минуты от полуночи.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, e.Wrap(value, e.ErrInvalidClock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, e.Wrap(value, e.ErrInvalidClock)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, e.Wrap(value, e.ErrInvalidClock)
	}

	return hours*60 + minutes, nil
}
