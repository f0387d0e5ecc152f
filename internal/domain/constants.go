package domain

// Default schedule values
const (
	DefaultSlotDurationMinutes = 60
	DefaultOpenHour            = 9
	DefaultCloseHour           = 18
	DefaultTimezone            = "America/Los_Angeles"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxSpecialNeedsLength  = 1000
	MaxNotesLength         = 1000
)

// ActiveStatuses статусы, учитываемые при проверке конфликтов и расчёте доступности
var ActiveStatuses = []BookingStatus{
	StatusNew,
	StatusConfirmed,
}

// InactiveStatuses статусы, исключённые из активного множества (soft-delete)
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusDeclined,
}
