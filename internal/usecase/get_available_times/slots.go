package get_available_times

import "github.com/sattis-studio/booking-web/pkg/types"

// subtractBookedTimes возвращает настроенные слоты без занятых,
// сохраняя исходный порядок. Дубликаты занятых слотов безвредны
func subtractBookedTimes(configured, booked []types.TimeString) []types.TimeString {
	if len(configured) == 0 {
		return []types.TimeString{}
	}

	bookedSet := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t] = struct{}{}
	}

	free := make([]types.TimeString, 0, len(configured))
	for _, t := range configured {
		if _, taken := bookedSet[t]; taken {
			continue
		}
		free = append(free, t)
	}

	return free
}
