package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils"
)

func ToDomainSchedule(r dto.ScheduleResponse) domain.Schedule {
	s := domain.Schedule{
		ID:            r.ID,
		WorkplaceID:   r.WorkplaceID,
		WorkplaceName: r.WorkplaceName,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Date:          r.Date,
		Hours:         r.Hours,
		CreatedAt:     r.CreatedAt.Time,
	}
	return s
}

func ToDomainSchedules(rs []dto.ScheduleResponse) []domain.Schedule {
	out := make([]domain.Schedule, len(rs))
	for i, r := range rs {
		out[i] = ToDomainSchedule(r)
	}
	return out
}

func ToScheduleRequest(s domain.Schedule) dto.ScheduleRequest {
	return dto.ScheduleRequest{
		WorkplaceID: s.WorkplaceID,
		EmployeeID:  s.EmployeeID,
		Date:        s.Date.String(),
		Hours:       s.Hours,
	}
}

func ToScheduleForm(s domain.Schedule) dto.ScheduleForm {
	return dto.ScheduleForm{
		WorkplaceID: s.WorkplaceID.String(),
		EmployeeID:  s.EmployeeID.String(),
		Date:        s.Date.String(),
		Hours:       utils.FormatHours(s.Hours),
	}
}

// ScheduleFromForm applies a validated form on top of current (nil when creating).
func ScheduleFromForm(f dto.ScheduleForm, current *domain.Schedule) (domain.Schedule, error) {
	var s domain.Schedule
	if current != nil {
		s = *current
	}
	hours, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(f.Hours), ",", "."), 64)
	if err != nil {
		return s, fmt.Errorf("%w: hours %q: %v", apperrors.ErrValidation, f.Hours, err)
	}
	date, err := domain.ParseDay(f.Date)
	if err != nil {
		return s, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	s.WorkplaceID = domain.ID(f.WorkplaceID)
	s.EmployeeID = domain.ID(f.EmployeeID)
	s.Date = date
	s.Hours = hours
	return s, nil
}
