package service

import (
	"fmt"
	"strings"
	"time"

	"tableside/internal/domain"
)

type WizardStep int

const (
	StepSelectDate WizardStep = iota + 1
	StepChooseTime
	StepPartySize
	StepConfirm
)

func (s WizardStep) String() string {
	switch s {
	case StepSelectDate:
		return "select_date"
	case StepChooseTime:
		return "choose_time"
	case StepPartySize:
		return "party_size"
	case StepConfirm:
		return "confirm"
	}
	return "unknown"
}

const (
	dateLayout       = "2006-01-02"
	bookingDays      = 14
	defaultGuests    = 2
	MinGuests        = 1
	MaxGuests        = 10
	guestPlaceholder = "Guest"
)

// TimeSlots is fixed; it does not follow opening hours or existing bookings.
var TimeSlots = []string{
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM",
	"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM",
	"8:00 PM", "8:30 PM", "9:00 PM", "9:30 PM",
}

// AvailableDates returns the bookable dates, today included.
func AvailableDates(now time.Time) []string {
	dates := make([]string, 0, bookingDays)
	for i := 0; i < bookingDays; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

func GuestOptions() []int {
	options := make([]int, 0, MaxGuests-MinGuests+1)
	for g := MinGuests; g <= MaxGuests; g++ {
		options = append(options, g)
	}
	return options
}

type ReservationDraft struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}

// ReservationWizard walks a customer through date, time, party size and
// confirmation for one restaurant. It is not safe for concurrent use.
type ReservationWizard struct {
	restaurant domain.Restaurant
	step       WizardStep
	draft      ReservationDraft
	confirmed  *domain.Reservation
}

func NewReservationWizard(restaurant domain.Restaurant) *ReservationWizard {
	return &ReservationWizard{
		restaurant: restaurant,
		step:       StepSelectDate,
		draft:      ReservationDraft{Guests: defaultGuests},
	}
}

func (w *ReservationWizard) Step() WizardStep { return w.step }
func (w *ReservationWizard) Draft() ReservationDraft { return w.draft }
func (w *ReservationWizard) Restaurant() domain.Restaurant { return w.restaurant }

// Confirmed returns the reservation produced by Confirm, if any.
func (w *ReservationWizard) Confirmed() (domain.Reservation, bool) {
	if w.confirmed == nil {
		return domain.Reservation{}, false
	}
	return *w.confirmed, true
}

func (w *ReservationWizard) SetDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidField, date)
	}
	w.draft.Date = date
	return nil
}

func (w *ReservationWizard) SetTime(slot string) error {
	for _, s := range TimeSlots {
		if s == slot {
			w.draft.Time = slot
			return nil
		}
	}
	return fmt.Errorf("%w: time %q is not an available slot", ErrInvalidField, slot)
}

func (w *ReservationWizard) SetGuests(guests int) error {
	if guests < MinGuests || guests > MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidField, MinGuests, MaxGuests)
	}
	w.draft.Guests = guests
	return nil
}

func (w *ReservationWizard) SetSpecialRequests(note string) {
	w.draft.SpecialRequests = strings.TrimSpace(note)
}

// StepComplete reports whether the active step's required field is populated.
func (w *ReservationWizard) StepComplete() bool {
	switch w.step {
	case StepSelectDate:
		return w.draft.Date != ""
	case StepChooseTime:
		return w.draft.Time != ""
	case StepPartySize:
		return w.draft.Guests > 0
	case StepConfirm:
		return true
	}
	return false
}

func (w *ReservationWizard) Next() error {
	if w.step == StepConfirm {
		return ErrNoNextStep
	}
	if !w.StepComplete() {
		return fmt.Errorf("%w: %s", ErrStepIncomplete, w.step)
	}
	w.step++
	return nil
}

func (w *ReservationWizard) Previous() error {
	if w.step == StepSelectDate {
		return ErrNoPreviousStep
	}
	w.step--
	return nil
}

// Confirm emits a confirmed reservation for user, or for an anonymous guest
// when user is nil. Calling it again returns the same reservation.
func (w *ReservationWizard) Confirm(user *domain.User, ids IDGenerator, now time.Time) (domain.Reservation, error) {
	if w.confirmed != nil {
		return *w.confirmed, nil
	}
	if w.step != StepConfirm {
		return domain.Reservation{}, ErrNotAtConfirmStep
	}

	reservation := domain.Reservation{
		ID:              ids.NewID(),
		CustomerName:    guestPlaceholder,
		RestaurantID:    w.restaurant.ID,
		RestaurantName:  w.restaurant.Name,
		Date:            w.draft.Date,
		Time:            w.draft.Time,
		Guests:          w.draft.Guests,
		Status:          domain.ReservationConfirmed,
		SpecialRequests: w.draft.SpecialRequests,
		CreatedAt:       now,
	}
	if user != nil {
		reservation.CustomerID = user.ID
		if user.Name != "" {
			reservation.CustomerName = user.Name
		}
	}

	w.confirmed = &reservation
	return reservation, nil
}
