package create_booking

import (
	"fmt"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
)

// validateRequest валідує вхідні дані запиту.
// Бронюється рівно одна ціль: зал або секція.
func validateRequest(req *Request) error {
	if req.AccessToken == "" {
		return fmt.Errorf("%w: access token is required", ErrInvalidInput)
	}

	if req.HallID == nil && req.SectionID == nil {
		return ErrNoTarget
	}
	if req.HallID != nil && req.SectionID != nil {
		return ErrAmbiguousTarget
	}

	if req.HallID != nil && *req.HallID <= 0 {
		return fmt.Errorf("%w: hallId must be positive", ErrInvalidInput)
	}
	if req.SectionID != nil && *req.SectionID <= 0 {
		return fmt.Errorf("%w: sectionId must be positive", ErrInvalidInput)
	}

	if req.TimeslotID <= 0 {
		return fmt.Errorf("%w: timeslotId must be positive", ErrInvalidInput)
	}

	if err := validateSeats(req); err != nil {
		return err
	}

	if err := validatePayment(req); err != nil {
		return err
	}

	return nil
}

// validateSeats перевіряє кількість місць.
// Для залу місця не обираються - зал бронюється цілком.
func validateSeats(req *Request) error {
	if req.HallID != nil {
		if req.Seats > 1 {
			return fmt.Errorf("%w: hall is booked as a whole", ErrInvalidSeats)
		}
		return nil
	}

	if req.Seats < domain.MinSeatsPerBooking || req.Seats > domain.MaxSeatsPerBooking {
		return fmt.Errorf("%w: seats must be between %d and %d",
			ErrInvalidSeats, domain.MinSeatsPerBooking, domain.MaxSeatsPerBooking)
	}

	return nil
}

// validatePayment перевіряє спосіб оплати та супутні поля
func validatePayment(req *Request) error {
	method := domain.PaymentMethod(req.PaymentMethod)

	switch method {
	case domain.MethodCard, domain.MethodCash, domain.MethodBonus, domain.MethodSubscription:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	if method == domain.MethodSubscription && req.UserSubscriptionID == nil {
		return ErrSubscriptionRequired
	}
	if method != domain.MethodSubscription && req.UserSubscriptionID != nil {
		return fmt.Errorf("%w: userSubscriptionId is only valid with subscription payment", ErrInvalidInput)
	}

	if req.UseBonusPoints {
		if method == domain.MethodSubscription {
			return fmt.Errorf("%w: bonus points cannot be combined with subscription payment", ErrInvalidBonusPoints)
		}
		if req.BonusPoints <= 0 || req.BonusPoints > domain.MaxRedeemPoints {
			return fmt.Errorf("%w: bonus points must be between 1 and %d",
				ErrInvalidBonusPoints, domain.MaxRedeemPoints)
		}
	} else if req.BonusPoints != 0 {
		return fmt.Errorf("%w: bonus points set without useBonusPoints", ErrInvalidBonusPoints)
	}

	return nil
}
