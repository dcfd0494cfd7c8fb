package get_availability

import "fmt"

// validateRequest перевіряє, що вказано рівно одну ціль
func validateRequest(req *Request) error {
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
	if req.SelectedSlotID != nil && *req.SelectedSlotID <= 0 {
		return fmt.Errorf("%w: selected slot id must be positive", ErrInvalidInput)
	}

	return nil
}
