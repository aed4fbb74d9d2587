package service

import (
	"errors"

	"go-hq-ordering/internal/model"
	"go-hq-ordering/internal/repository"

	"gorm.io/gorm"
)

// AssignmentItem is one demand line evaluated by the staff assignment rule
type AssignmentItem struct {
	Quantity    int
	HqStock     int
	IsExtension bool
}

// AssignmentResolver picks the purchasing staff member for a set of demand
// lines. Precedence, evaluated in order:
//  1. at least one extension-category line AND not every line covered by
//     current HQ stock -> the extension fallback member
//  2. otherwise -> the HQ fulfillment lead
//
// Either branch falls back to the first active staff record when no member
// carries the flag, and to no assignment when no staff exists at all.
type AssignmentResolver struct {
	staffRepo repository.StaffRepository
}

func NewAssignmentResolver(staffRepo repository.StaffRepository) *AssignmentResolver {
	return &AssignmentResolver{staffRepo: staffRepo}
}

func (r *AssignmentResolver) Resolve(items []AssignmentItem) (*model.Staff, error) {
	hasExtension := false
	allCovered := true
	for _, item := range items {
		if item.IsExtension {
			hasExtension = true
		}
		if item.HqStock < item.Quantity {
			allCovered = false
		}
	}

	var staff *model.Staff
	var err error
	if hasExtension && !allCovered {
		staff, err = r.staffRepo.FindExtensionFallback()
	} else {
		staff, err = r.staffRepo.FindFulfillmentLead()
	}
	if err == nil {
		return staff, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	staff, err = r.staffRepo.FindFirstActive()
	if err == nil {
		return staff, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}
