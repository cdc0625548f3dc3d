package financial

import "errors"

var (
	ErrRecordNotFound         = errors.New("financial record not found")
	ErrRecordAccessDenied     = errors.New("financial record access denied")
	ErrInvalidAmount          = errors.New("amount must be a positive decimal")
	ErrRecordAlreadyApproved  = errors.New("financial record already approved")
	ErrRecordNotApproved      = errors.New("financial record must be approved before settling")
	ErrRecordAlreadyPaid      = errors.New("financial record already settled")
	ErrRecordCancelled        = errors.New("financial record is cancelled")
	ErrApprovalNotAllowed     = errors.New("role cannot approve financial records")
	ErrDuplicateDailyRevenue  = errors.New("daily revenue already registered for this event and date")
	ErrEventRequiredForCreate = errors.New("event_id is required")
)
