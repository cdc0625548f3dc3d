package company

import "errors"

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrCompanyCNPJExists   = errors.New("company CNPJ already registered")
	ErrInvalidCompanyName  = errors.New("company name cannot be empty")
	ErrCompanyAccessDenied = errors.New("company access denied")
)
