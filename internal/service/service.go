package service

import (
	"github.com/weathermate/backend/internal/domain"
)

// LookupRepository is re-exported from domain for convenience
type LookupRepository = domain.LookupRepository
