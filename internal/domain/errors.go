package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog lookups and data integrity. Callers discriminate
// with errors.Is; wrapped messages carry the offending record context.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidCategory   = errors.New("invalid condition category")
	ErrInvalidPrevalence = errors.New("invalid prevalence tier")
	ErrInvalidRegion     = errors.New("invalid region")
	ErrInvalidSeverity   = errors.New("invalid symptom severity")
	ErrInvalidFrequency  = errors.New("invalid symptom frequency")
	ErrInvalidResource   = errors.New("invalid resource level")
)

// wrapValidation keeps validation failure messages uniform across the domain.
func wrapValidation(entity string, err error) error {
	return fmt.Errorf("%s validation: %w", entity, err)
}
