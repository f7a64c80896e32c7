// Package domain contains the registration form's core model.
//
// This package defines:
//   - Entities: FormConfig, Encounter, RegistrationRecord
//   - Value objects: Candidate, SummaryResult, YearMonth, CalendarCell
//   - Built-in defaults and the configuration migration chain
//   - Domain errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (storage, HTTP, external APIs)
//   - Pure functions only; time is always passed in
package domain
