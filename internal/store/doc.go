// Package store defines interfaces for data persistence operations.
// These interfaces abstract the storage of learner review progress from
// the application's core logic, so the scheduling and scoring rules stay
// independent of the specific database technology behind them.
package store
