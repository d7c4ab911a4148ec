// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between the vocabulary catalog, the
// domain scoring and scheduling services, and the progress store (defined in
// internal/store) to fulfill application features.
//
// Key components:
//
// 1. Service Interfaces:
//   - Define application-specific operations available to the delivery mechanisms
//   - PracticeService covers pronunciation scoring against targets and catalog cards
//   - ReviewService covers recording reviews, due-card selection, and progress reporting
//
// 2. Use Case Implementations:
//   - Coordinate between the catalog, domain services, and the progress store
//   - Enforce application-level rules that span multiple domain entities,
//     such as resolving catalog cards before scoring or scheduling
//
// 3. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Core dependencies include the catalog, domain services, and the progress store
//
// 4. Error Handling:
//   - Expected conditions surface as domain sentinel errors (for example
//     domain.ErrCardNotFound and domain.ErrInvalidRating) that callers check
//     with errors.Is
//   - Unexpected failures are wrapped in ServiceError with the failing
//     operation attached
//   - The API layer maps both kinds to appropriate HTTP status codes
//
// The service layer depends on domain entities and the store interfaces, but
// never on specific infrastructure implementations.
package service
