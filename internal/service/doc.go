// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill application features, applying
// transactional boundaries where an operation spans multiple reads and writes.
//
// Services receive their dependencies through constructor injection and
// depend only on domain entities and store interfaces, never on specific
// infrastructure implementations.
package service
