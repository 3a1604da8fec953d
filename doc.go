// Package identity issues, validates, and introspects signed identity
// tokens for authenticated API access, backed by a queryable user store.
//
// Token lifecycle:
//   - TokenService generates HS256-signed JWTs from User records, validates
//     signature, issuer, audience, and lifetime with zero clock skew, and
//     extracts claims (user id, role, expiration) from presented tokens.
//     Signing and verification are implemented as strategies selected
//     through a TokenStrategyFactory so alternative schemes can be added
//     without changing the service contract.
//
// Query abstraction:
//   - Specification is a plain data descriptor (predicate, ordering
//     comparators, paging window) evaluated by ApplySpecification against
//     any in-memory collection. Concrete user queries (by email, active
//     only, by role, paginated) are factory functions returning populated
//     descriptors.
//
// Storage:
//   - Repository is a generic keyed-collection contract with an in-memory
//     implementation; Users extends it with identity-specific lookups.
//     UnitOfWork groups repository access behind a save/commit/rollback
//     contract so a durable store can be substituted without changing
//     callers. The bundled store is volatile and intended to sit behind
//     that contract.
//
// Outcomes:
//   - IdentityService operations return Result values (success, failure
//     with an error code, or a field-level validation failure) instead of
//     surfacing expected domain conditions as errors.
package identity
