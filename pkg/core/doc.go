// Package core defines the shared language of sqlshim.
//
// This package contains:
//   - The dialect-neutral SQL AST (expressions, SELECT statements)
//   - Temporal vocabulary (TimeUnit, TimeUnitRange, IntervalQualifier)
//   - Scalar type categories (TypeName) and data types
//   - Static dialect configuration (DialectConfig, NullCollation, CalendarPolicy)
//   - Database connection configuration (AdapterConfig)
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
