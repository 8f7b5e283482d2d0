// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - InventoryStore: Phoneme inventory persistence (SQLite or memory)
//   - ConfigStore: Application configuration (TOML file or memory)
//
// # Optional Interfaces
//
//   - ConfigWatcher: Reload on external config changes. Stores that cannot
//     watch their storage simply don't implement it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
