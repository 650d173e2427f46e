// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a gfm command (init, start, finish, list, etc.)
// and orchestrates operations across the engine, git, and tui packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Engine, Splog, and other dependencies
//   - Actions are stateless - all state is managed through the Engine interface
//     and the continuation file for interrupted finishes
//   - Actions handle user interaction through the tui package
package actions
