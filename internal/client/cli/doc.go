// Package cli implements the interactive Still Waters client.
//
// The client is a screen-oriented REPL: at any moment one screen is active
// (home, chat, devotional, scriptures, prayers or profile) and the available
// commands depend on it. Screen switches drive data loading, mirroring how
// the services expect to be refreshed:
//
//   - chat        — reloads the conversation lists
//   - devotional  — fetches today's devotional
//   - prayers     — fetches the community prayer wall
//
// Until a session is established only login, signup and exit are accepted.
// All command handlers print their own errors and never abort the loop.
package cli
