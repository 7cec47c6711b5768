// Package commands defines the wsctl CLI.
//
// Commands
//
//   - login                  Sign in and store the token in ~/.wsctl/credentials.json
//   - logout                 Sign out and remove the stored token
//   - whoami                 Print the signed-in user
//   - summary                Print the dashboard summary
//   - bookings availability  Check whether a workspace is free
//   - bookings slots         List the hourly slots of a date
//   - attendance check-in    Record a check-in
//   - attendance check-out   Record a check-out
//   - users list             List users (admin)
//
// The API root comes from --api or WSCTL_API_URL. A 401 from the API deletes
// the stored credentials.
package commands
