/*
Package types defines the data structures shared across lit.

# Profiles

Profile:
  - A named git identity (user.name, user.email)
  - The name is the unique key in the store

StoreFile:
  - The persisted shape of the profile store
  - profiles: name -> {user_name, user_email}
  - current_profile: the active marker, empty when none

ProfileListing:
  - A flattened view of a profile with its active flag
  - Used by list-profiles output and JMESPath queries

# History

SwitchEvent:
  - One attempt to apply a profile to git
  - Records the source (tui or cli) and the error, if any
*/
package types
