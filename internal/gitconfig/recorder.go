package gitconfig

import "context"

// Call is one recorded Apply invocation
type Call struct {
	UserName  string
	UserEmail string
}

// Recorder is an in-memory applier for tests. It never touches git.
type Recorder struct {
	Calls []Call
	Err   error
}

// Apply records the call and returns Err
func (r *Recorder) Apply(_ context.Context, userName, userEmail string) error {
	r.Calls = append(r.Calls, Call{UserName: userName, UserEmail: userEmail})
	return r.Err
}

// Last returns the most recent call
func (r *Recorder) Last() (Call, bool) {
	if len(r.Calls) == 0 {
		return Call{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}
