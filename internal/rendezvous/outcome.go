package rendezvous

// Outcome is the terminal result of a search.
type Outcome struct {
	Succeeded        bool    `json:"succeeded"`
	MeetingPosition  *int    `json:"meeting_position,omitempty"`
	StepsTaken       int     `json:"steps_taken"`
	ParachuteFoundBy *string `json:"parachute_found_by,omitempty"`
	ParachuteFoundAt *int    `json:"parachute_found_at,omitempty"`

	// Final positions of both robots, reported for diagnostics either way.
	FirstPosition  int `json:"first_position"`
	SecondPosition int `json:"second_position"`

	// Err is nil on success, ErrNotLanded or ErrIterationCapExceeded otherwise.
	Err    error  `json:"-"`
	Reason string `json:"reason,omitempty"`
}

// Meeting returns where the robots met, and false if they did not.
func (o Outcome) Meeting() (int, bool) {
	if o.MeetingPosition == nil {
		return 0, false
	}
	return *o.MeetingPosition, true
}

// Discovery returns which robot found the other's parachute and where,
// and false if no parachute was found.
func (o Outcome) Discovery() (string, int, bool) {
	if o.ParachuteFoundBy == nil || o.ParachuteFoundAt == nil {
		return "", 0, false
	}
	return *o.ParachuteFoundBy, *o.ParachuteFoundAt, true
}
