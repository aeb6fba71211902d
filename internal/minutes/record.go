// Package minutes defines the structured meeting record produced by the
// conversion pipeline.
package minutes

// Motion is a single motion raised during a meeting.
type Motion struct {
	Description string `json:"description" jsonschema_description:"What the motion proposed"`
	ProposedBy  string `json:"proposed_by" jsonschema_description:"Full name of the member who proposed the motion"`
	Result      string `json:"result" jsonschema_description:"Outcome of the vote (passed/failed/carried)"`
}

// Record is one meeting, extracted from a single archive segment. It is
// written to the output stream as one JSON line. Date holds the canonical
// YYYY-MM-DD form, or "" when the meeting date could not be normalized.
type Record struct {
	Date              string             `json:"date" jsonschema_description:"The date of the meeting, standardized to YYYY-MM-DD"`
	Location          string             `json:"location" jsonschema_description:"The physical location or home where the meeting occurred"`
	AttendanceMembers []string           `json:"attendance_members" jsonschema_description:"Full names of members present"`
	AttendanceGuests  []string           `json:"attendance_guests" jsonschema_description:"Guests, prospective members, or pledges"`
	TreasurerReport   map[string]float64 `json:"treasurer_report" jsonschema_description:"Fund names mapped to dollar amounts"`
	Motions           []Motion           `json:"motions" jsonschema_description:"Motions raised, with description, proposer and result"`
	KeyEvents         []string           `json:"key_events" jsonschema_description:"Important discussions, upcoming runs, or club decisions"`
	NextMeetingInfo   string             `json:"next_meeting_info,omitempty" jsonschema_description:"When and where the next meeting is held"`
	OriginalText      string             `json:"original_text"`
}

// EnsureDefaults replaces nil collections with empty ones so the JSON
// output always carries the full field set.
func (r *Record) EnsureDefaults() {
	if r.AttendanceMembers == nil {
		r.AttendanceMembers = []string{}
	}
	if r.AttendanceGuests == nil {
		r.AttendanceGuests = []string{}
	}
	if r.TreasurerReport == nil {
		r.TreasurerReport = map[string]float64{}
	}
	if r.Motions == nil {
		r.Motions = []Motion{}
	}
	if r.KeyEvents == nil {
		r.KeyEvents = []string{}
	}
}
