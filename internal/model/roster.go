package model

// Connection request lifecycle states.
const (
	StatusPending   = "pending"
	StatusSent      = "sent"
	StatusConnected = "connected"
)

// ConnectionRequest is an incoming or outgoing peer request.
type ConnectionRequest struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Days      int      `json:"days"`
	Interests []string `json:"interests"`
	Status    string   `json:"status"`
}

// Connection is an established peer connection. Session-scoped, not
// persisted.
type Connection struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Days      int      `json:"days"`
	Interests []string `json:"interests"`
	Status    string   `json:"status"`
}

// PotentialMatch is a suggested peer the user has not requested yet.
// Read-only seed data.
type PotentialMatch struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Days          int      `json:"days"`
	Interests     []string `json:"interests"`
	Compatibility int      `json:"compatibility"`
}

// Roster holds the three lists owned by the Connections tab. Requests
// and connections mutate during the session; matches never do.
type Roster struct {
	Requests    []ConnectionRequest
	Connections []Connection
	Matches     []PotentialMatch
}

// Connect appends a sent request for the given match. Unknown IDs are
// a no-op. Connecting to the same match twice appends two entries,
// and the match stays in the suggestion list either way.
func (r *Roster) Connect(matchID int) {
	for _, m := range r.Matches {
		if m.ID == matchID {
			r.Requests = append(r.Requests, ConnectionRequest{
				ID:        m.ID,
				Name:      m.Name,
				Days:      m.Days,
				Interests: m.Interests,
				Status:    StatusSent,
			})
			return
		}
	}
}

// Accept moves a request into the connections list with status
// connected. Unknown IDs leave both lists untouched.
func (r *Roster) Accept(requestID int) {
	for i, req := range r.Requests {
		if req.ID == requestID {
			r.Connections = append(r.Connections, Connection{
				ID:        req.ID,
				Name:      req.Name,
				Days:      req.Days,
				Interests: req.Interests,
				Status:    StatusConnected,
			})
			r.Requests = append(r.Requests[:i], r.Requests[i+1:]...)
			return
		}
	}
}

// Decline drops a request without creating a connection. Unknown IDs
// are a no-op.
func (r *Roster) Decline(requestID int) {
	for i, req := range r.Requests {
		if req.ID == requestID {
			r.Requests = append(r.Requests[:i], r.Requests[i+1:]...)
			return
		}
	}
}
