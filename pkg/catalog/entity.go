package catalog

// Event is a club event as shown in the portal. EventID is the stable external
// identifier ("e1", "e2", ...) that registrations refer to; it is distinct from
// whatever primary key the store assigns internally.
type Event struct {
	EventID     string `json:"id"`
	Name        string `json:"name"`
	Club        string `json:"club"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	Image       string `json:"image"`
	Ended       bool   `json:"ended"`
}
