package domain

import "time"

// Stats are the dashboard aggregates.
type Stats struct {
	TotalClients     int
	ActiveDomains    int // stored status == active
	ActiveHosting    int // stored status == active
	ExpiringServices int // derived, 0..ExpiringWindowDays days left
	TotalUsers       *int
}

// ComputeStats aggregates the dashboard counters. Active counts use the
// stored status, the expiring count uses the derived classification.
func ComputeStats(totalClients int, domains, hosting []Service, now time.Time, loc *time.Location) Stats {
	s := Stats{TotalClients: totalClients}

	for _, d := range domains {
		if d.Status == StatusActive {
			s.ActiveDomains++
		}
		if Classify(d.ExpirationDate, now, loc).Status == StatusExpiring {
			s.ExpiringServices++
		}
	}
	for _, h := range hosting {
		if h.Status == StatusActive {
			s.ActiveHosting++
		}
		if Classify(h.ExpirationDate, now, loc).Status == StatusExpiring {
			s.ExpiringServices++
		}
	}

	return s
}
