package planner

import "tableflip.dev/voyage/pkg/trip"

// Stats are the dashboard aggregates. Display only; nothing in the tree
// depends on them.
type Stats struct {
	Trips      int `json:"totalTrips"`
	Active     int `json:"activeTrips"`
	Countries  int `json:"countries"`
	Activities int `json:"totalActivities"`
}

// ComputeStats derives the aggregates from the local tree. Networked
// deployments fetch the server's numbers instead.
func ComputeStats(s State) Stats {
	var st Stats
	countries := map[string]struct{}{}
	for _, t := range s.Trips {
		st.Trips++
		if t.Active {
			st.Active++
		}
		if c := t.Country(); c != "" && c != trip.DefaultDestination {
			countries[c] = struct{}{}
		}
		for _, d := range t.Days {
			st.Activities += len(d.Activities)
		}
	}
	st.Countries = len(countries)
	return st
}
