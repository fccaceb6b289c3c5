package engine

import (
	"sort"
	"strings"
	"time"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/geo"
)

// ReachabilityTier classifies the likelihood of catching a scheduled
// departure. Tiers are deliberately discrete: the travel-time inputs
// are too coarse to justify a continuous probability.
type ReachabilityTier string

const (
	TierLow    ReachabilityTier = "low"
	TierMedium ReachabilityTier = "medium"
	TierHigh   ReachabilityTier = "high"
)

// FerryReachability is the estimate for one candidate ferry route.
type FerryReachability struct {
	Route               domain.FerryRoute
	NextDeparture       time.Time
	FollowingDeparture  time.Time
	TravelMinutesToPort int
	ReachabilityPercent int
	Tier                ReachabilityTier
}

// Boarding margin added on top of travel time before a departure
// counts as reachable.
const boardingMarginMinutes = 10

// Approximate driving minutes to the boarding port from the area each
// port typically serves. Coarse by construction.
var portTravelMinutes = map[string]int{
	"magerholm": 25,
	"aursnes":   30,
	"sulesund":  35,
	"hareid":    50,
	"solavågen": 30,
	"festøya":   40,
	"molde":     45,
	"vestnes":   40,
}

const defaultPortTravelMinutes = 45

// EstimateFerryReachability classifies the next two departures of every
// ferry route relevant to the destination hint.
//
// Relevance is keyword-based: a route is a candidate when its name or
// either port appears in the hint (case-insensitive substring). Unknown
// hints yield an empty slice, never an error — no ferry is simply not
// relevant to that trip. When the current location is known, candidates
// are ordered nearest boarding port first.
func EstimateFerryReachability(
	currentLocation *domain.Coordinate,
	destinationHint string,
	routes []domain.FerryRoute,
	now time.Time,
) []FerryReachability {
	hint := strings.ToLower(destinationHint)

	candidates := make([]domain.FerryRoute, 0, len(routes))
	for _, r := range routes {
		if hintMatchesRoute(hint, r) {
			candidates = append(candidates, r)
		}
	}

	if currentLocation != nil {
		sort.SliceStable(candidates, func(i, j int) bool {
			di := geo.DistanceKm(*currentLocation, candidates[i].FromCoordinate)
			dj := geo.DistanceKm(*currentLocation, candidates[j].FromCoordinate)
			return di < dj
		})
	}

	out := make([]FerryReachability, 0, len(candidates))
	for _, r := range candidates {
		next, following, ok := nextTwoDepartures(r.ScheduledTimes, now)
		if !ok {
			continue
		}

		travel := defaultPortTravelMinutes
		if currentLocation != nil {
			if m, ok := portTravelMinutes[strings.ToLower(r.FromPort)]; ok {
				travel = m
			}
		}

		slack := int(next.Sub(now).Minutes()) - (travel + boardingMarginMinutes)

		tier, percent := classifySlack(slack)

		out = append(out, FerryReachability{
			Route:               r,
			NextDeparture:       next,
			FollowingDeparture:  following,
			TravelMinutesToPort: travel,
			ReachabilityPercent: percent,
			Tier:                tier,
		})
	}

	return out
}

func hintMatchesRoute(hint string, r domain.FerryRoute) bool {
	if hint == "" {
		return false
	}

	keys := []string{
		strings.ToLower(r.FromPort),
		strings.ToLower(r.ToPort),
	}
	// Route names like "Magerholm-Sykkylven" match on either leg.
	for _, part := range strings.FieldsFunc(strings.ToLower(r.Name), func(c rune) bool {
		return c == '-' || c == '–' || c == ' '
	}) {
		keys = append(keys, part)
	}

	for _, k := range keys {
		if k != "" && strings.Contains(hint, k) {
			return true
		}
	}
	return false
}

// nextTwoDepartures resolves the first scheduled time at or after now
// and the one following it, rolling into the next calendar day when
// today's departures have all passed. Malformed timetable entries are
// skipped.
func nextTwoDepartures(scheduled []string, now time.Time) (time.Time, time.Time, bool) {
	today := make([]time.Time, 0, len(scheduled))
	for _, s := range scheduled {
		hhmm, err := time.Parse("15:04", s)
		if err != nil {
			continue
		}
		today = append(today, time.Date(
			now.Year(), now.Month(), now.Day(),
			hhmm.Hour(), hhmm.Minute(), 0, 0, now.Location(),
		))
	}

	if len(today) == 0 {
		return time.Time{}, time.Time{}, false
	}

	sort.Slice(today, func(i, j int) bool { return today[i].Before(today[j]) })

	// Today's remaining departures, then tomorrow's timetable again.
	upcoming := make([]time.Time, 0, len(today)*2)
	for _, d := range today {
		if !d.Before(now) {
			upcoming = append(upcoming, d)
		}
	}
	for _, d := range today {
		upcoming = append(upcoming, d.AddDate(0, 0, 1))
	}

	next := upcoming[0]
	following := next
	if len(upcoming) > 1 {
		following = upcoming[1]
	}

	return next, following, true
}

func classifySlack(slackMinutes int) (ReachabilityTier, int) {
	switch {
	case slackMinutes <= 0:
		return TierLow, 15
	case slackMinutes <= 15:
		return TierMedium, 65
	default:
		return TierHigh, 95
	}
}
