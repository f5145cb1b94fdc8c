package geospatial

import "sort"

// SampleWaypoints picks n points spaced evenly by traveled distance along
// path. Targets sit at the center of n equal arc segments, i.e. at
// total*(i+0.5)/n, so waypoints never cluster at the route endpoints.
// Between adjacent path points positions are linearly interpolated in
// degree space.
//
// A path with fewer than two points, or n == 0, is returned unchanged.
// A path whose points all coincide yields a single waypoint (the first
// point).
func SampleWaypoints(path []Point, n int) []Point {
	if len(path) <= 1 || n == 0 {
		return path
	}

	cumulative := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		d := Haversine(path[i-1].Lat, path[i-1].Lng, path[i].Lat, path[i].Lng)
		cumulative[i] = cumulative[i-1] + d
	}

	total := cumulative[len(cumulative)-1]
	if total == 0 {
		return []Point{path[0]}
	}

	waypoints := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		target := total * (float64(i) + 0.5) / float64(n)

		// Last segment whose start lies at or before target. The final
		// target can equal total exactly, hence the upper clamp.
		seg := sort.Search(len(cumulative), func(j int) bool {
			return cumulative[j] >= target
		}) - 1
		if seg < 0 {
			seg = 0
		}
		if seg > len(path)-2 {
			seg = len(path) - 2
		}

		segLen := cumulative[seg+1] - cumulative[seg]
		if segLen == 0 {
			waypoints = append(waypoints, path[seg])
			continue
		}

		t := (target - cumulative[seg]) / segLen
		waypoints = append(waypoints, Point{
			Lat: path[seg].Lat + t*(path[seg+1].Lat-path[seg].Lat),
			Lng: path[seg].Lng + t*(path[seg+1].Lng-path[seg].Lng),
		})
	}

	return waypoints
}
