package geospatial

// DecodePolyline decodes a Google encoded polyline string into points.
// Coordinates are stored as signed deltas scaled by 1e5, each delta a
// zig-zag varint of 5-bit groups where a byte below 0x20 ends the group.
//
// The decoder never fails: if the input ends mid-group or between the
// latitude and longitude of a pair, the incomplete pair is dropped and
// the successfully decoded prefix is returned. An empty input yields an
// empty slice.
func DecodePolyline(encoded string) []Point {
	var points []Point
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		shift, result := 0, 0
		for {
			if index >= len(encoded) {
				return points
			}
			b := int(encoded[index]) - 63
			index++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		if result&1 != 0 {
			lat += ^(result >> 1)
		} else {
			lat += result >> 1
		}

		shift, result = 0, 0
		for {
			if index >= len(encoded) {
				return points
			}
			b := int(encoded[index]) - 63
			index++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		if result&1 != 0 {
			lng += ^(result >> 1)
		} else {
			lng += result >> 1
		}

		points = append(points, Point{
			Lat: float64(lat) / 1e5,
			Lng: float64(lng) / 1e5,
		})
	}

	return points
}
