package googleapi

import (
	"context"

	"github.com/sushantvema/zupo/internal/core/domain"
)

// routesFieldMask keeps the response down to the encoded polyline.
const routesFieldMask = "routes.polyline.encodedPolyline"

type routeEndpoint struct {
	Address string `json:"address"`
}

type computeRoutesBody struct {
	Origin           routeEndpoint `json:"origin"`
	Destination      routeEndpoint `json:"destination"`
	TravelMode       string        `json:"travelMode"`
	PolylineEncoding string        `json:"polylineEncoding"`
}

type computeRoutesResponse struct {
	Routes []struct {
		Polyline struct {
			EncodedPolyline string `json:"encodedPolyline"`
		} `json:"polyline"`
	} `json:"routes"`
}

// ComputeRoutePolyline implements ports.DirectionsProvider.
func (c *Client) ComputeRoutePolyline(ctx context.Context, from, to string, mode domain.TravelMode) (string, error) {
	body := computeRoutesBody{
		Origin:           routeEndpoint{Address: from},
		Destination:      routeEndpoint{Address: to},
		TravelMode:       mode.String(),
		PolylineEncoding: "ENCODED_POLYLINE",
	}

	var resp computeRoutesResponse
	if err := c.postJSON(ctx, c.routesBaseURL+"/directions/v2:computeRoutes", "compute_routes", routesFieldMask, body, &resp); err != nil {
		return "", err
	}
	if len(resp.Routes) == 0 || resp.Routes[0].Polyline.EncodedPolyline == "" {
		return "", &domain.ProviderError{Message: "no route found between origin and destination"}
	}
	return resp.Routes[0].Polyline.EncodedPolyline, nil
}
