package weather

import "github.com/i474232898/weather-dashboard/internal/regions"

// Coordinates is a latitude/longitude pair as exposed to clients.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationInfo describes where a snapshot belongs. Capital, Region and
// Coordinates are only set when the query matched a known Region.
type LocationInfo struct {
	Name            string       `json:"name"`
	Capital         string       `json:"capital,omitempty"`
	Region          string       `json:"region,omitempty"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	ResolvedAddress string       `json:"resolvedAddress,omitempty"`
}

// Enriched is a snapshot paired with its location metadata.
type Enriched struct {
	Snapshot *Snapshot
	Location LocationInfo
}

// Compose pairs a copy of snapshot with location metadata taken from region,
// or from the snapshot itself when region is nil. Neither input is modified.
func Compose(snapshot *Snapshot, region *regions.Region) Enriched {
	snap := snapshot.Clone()
	if snap == nil {
		snap = &Snapshot{}
	}

	info := LocationInfo{ResolvedAddress: snap.ResolvedAddress}
	if region != nil {
		info.Name = region.Name
		info.Capital = region.Capital
		info.Region = region.Group
		info.Coordinates = &Coordinates{Lat: region.Latitude, Lng: region.Longitude}
	} else {
		info.Name = snap.ResolvedAddress
		if info.Name == "" {
			info.Name = snap.Query
		}
	}

	return Enriched{Snapshot: snap, Location: info}
}
