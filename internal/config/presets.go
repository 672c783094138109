package config

import "time"

var Presets = map[string]*Config{
	"geostationary": {
		Name:  "geostationary",
		Epoch: time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC),
		Elements: ElementsConfig{
			Eccentricity: 0.001, Inclination: 0.573, RAAN: 80.0,
			ArgPerigee: 45.0, MeanAnomaly: 120.0, MeanMotion: 1.00273896,
		},
		Span: SpanConfig{Start: 0, Stop: 20160, Step: 60},
	},
	"molniya": {
		Name:  "molniya",
		Epoch: time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC),
		Elements: ElementsConfig{
			Eccentricity: 0.722, Inclination: 63.4, RAAN: 230.0,
			ArgPerigee: 270.0, MeanAnomaly: 10.0, MeanMotion: 2.00610,
		},
		Span: SpanConfig{Start: 0, Stop: 20160, Step: 60},
	},
	"gps": {
		Name:  "gps",
		Epoch: time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC),
		Elements: ElementsConfig{
			Eccentricity: 0.0047, Inclination: 55.1, RAAN: 140.0,
			ArgPerigee: 190.0, MeanAnomaly: 30.0, MeanMotion: 2.00562,
		},
		Span: SpanConfig{Start: 0, Stop: 20160, Step: 60},
	},
	"tundra": {
		Name:  "tundra",
		Epoch: time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC),
		Elements: ElementsConfig{
			Eccentricity: 0.27, Inclination: 63.4, RAAN: 50.0,
			ArgPerigee: 270.0, MeanAnomaly: 90.0, MeanMotion: 1.00273896,
		},
		Span: SpanConfig{Start: 0, Stop: 20160, Step: 60},
	},
}
