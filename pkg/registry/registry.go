// Package registry holds the fixed mapping from parameter key to display
// metadata. Keys and metadata are compile-time constants; nothing mutates the
// registry after init.
package registry

import (
	"aquaview.xyz/water-quality-service/pkg/models"
)

// Registry maps parameter keys to their display metadata and remembers the
// canonical display order of the keys.
type Registry struct {
	order       []models.ParameterKey
	descriptors map[models.ParameterKey]models.ParameterDescriptor
}

var defaultOrder = []models.ParameterKey{
	models.ParamTemperature,
	models.ParamNitrate,
	models.ParamNitrite,
	models.ParamPhosphate,
	models.ParamPH,
	models.ParamOxygen,
	models.ParamCarbonateHardness,
	models.ParamAmmonium,
}

var defaultDescriptors = map[models.ParameterKey]models.ParameterDescriptor{
	models.ParamTemperature: {
		Label:            "Temperature",
		Unit:             "°C",
		AlertThreshold:   30,
		WarningThreshold: 27,
		Icon:             models.IconThermometer,
		Color:            "red",
	},
	models.ParamNitrate: {
		Label:            "Nitrate",
		Unit:             "mg/l",
		AlertThreshold:   50,
		WarningThreshold: 25,
		Icon:             models.IconFlask,
		Color:            "violet",
	},
	models.ParamNitrite: {
		Label:            "Nitrite",
		Unit:             "mg/l",
		AlertThreshold:   0.5,
		WarningThreshold: 0.1,
		Icon:             models.IconBeaker,
		Color:            "rose",
	},
	models.ParamPhosphate: {
		Label:            "Phosphate",
		Unit:             "mg/l",
		AlertThreshold:   1.0,
		WarningThreshold: 0.5,
		Icon:             models.IconDroplet,
		Color:            "amber",
	},
	models.ParamPH: {
		Label:            "pH Value",
		Unit:             "",
		AlertThreshold:   8.5,
		WarningThreshold: 8.0,
		Icon:             models.IconScale,
		Color:            "green",
	},
	models.ParamOxygen: {
		Label:            "Oxygen",
		Unit:             "mg/l",
		AlertThreshold:   4.0,
		WarningThreshold: 6.0,
		Icon:             models.IconBubbles,
		Color:            "sky",
	},
	models.ParamCarbonateHardness: {
		Label:            "Carbonate Hardness",
		Unit:             "°dH",
		AlertThreshold:   15,
		WarningThreshold: 12,
		Icon:             models.IconShell,
		Color:            "teal",
	},
	models.ParamAmmonium: {
		Label:            "Ammonium",
		Unit:             "mg/l",
		AlertThreshold:   0.5,
		WarningThreshold: 0.25,
		Icon:             models.IconWarning,
		Color:            "slate",
	},
}

var defaultRegistry = Registry{
	order:       defaultOrder,
	descriptors: defaultDescriptors,
}

// Default returns the built-in parameter registry.
func Default() Registry {
	return defaultRegistry
}

// Keys returns the parameter keys in canonical display order.
func (r Registry) Keys() []models.ParameterKey {
	keys := make([]models.ParameterKey, len(r.order))
	copy(keys, r.order)
	return keys
}

// Get looks up the descriptor for key. The bool is false for unknown keys.
func (r Registry) Get(key models.ParameterKey) (models.ParameterDescriptor, bool) {
	d, ok := r.descriptors[key]
	return d, ok
}

// Has reports whether key is a registry key.
func (r Registry) Has(key models.ParameterKey) bool {
	_, ok := r.descriptors[key]
	return ok
}

// Len returns the number of registered parameters.
func (r Registry) Len() int {
	return len(r.order)
}
