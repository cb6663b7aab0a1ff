// Package source supplies the reading dataset and the parameter registry to
// the dashboard. The dashboard resolves a DataSource exactly once, before the
// first render; swapping in a live feed later only means swapping this
// collaborator.
package source

import (
	"aquaview.xyz/water-quality-service/pkg/models"
	"aquaview.xyz/water-quality-service/pkg/registry"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

type DataSource interface {
	GetReadings() ([]models.Reading, error)
	GetParameterRegistry() registry.Registry
}
