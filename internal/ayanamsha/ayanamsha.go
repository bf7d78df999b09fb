// Package ayanamsha converts tropical longitudes to sidereal ones. Each
// supported model is a deterministic polynomial in Julian centuries; the
// models differ only in their zero-point epoch, so they share the
// precession polynomial with per-model base offsets.
package ayanamsha

import (
	"github.com/wonny/jyotish/internal/contracts"
)

// j1900 is the Julian day of epoch 1900 January 0.5, the reference the
// classical ayanamsha polynomials are quoted against.
const j1900 = 2415020.0

// base1900 holds each model's ayanamsha value at epoch 1900.0 in degrees.
// Lahiri is the Indian government standard; KP sits a few arcminutes below
// it, Raman and Yukteshwar use earlier zero years, Fagan/Bradley the
// western sidereal zero point.
var base1900 = map[contracts.AyanamshaModel]float64{
	contracts.AyanamshaLahiri:       22.460148,
	contracts.AyanamshaRaman:        21.078000,
	contracts.AyanamshaKP:           22.363000,
	contracts.AyanamshaYukteshwar:   21.368000,
	contracts.AyanamshaFaganBradley: 23.340000,
}

// Corrector computes the ayanamsha for one fixed model, bound once at
// configuration time.
type Corrector struct {
	model contracts.AyanamshaModel
	base  float64
}

// New returns a corrector for the model, or ConfigurationError for an
// unknown tag.
func New(model contracts.AyanamshaModel) (*Corrector, error) {
	base, ok := base1900[model]
	if !ok {
		return nil, &contracts.ConfigurationError{Setting: "ayanamsha", Value: string(model)}
	}
	return &Corrector{model: model, base: base}, nil
}

// Model returns the bound model tag.
func (c *Corrector) Model() contracts.AyanamshaModel {
	return c.model
}

// Value returns the ayanamsha in degrees at a Julian day.
func (c *Corrector) Value(jd float64) float64 {
	t := (jd - j1900) / 36525
	return c.base + 1.396042*t + 0.000308*t*t
}

// Sidereal converts a tropical longitude at jd to sidereal, always
// normalized to [0, 360).
func (c *Corrector) Sidereal(tropical, jd float64) float64 {
	return contracts.Norm360(tropical - c.Value(jd))
}
