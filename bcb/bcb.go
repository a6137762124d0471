// Package bcb fetches the reference indices (CDI, SELIC, IPCA) the
// projection engine consumes, primarily from the Banco Central do Brasil
// SGS API, with a mirror API and packaged defaults as fallbacks.
//
// The engine never sees any of this: it receives a plain Indices value and
// treats staleness or fallback-defaulting as the caller's problem.
package bcb

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rendalab/rendafixa"
)

// SGS series codes for the annualized reference rates.
const (
	seriesCDI   = 4389  // Taxa DI anualizada, % a.a., base 252
	seriesSELIC = 432   // Meta Selic, % a.a.
	seriesIPCA  = 13522 // IPCA acumulado 12 meses, %
)

// Defaults are the packaged last-resort indices used when every remote
// source fails. They are a coarse snapshot, good enough for an offline
// ballpark projection; `rfx rates` reports when they are in use.
var Defaults = rendafixa.Indices{CDI: 0.1065, SELIC: 0.1075, IPCA: 0.045}

// Fetch returns the current annualized reference indices.
//
// Each index is resolved independently: SGS first, then the BrasilAPI
// mirror, then the packaged default. Fetch always returns a usable Indices
// value; the returned error, when non-nil, only lists the indices that fell
// back to defaults so the caller can warn about staleness.
func Fetch() (rendafixa.Indices, error) {
	client := newDailyCachingClient()
	indices := Defaults
	var errs error

	for _, src := range []struct {
		name   string
		series int
		target *float64
	}{
		{"cdi", seriesCDI, &indices.CDI},
		{"selic", seriesSELIC, &indices.SELIC},
		{"ipca", seriesIPCA, &indices.IPCA},
	} {
		rate, err := fetchRate(client, src.name, src.series)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: using packaged default: %w", src.name, err))
			continue
		}
		*src.target = rate
	}
	return indices, errs
}

// fetchRate resolves one index, trying SGS and then the mirror.
func fetchRate(client httpGetter, name string, series int) (float64, error) {
	sgs := fmt.Sprintf("https://api.bcb.gov.br/dados/serie/bcdata.sgs.%d/dados/ultimos/1?formato=json", series)
	mirror := "https://brasilapi.com.br/api/taxas/v1/" + name
	return tryRate(client, sgs, mirror)
}

// tryRate fetches from the SGS endpoint, falling back to the mirror.
func tryRate(client httpGetter, sgsAddr, mirrorAddr string) (float64, error) {
	body, err := wget(client, sgsAddr)
	if err == nil {
		rate, perr := parseSGSPayload(body)
		if perr == nil {
			return rate, nil
		}
		err = perr
	}
	log.Printf("SGS %s unavailable (%v), trying mirror", sgsAddr, err)

	body, merr := wget(client, mirrorAddr)
	if merr != nil {
		return 0, errors.Join(err, merr)
	}
	rate, perr := parseMirrorPayload(body)
	if perr != nil {
		return 0, errors.Join(err, perr)
	}
	return rate, nil
}

// parseSGSPayload extracts the latest value from an SGS response:
//
//	[{"data":"28/08/2026","valor":"10.65"}]
//
// Values arrive as strings on the percentage scale and occasionally use a
// decimal comma; the result is an annualized decimal rate.
func parseSGSPayload(body []byte) (float64, error) {
	var points []struct {
		Data  string `json:"data"`
		Valor string `json:"valor"`
	}
	if err := json.Unmarshal(body, &points); err != nil {
		return 0, fmt.Errorf("cannot decode SGS payload: %w", err)
	}
	if len(points) == 0 {
		return 0, fmt.Errorf("empty SGS payload")
	}
	raw := strings.ReplaceAll(points[len(points)-1].Valor, ",", ".")
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid SGS value %q: %w", raw, err)
	}
	return val / 100, nil
}

// parseMirrorPayload extracts the rate from a BrasilAPI taxas response:
//
//	{"nome":"CDI","valor":10.15}
func parseMirrorPayload(body []byte) (float64, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return 0, fmt.Errorf("cannot decode mirror payload: %w", err)
	}
	jval, err := jsonpath.Get("$.valor", jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot find valor in mirror payload: %w", err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("mirror valor is not a number: %v", jval)
	}
	return val / 100, nil
}
