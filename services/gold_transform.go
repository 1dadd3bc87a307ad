// services/gold_transform.go
package services

import (
	"sort"
	"time"

	"github.com/avelark/ridelake/models"
)

type fareAgg struct {
	trips   int64
	nonNull int64
	sum     float64
}

func (a *fareAgg) add(fare *float64) {
	a.trips++
	if fare != nil {
		a.nonNull++
		a.sum += *fare
	}
}

// totals converts the running aggregate into SQL-style SUM/AVG results:
// a trip with a nil fare counts toward trips but contributes nothing, and
// both totals are nil when no non-null fare exists at all.
func (a *fareAgg) totals() (total, avg *float64) {
	if a.nonNull == 0 {
		return nil, nil
	}
	t := a.sum
	v := a.sum / float64(a.nonNull)
	return &t, &v
}

// BuildDriverPerformance groups silver trips by driver, joined to driver
// attributes, ordered by driver_id. Trips only reach silver when their
// driver exists, so the join never misses.
func BuildDriverPerformance(trips []models.Trip, drivers []models.Driver) []models.DriverPerformance {
	byDriver := make(map[string]*fareAgg)
	for _, t := range trips {
		agg, ok := byDriver[t.DriverID]
		if !ok {
			agg = &fareAgg{}
			byDriver[t.DriverID] = agg
		}
		agg.add(t.TripFare)
	}

	out := make([]models.DriverPerformance, 0, len(byDriver))
	for _, d := range drivers {
		agg, ok := byDriver[d.DriverID]
		if !ok {
			continue
		}
		total, avg := agg.totals()
		out = append(out, models.DriverPerformance{
			DriverID:    d.DriverID,
			DriverName:  d.DriverName,
			VehicleType: d.VehicleType,
			TripsCount:  agg.trips,
			TotalFare:   total,
			AvgFare:     avg,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DriverID < out[j].DriverID })
	return out
}

// BuildRoutePerformance groups silver trips by (pickup, drop), ordered by
// pickup then drop.
func BuildRoutePerformance(trips []models.Trip) []models.RoutePerformance {
	type routeKey struct{ pickup, drop string }

	byRoute := make(map[routeKey]*fareAgg)
	var order []routeKey
	for _, t := range trips {
		k := routeKey{t.PickupLocation, t.DropLocation}
		agg, ok := byRoute[k]
		if !ok {
			agg = &fareAgg{}
			byRoute[k] = agg
			order = append(order, k)
		}
		agg.add(t.TripFare)
	}

	out := make([]models.RoutePerformance, 0, len(order))
	for _, k := range order {
		total, avg := byRoute[k].totals()
		out = append(out, models.RoutePerformance{
			PickupLocation: k.pickup,
			DropLocation:   k.drop,
			TripsCount:     byRoute[k].trips,
			TotalFare:      total,
			AvgFare:        avg,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PickupLocation != out[j].PickupLocation {
			return out[i].PickupLocation < out[j].PickupLocation
		}
		return out[i].DropLocation < out[j].DropLocation
	})
	return out
}

// BuildFactTrips produces one fact row per silver trip, left-joined to its
// customer, driver and payment. A trip has zero or one payment; if the
// extract ever carries more than one for a trip, the first in source order
// wins, matching the dedup policy everywhere else.
func BuildFactTrips(
	trips []models.Trip,
	customers []models.Customer,
	drivers []models.Driver,
	payments []models.Payment,
) []models.FactTrip {
	custByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		custByID[c.CustomerID] = c
	}
	drvByID := make(map[string]models.Driver, len(drivers))
	for _, d := range drivers {
		drvByID[d.DriverID] = d
	}
	payByTrip := make(map[string]models.Payment, len(payments))
	for _, p := range payments {
		if _, ok := payByTrip[p.TripID]; !ok {
			payByTrip[p.TripID] = p
		}
	}

	out := make([]models.FactTrip, 0, len(trips))
	for _, t := range trips {
		c := custByID[t.CustomerID]
		d := drvByID[t.DriverID]

		row := models.FactTrip{
			TripID:         t.TripID,
			CustomerID:     t.CustomerID,
			CustomerName:   c.CustomerName,
			SignupDate:     c.SignupDate,
			SignupMonth:    truncateToMonth(c.SignupDate),
			DriverID:       t.DriverID,
			DriverName:     d.DriverName,
			VehicleType:    d.VehicleType,
			PickupLocation: t.PickupLocation,
			DropLocation:   t.DropLocation,
			TripFare:       t.TripFare,
			ModeOfPayment:  models.UnknownPaymentMode,
		}

		if p, ok := payByTrip[t.TripID]; ok {
			row.PaidFare = p.TripFare
			if p.ModeOfPayment != "" {
				row.ModeOfPayment = p.ModeOfPayment
			}
			// fare_matches stays nil unless both operands exist.
			if p.TripFare != nil && t.TripFare != nil {
				m := *p.TripFare == *t.TripFare
				row.FareMatches = &m
			}
		}

		out = append(out, row)
	}
	return out
}

func truncateToMonth(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	m := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return &m
}
